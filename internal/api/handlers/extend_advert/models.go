package extend_advert

import (
	"github.com/m04kA/SMC-AdsService/internal/domain"
	extendAdvert "github.com/m04kA/SMC-AdsService/internal/usecase/extend_advert"
)

// ExtendAdvertRequest HTTP request model
type ExtendAdvertRequest struct {
	AdditionalDays  int     `json:"additionalDays"`
	ExtraAmountPaid float64 `json:"extraAmountPaid"`
}

// ExtendedAdvertResponse HTTP response model
type ExtendedAdvertResponse struct {
	ID               int64   `json:"id"`
	Status           string  `json:"status"`
	NewEndDate       string  `json:"newEndDate"`
	NewDaysPaid      int     `json:"newDaysPaid"`
	NewRemainingDays int     `json:"newRemainingDays"`
	AmountPaid       float64 `json:"amountPaid"`
}

// ConflictDetailResponse тело 409 ответа с деталями конфликта
type ConflictDetailResponse struct {
	Error             string `json:"error"`
	Date              string `json:"date"`
	Kind              string `json:"kind"`
	ConflictingClient string `json:"conflictingClient,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *extendAdvert.Response) *ExtendedAdvertResponse {
	return &ExtendedAdvertResponse{
		ID:               resp.ID,
		Status:           resp.Status,
		NewEndDate:       resp.NewEndDate.Format(domain.DateFormat),
		NewDaysPaid:      resp.NewDaysPaid,
		NewRemainingDays: resp.NewRemainingDays,
		AmountPaid:       resp.AmountPaid,
	}
}

// FromConflict конвертирует конфликт в тело 409 ответа
func FromConflict(msg string, c domain.Conflict) *ConflictDetailResponse {
	return &ConflictDetailResponse{
		Error:             msg,
		Date:              c.Date.Format(domain.DateFormat),
		Kind:              string(c.Kind),
		ConflictingClient: c.ConflictingClient,
	}
}
