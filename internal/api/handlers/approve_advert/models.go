package approve_advert

import (
	"time"

	"github.com/m04kA/SMC-AdsService/internal/domain"
	approveAdvert "github.com/m04kA/SMC-AdsService/internal/usecase/approve_advert"
)

// ApproveAdvertRequest HTTP request model
type ApproveAdvertRequest struct {
	SlotID int64 `json:"slotId"`
}

// ApprovedAdvertResponse HTTP response model
type ApprovedAdvertResponse struct {
	ID            int64   `json:"id"`
	ClientName    string  `json:"clientName"`
	Category      string  `json:"category"`
	Status        string  `json:"status"`
	SlotID        int64   `json:"slotId"`
	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate"`
	DaysPaid      int     `json:"daysPaid"`
	RemainingDays int     `json:"remainingDays"`
	AmountPaid    float64 `json:"amountPaid"`
	ApprovedBy    int64   `json:"approvedBy"`
	ApprovedAt    string  `json:"approvedAt"`
	InvoiceID     int64   `json:"invoiceId"`
}

// ConflictDetailResponse тело 409 ответа с деталями конфликта
type ConflictDetailResponse struct {
	Error             string `json:"error"`
	Date              string `json:"date"`
	Kind              string `json:"kind"`
	ConflictingClient string `json:"conflictingClient,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *approveAdvert.Response) *ApprovedAdvertResponse {
	return &ApprovedAdvertResponse{
		ID:            resp.ID,
		ClientName:    resp.ClientName,
		Category:      string(resp.Category),
		Status:        resp.Status,
		SlotID:        resp.SlotID,
		StartDate:     resp.StartDate.Format(domain.DateFormat),
		EndDate:       resp.EndDate.Format(domain.DateFormat),
		DaysPaid:      resp.DaysPaid,
		RemainingDays: resp.RemainingDays,
		AmountPaid:    resp.AmountPaid,
		ApprovedBy:    resp.ApprovedBy,
		ApprovedAt:    resp.ApprovedAt.Format(time.RFC3339),
		InvoiceID:     resp.InvoiceID,
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
