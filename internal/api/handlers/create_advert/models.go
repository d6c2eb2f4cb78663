package create_advert

import (
	"time"

	"github.com/m04kA/SMC-AdsService/internal/domain"
	createAdvert "github.com/m04kA/SMC-AdsService/internal/usecase/create_advert"
)

// CreateAdvertRequest HTTP request model
type CreateAdvertRequest struct {
	ClientName    string  `json:"clientName"`
	Category      string  `json:"category"`
	Caption       string  `json:"caption"`
	MediaRef      *string `json:"mediaRef,omitempty"`
	AmountPaid    float64 `json:"amountPaid"`
	PaymentMethod string  `json:"paymentMethod"`
	DaysPaid      int     `json:"daysPaid"`
	PaymentDate   string  `json:"paymentDate"` // "2025-10-01"
	StartDate     string  `json:"startDate"`   // "2025-10-15"
}

// AdvertResponse HTTP response model
type AdvertResponse struct {
	ID         int64   `json:"id"`
	ClientName string  `json:"clientName"`
	Category   string  `json:"category"`
	Caption    string  `json:"caption"`
	Status     string  `json:"status"`
	AmountPaid float64 `json:"amountPaid"`
	DaysPaid   int     `json:"daysPaid"`
	StartDate  string  `json:"startDate"`
	CreatedBy  int64   `json:"createdBy"`
	CreatedAt  string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом дат)
func (r *CreateAdvertRequest) ToUseCaseRequest(createdBy int64) (*createAdvert.Request, error) {
	paymentDate, err := time.Parse(domain.DateFormat, r.PaymentDate)
	if err != nil {
		return nil, err
	}

	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	return &createAdvert.Request{
		ClientName:    r.ClientName,
		Category:      domain.Category(r.Category),
		Caption:       r.Caption,
		MediaRef:      r.MediaRef,
		AmountPaid:    r.AmountPaid,
		PaymentMethod: r.PaymentMethod,
		DaysPaid:      r.DaysPaid,
		PaymentDate:   paymentDate,
		StartDate:     startDate,
		CreatedBy:     createdBy,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAdvert.Response) *AdvertResponse {
	return &AdvertResponse{
		ID:         resp.ID,
		ClientName: resp.ClientName,
		Category:   string(resp.Category),
		Caption:    resp.Caption,
		Status:     resp.Status,
		AmountPaid: resp.AmountPaid,
		DaysPaid:   resp.DaysPaid,
		StartDate:  resp.StartDate.Format(domain.DateFormat),
		CreatedBy:  resp.CreatedBy,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
	}
}
