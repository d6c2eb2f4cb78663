package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-AdsService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid advert status")

	// ErrInvalidCategory возвращается при некорректной категории
	ErrInvalidCategory = errors.New("invalid advert category")
)

// Request модели

// DeclineAdvertRequest запрос на отклонение объявления.
// Причина обязательна и не короче domain.MinDeclineReasonLen символов.
type DeclineAdvertRequest struct {
	UserID int64   `json:"userId"`
	Reason string  `json:"reason"`
	Notes  *string `json:"notes,omitempty"`
}

// DeleteAdvertRequest запрос на физическое удаление объявления
type DeleteAdvertRequest struct {
	UserID  int64 `json:"userId"`
	IsAdmin bool  `json:"isAdmin"`
}

// ListAdvertsRequest запрос на получение списка объявлений с фильтрацией
type ListAdvertsRequest struct {
	Status     *string `json:"status,omitempty"`
	Category   *string `json:"category,omitempty"`
	ClientName *string `json:"clientName,omitempty"`
	CreatedBy  *int64  `json:"createdBy,omitempty"`
	SlotID     *int64  `json:"slotId,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListAdvertsRequest) ToDomainFilter() (domain.AdvertFilter, error) {
	filter := domain.AdvertFilter{
		ClientName: r.ClientName,
		CreatedBy:  r.CreatedBy,
		SlotID:     r.SlotID,
	}

	if r.Status != nil {
		status, err := ToDomainAdvertStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	if r.Category != nil {
		category := domain.Category(*r.Category)
		if !category.IsValid() {
			return filter, ErrInvalidCategory
		}
		filter.Category = &category
	}

	return filter, nil
}

// Response модели

// AdvertResponse ответ с данными объявления
type AdvertResponse struct {
	ID         int64   `json:"id"`
	ClientName string  `json:"clientName"`
	Category   string  `json:"category"`
	Caption    string  `json:"caption"`
	MediaRef   *string `json:"mediaRef,omitempty"`

	AmountPaid    float64 `json:"amountPaid"`
	PaymentMethod string  `json:"paymentMethod"`
	DaysPaid      int     `json:"daysPaid"`
	PaymentDate   string  `json:"paymentDate"` // "2024-01-01"

	StartDate     string  `json:"startDate"`         // "2024-01-01"
	EndDate       *string `json:"endDate,omitempty"` // "2024-01-03"
	SlotID        *int64  `json:"slotId,omitempty"`
	RemainingDays *int    `json:"remainingDays,omitempty"`

	Status string `json:"status"`

	CreatedBy  int64   `json:"createdBy"`
	ApprovedBy *int64  `json:"approvedBy,omitempty"`
	ApprovedAt *string `json:"approvedAt,omitempty"` // ISO 8601

	DeclineReason *string `json:"declineReason,omitempty"`
	DeclineNotes  *string `json:"declineNotes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AdvertListResponse ответ со списком объявлений
type AdvertListResponse struct {
	Adverts []AdvertResponse `json:"adverts"`
}

// Методы конвертации

// ToDomainAdvertStatus конвертирует строку в domain.AdvertStatus
func ToDomainAdvertStatus(s string) (domain.AdvertStatus, error) {
	switch domain.AdvertStatus(s) {
	case domain.StatusPending, domain.StatusActive, domain.StatusExpired, domain.StatusCancelled:
		return domain.AdvertStatus(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

// FromDomainAdvert конвертирует domain модель в DTO
func FromDomainAdvert(a *domain.Advert) *AdvertResponse {
	if a == nil {
		return nil
	}

	resp := &AdvertResponse{
		ID:            a.ID,
		ClientName:    a.ClientName,
		Category:      string(a.Category),
		Caption:       a.Caption,
		MediaRef:      a.MediaRef,
		AmountPaid:    a.AmountPaid,
		PaymentMethod: a.PaymentMethod,
		DaysPaid:      a.DaysPaid,
		PaymentDate:   a.PaymentDate.Format(domain.DateFormat),
		StartDate:     a.StartDate.Format(domain.DateFormat),
		SlotID:        a.SlotID,
		RemainingDays: a.RemainingDays,
		Status:        string(a.Status),
		CreatedBy:     a.CreatedBy,
		ApprovedBy:    a.ApprovedBy,
		DeclineReason: a.DeclineReason,
		DeclineNotes:  a.DeclineNotes,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}

	if a.EndDate != nil {
		endDate := a.EndDate.Format(domain.DateFormat)
		resp.EndDate = &endDate
	}

	if a.ApprovedAt != nil {
		approvedAt := a.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &approvedAt
	}

	return resp
}

// FromDomainAdvertList конвертирует список domain моделей в DTO
func FromDomainAdvertList(adverts []*domain.Advert) *AdvertListResponse {
	result := &AdvertListResponse{
		Adverts: make([]AdvertResponse, 0, len(adverts)),
	}

	for _, a := range adverts {
		result.Adverts = append(result.Adverts, *FromDomainAdvert(a))
	}

	return result
}
