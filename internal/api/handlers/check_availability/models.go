package check_availability

import (
	"github.com/m04kA/SMC-AdsService/internal/domain"
	checkAvailability "github.com/m04kA/SMC-AdsService/internal/usecase/check_availability"
)

// ConflictResponse описывает один конфликт на конкретную дату окна
type ConflictResponse struct {
	Date              string `json:"date"` // "2025-10-15"
	Kind              string `json:"kind"` // "capacity" | "category"
	ConflictingClient string `json:"conflictingClient,omitempty"`
}

// AvailabilityResponse HTTP ответ проверки доступности слота
type AvailabilityResponse struct {
	Available bool               `json:"available"`
	SlotID    int64              `json:"slotId"`
	StartDate string             `json:"startDate"`
	DayCount  int                `json:"dayCount"`
	Conflicts []ConflictResponse `json:"conflicts"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	conflicts := make([]ConflictResponse, 0, len(resp.Conflicts))
	for _, c := range resp.Conflicts {
		conflicts = append(conflicts, ConflictResponse{
			Date:              c.Date.Format(domain.DateFormat),
			Kind:              string(c.Kind),
			ConflictingClient: c.ConflictingClient,
		})
	}

	return &AvailabilityResponse{
		Available: resp.Available,
		SlotID:    resp.SlotID,
		StartDate: resp.StartDate.Format(domain.DateFormat),
		DayCount:  resp.DayCount,
		Conflicts: conflicts,
	}
}
