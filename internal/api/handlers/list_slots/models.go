package list_slots

import (
	"github.com/m04kA/SMC-AdsService/internal/domain"
)

// SlotResponse HTTP модель временного слота
type SlotResponse struct {
	ID        int64  `json:"id"`
	StartTime string `json:"startTime"` // "09:00"
	Label     string `json:"label"`     // "09:00 AM"
}

// SlotListResponse HTTP ответ со списком слотов
type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
}

// FromDomainSlots конвертирует domain модели в HTTP response
func FromDomainSlots(slots []*domain.TimeSlot) *SlotListResponse {
	resp := &SlotListResponse{
		Slots: make([]SlotResponse, 0, len(slots)),
	}
	for _, s := range slots {
		resp.Slots = append(resp.Slots, SlotResponse{
			ID:        s.ID,
			StartTime: s.StartTime.String(),
			Label:     s.Label,
		})
	}
	return resp
}
