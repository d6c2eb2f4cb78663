package list_slots

import (
	"context"

	"github.com/m04kA/SMC-AdsService/internal/domain"
)

type SlotRepository interface {
	List(ctx context.Context) ([]*domain.TimeSlot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
