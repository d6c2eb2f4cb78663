package check_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AdsService/internal/domain"
)

// AdvertRepository интерфейс репозитория объявлений
type AdvertRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Advert, error)
}

// SlotRepository интерфейс репозитория временных слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error)
}

// AssignmentRepository интерфейс репозитория занятости слотов
type AssignmentRepository interface {
	OccupantsForSlotDate(ctx context.Context, slotID int64, date time.Time) ([]domain.SlotOccupant, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
