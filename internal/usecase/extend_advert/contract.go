package extend_advert

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AdsService/internal/domain"
)

// AdvertRepository интерфейс репозитория объявлений
type AdvertRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Advert, error)
	ApplyExtension(ctx context.Context, id int64, daysPaid int, endDate time.Time, remainingDays int, amountPaid float64, status domain.AdvertStatus) error
}

// AssignmentRepository интерфейс репозитория занятости слотов
type AssignmentRepository interface {
	OccupantsForSlotDate(ctx context.Context, slotID int64, date time.Time) ([]domain.SlotOccupant, error)
	BulkInsertIdempotent(ctx context.Context, advertID, slotID int64, dates []time.Time) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
