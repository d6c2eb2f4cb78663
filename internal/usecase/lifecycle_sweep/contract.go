package lifecycle_sweep

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AdsService/internal/domain"
)

// AdvertRepository интерфейс репозитория объявлений
type AdvertRepository interface {
	ListActive(ctx context.Context) ([]*domain.Advert, error)
	UpdateLifecycle(ctx context.Context, id int64, remainingDays int, status domain.AdvertStatus) error
}

// AssignmentRepository интерфейс репозитория занятости слотов
type AssignmentRepository interface {
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
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
