package approve_advert

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AdsService/internal/domain"
	"github.com/m04kA/SMC-AdsService/internal/integrations/billingservice"
	"github.com/m04kA/SMC-AdsService/internal/integrations/notifyservice"
)

// AdvertRepository интерфейс репозитория объявлений
type AdvertRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Advert, error)
	Activate(ctx context.Context, id, slotID, approvedBy int64, approvedAt time.Time, endDate time.Time, remainingDays int) error
}

// SlotRepository интерфейс репозитория временных слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error)
}

// AssignmentRepository интерфейс репозитория занятости слотов
type AssignmentRepository interface {
	OccupantsForSlotDate(ctx context.Context, slotID int64, date time.Time) ([]domain.SlotOccupant, error)
	BulkInsert(ctx context.Context, advertID, slotID int64, dates []time.Time) error
}

// BillingServiceClient интерфейс клиента для BillingService
type BillingServiceClient interface {
	CreateInvoice(ctx context.Context, req *billingservice.CreateInvoiceRequest) (int64, error)
}

// NotifyServiceClient интерфейс клиента для NotifyService
type NotifyServiceClient interface {
	NotifyBestEffort(ctx context.Context, n *notifyservice.Notification)
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
