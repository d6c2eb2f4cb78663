package adverts

import (
	"context"

	"github.com/m04kA/SMC-AdsService/internal/domain"
	"github.com/m04kA/SMC-AdsService/internal/integrations/notifyservice"
)

// AdvertRepository интерфейс репозитория объявлений
type AdvertRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Advert, error)
	List(ctx context.Context, filter domain.AdvertFilter) ([]*domain.Advert, error)
	Decline(ctx context.Context, id int64, reason string, notes *string) error
	Delete(ctx context.Context, id int64) error
}

// AssignmentRepository интерфейс репозитория занятости слотов
type AssignmentRepository interface {
	DeleteByAdvert(ctx context.Context, advertID int64) (int64, error)
}

// NotifyServiceClient интерфейс клиента для NotifyService
type NotifyServiceClient interface {
	NotifyBestEffort(ctx context.Context, n *notifyservice.Notification)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
