package decline_advert

import (
	"context"

	"github.com/m04kA/SMC-AdsService/internal/service/adverts/models"
)

type AdvertService interface {
	Decline(ctx context.Context, advertID int64, req *models.DeclineAdvertRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
