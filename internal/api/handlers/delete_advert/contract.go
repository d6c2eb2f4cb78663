package delete_advert

import (
	"context"

	"github.com/m04kA/SMC-AdsService/internal/service/adverts/models"
)

type AdvertService interface {
	Delete(ctx context.Context, advertID int64, req *models.DeleteAdvertRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
