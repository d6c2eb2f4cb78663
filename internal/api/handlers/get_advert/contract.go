package get_advert

import (
	"context"

	"github.com/m04kA/SMC-AdsService/internal/service/adverts/models"
)

type AdvertService interface {
	GetByID(ctx context.Context, id int64) (*models.AdvertResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
