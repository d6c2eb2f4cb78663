package list_adverts

import (
	"context"

	"github.com/m04kA/SMC-AdsService/internal/service/adverts/models"
)

type AdvertService interface {
	List(ctx context.Context, req *models.ListAdvertsRequest) (*models.AdvertListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
