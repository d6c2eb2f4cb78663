package create_advert

import (
	"context"

	createAdvert "github.com/m04kA/SMC-AdsService/internal/usecase/create_advert"
)

type CreateAdvertUseCase interface {
	Execute(ctx context.Context, req *createAdvert.Request) (*createAdvert.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
