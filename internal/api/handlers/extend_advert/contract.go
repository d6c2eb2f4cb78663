package extend_advert

import (
	"context"

	extendAdvert "github.com/m04kA/SMC-AdsService/internal/usecase/extend_advert"
)

type ExtendAdvertUseCase interface {
	Execute(ctx context.Context, req *extendAdvert.Request) (*extendAdvert.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
