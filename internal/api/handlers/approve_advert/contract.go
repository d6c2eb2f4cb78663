package approve_advert

import (
	"context"

	approveAdvert "github.com/m04kA/SMC-AdsService/internal/usecase/approve_advert"
)

type ApproveAdvertUseCase interface {
	Execute(ctx context.Context, req *approveAdvert.Request) (*approveAdvert.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
