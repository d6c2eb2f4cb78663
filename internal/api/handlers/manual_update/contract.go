package manual_update

import (
	"context"

	lifecycleSweep "github.com/m04kA/SMC-AdsService/internal/usecase/lifecycle_sweep"
)

type LifecycleSweepUseCase interface {
	Execute(ctx context.Context) (*lifecycleSweep.Result, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
