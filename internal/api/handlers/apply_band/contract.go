package apply_band

import (
	"context"

	applyBand "github.com/m04kA/SMC-PricingService/internal/usecase/apply_band"
)

type ApplyBandUseCase interface {
	Execute(ctx context.Context, req *applyBand.Request) (*applyBand.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
