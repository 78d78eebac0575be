package update_band

import (
	"context"

	"github.com/m04kA/SMC-PricingService/internal/service/bands/models"
)

type BandService interface {
	Update(ctx context.Context, req *models.UpdateBandRequest) (*models.BandResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
