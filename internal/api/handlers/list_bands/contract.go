package list_bands

import (
	"context"

	"github.com/m04kA/SMC-PricingService/internal/service/bands/models"
)

type BandService interface {
	List(ctx context.Context, productID int64) (*models.BandListResponse, error)
	NextName(ctx context.Context, productID int64) (*models.NextBandNameResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
