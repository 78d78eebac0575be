package get_product_pricing

import (
	"context"

	getProductPricing "github.com/m04kA/SMC-PricingService/internal/usecase/get_product_pricing"
)

type GetProductPricingUseCase interface {
	Execute(ctx context.Context, req *getProductPricing.Request) (*getProductPricing.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
