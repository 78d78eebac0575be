package bands

import (
	"context"

	"github.com/m04kA/SMC-PricingService/internal/domain"
	"github.com/m04kA/SMC-PricingService/internal/integrations/productservice"
)

// BandRepository интерфейс репозитория тарифных бандов
type BandRepository interface {
	Create(ctx context.Context, band *domain.GlobalBand) (*domain.GlobalBand, error)
	GetByID(ctx context.Context, id int64) (*domain.GlobalBand, error)
	ListByProduct(ctx context.Context, productID int64) ([]*domain.GlobalBand, error)
	Update(ctx context.Context, band *domain.GlobalBand) error
	Delete(ctx context.Context, id int64) error
}

// ProductServiceClient интерфейс клиента каталога продуктов
type ProductServiceClient interface {
	GetProduct(ctx context.Context, productID int64) (*productservice.Product, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
