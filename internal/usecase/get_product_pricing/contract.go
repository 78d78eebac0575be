package get_product_pricing

import (
	"context"

	"github.com/m04kA/SMC-PricingService/internal/domain"
	"github.com/m04kA/SMC-PricingService/internal/integrations/productservice"
)

// BandRepository интерфейс репозитория бандов
type BandRepository interface {
	ListByProduct(ctx context.Context, productID int64) ([]*domain.GlobalBand, error)
}

// CalendarRepository интерфейс репозитория календарей
type CalendarRepository interface {
	ListByProduct(ctx context.Context, productID int64) ([]*domain.MonthlyPriceCalendar, error)
}

// ProductServiceClient интерфейс клиента каталога продуктов
type ProductServiceClient interface {
	GetProduct(ctx context.Context, productID int64) (*productservice.Product, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
