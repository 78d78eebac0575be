package calendars

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PricingService/internal/domain"
	"github.com/m04kA/SMC-PricingService/internal/integrations/productservice"
)

// CalendarRepository интерфейс репозитория ценовых календарей
type CalendarRepository interface {
	Create(ctx context.Context, cal *domain.MonthlyPriceCalendar) (*domain.MonthlyPriceCalendar, error)
	GetByID(ctx context.Context, id int64) (*domain.MonthlyPriceCalendar, error)
	ListByProduct(ctx context.Context, productID int64) ([]*domain.MonthlyPriceCalendar, error)
	Delete(ctx context.Context, id int64) error
}

// ProductServiceClient интерфейс клиента каталога продуктов
type ProductServiceClient interface {
	GetProduct(ctx context.Context, productID int64) (*productservice.Product, error)
}

// TimeProvider источник текущего времени.
// Выделен в интерфейс для тестирования политики доступных месяцев
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider системные часы
type RealTimeProvider struct{}

// Now возвращает текущее время
func (RealTimeProvider) Now() time.Time { return time.Now() }

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
