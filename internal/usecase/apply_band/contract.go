package apply_band

import (
	"context"

	"github.com/m04kA/SMC-PricingService/internal/domain"
)

// CalendarRepository интерфейс репозитория календарей
type CalendarRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.MonthlyPriceCalendar, error)
	UpdateDays(ctx context.Context, id int64, days domain.DayCells) error
}

// BandRepository интерфейс репозитория бандов
type BandRepository interface {
	ListByProduct(ctx context.Context, productID int64) ([]*domain.GlobalBand, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
