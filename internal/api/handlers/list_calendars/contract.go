package list_calendars

import (
	"context"

	"github.com/m04kA/SMC-PricingService/internal/service/calendars/models"
)

type CalendarService interface {
	List(ctx context.Context, productID int64) (*models.CalendarListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
