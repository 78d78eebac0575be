package allowed_months

import "github.com/m04kA/SMC-PricingService/internal/service/calendars/models"

type CalendarService interface {
	AllowedMonths(year int) *models.AllowedMonthsResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
