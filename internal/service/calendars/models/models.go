package models

import (
	"time"

	"github.com/m04kA/SMC-PricingService/internal/domain"
)

// Request модели

// CreateCalendarRequest запрос на создание строки календаря
type CreateCalendarRequest struct {
	ProductID int64  `json:"productId"`
	Year      int    `json:"year"`
	Month     string `json:"month"`
}

// Response модели

// CalendarResponse строка календаря в ответе сервиса.
// Days всегда содержит ровно 31 значение; незаполненная ячейка - "-"
type CalendarResponse struct {
	ID        int64    `json:"id"`
	ProductID int64    `json:"productId"`
	Year      int      `json:"year"`
	Month     string   `json:"month"`
	Days      []string `json:"days"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
}

// CalendarListResponse список строк календаря продукта
type CalendarListResponse struct {
	Calendars []*CalendarResponse `json:"calendars"`
	Total     int                 `json:"total"`
}

// AllowedMonthsResponse месяцы, разрешённые для создания календаря
type AllowedMonthsResponse struct {
	Year   int      `json:"year"`
	Months []string `json:"months"`
}

// FromDomainCalendar конвертирует domain календарь в response модель
func FromDomainCalendar(cal *domain.MonthlyPriceCalendar) *CalendarResponse {
	days := make([]string, domain.CalendarDays)
	copy(days, cal.Days[:])

	return &CalendarResponse{
		ID:        cal.ID,
		ProductID: cal.ProductID,
		Year:      cal.Year,
		Month:     string(cal.Month),
		Days:      days,
		CreatedAt: cal.CreatedAt.Format(time.RFC3339),
		UpdatedAt: cal.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainCalendarList конвертирует список domain календарей в response модель
func FromDomainCalendarList(calendars []*domain.MonthlyPriceCalendar) *CalendarListResponse {
	result := make([]*CalendarResponse, 0, len(calendars))
	for _, cal := range calendars {
		result = append(result, FromDomainCalendar(cal))
	}
	return &CalendarListResponse{
		Calendars: result,
		Total:     len(result),
	}
}

// FromDomainMonths конвертирует список месяцев в response модель
func FromDomainMonths(year int, months []domain.Month) *AllowedMonthsResponse {
	names := make([]string, 0, len(months))
	for _, m := range months {
		names = append(names, string(m))
	}
	return &AllowedMonthsResponse{
		Year:   year,
		Months: names,
	}
}
