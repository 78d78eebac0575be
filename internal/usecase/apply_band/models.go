package apply_band

import (
	"time"

	"github.com/m04kA/SMC-PricingService/internal/domain"
)

// Mode режим записи ячеек календаря
type Mode string

const (
	// ModeBulk выбранный банд записывается во все дни месяца одним коммитом
	ModeBulk Mode = "bulk"

	// ModeCell оператор вручную вводит букву в одну ячейку.
	// Для первой ячейки действует правило FirstDayCascade
	ModeCell Mode = "cell"

	// ModeRow полная замена всех 31 ячейки строки одним вызовом
	ModeRow Mode = "row"
)

// Request запрос на запись ячеек одной строки календаря
type Request struct {
	CalendarID int64
	Mode       Mode

	// BandName буква банда для режима bulk
	BandName string

	// DayIndex (1..31) и Value для режима cell
	DayIndex int
	Value    string

	// Days ровно 31 значение для режима row
	Days []string
}

// Response итоговое состояние строки после записи.
// Результат один на всю строку - успех либо отказ, без постатусных ячеек
type Response struct {
	ID        int64
	ProductID int64
	Year      int
	Month     string
	Days      []string
	UpdatedAt time.Time
}

func fromDomainCalendar(cal *domain.MonthlyPriceCalendar) *Response {
	days := make([]string, domain.CalendarDays)
	copy(days, cal.Days[:])

	return &Response{
		ID:        cal.ID,
		ProductID: cal.ProductID,
		Year:      cal.Year,
		Month:     string(cal.Month),
		Days:      days,
		UpdatedAt: cal.UpdatedAt,
	}
}
