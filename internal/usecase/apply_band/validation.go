package apply_band

import (
	"fmt"

	"github.com/m04kA/SMC-PricingService/internal/domain"
)

// validateRequest проверяет структуру запроса до начала транзакции.
// Проверки, требующие данных (словарь бандов, число дней месяца),
// выполняются внутри транзакции
func validateRequest(req *Request) error {
	if req.CalendarID <= 0 {
		return fmt.Errorf("%w: calendarID must be positive", ErrInvalidInput)
	}

	switch req.Mode {
	case ModeBulk:
		if req.BandName == "" {
			return fmt.Errorf("%w: bandName is required for bulk mode", ErrInvalidInput)
		}
	case ModeCell:
		if req.DayIndex < domain.FirstDayIndex || req.DayIndex > domain.CalendarDays {
			return fmt.Errorf("%w: dayIndex must be in 1..%d", ErrInvalidInput, domain.CalendarDays)
		}
		if req.Value == "" {
			return fmt.Errorf("%w: value is required for cell mode", ErrInvalidInput)
		}
	case ModeRow:
		if len(req.Days) == 0 {
			return fmt.Errorf("%w: days are required for row mode", ErrInvalidInput)
		}
		if len(req.Days) > domain.CalendarDays {
			return fmt.Errorf("%w: at most %d day values allowed", ErrInvalidInput, domain.CalendarDays)
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMode, req.Mode)
	}

	return nil
}
