package apply_band

import "errors"

var (
	// ErrCalendarNotFound возвращается, когда строка календаря не найдена
	ErrCalendarNotFound = errors.New("calendar not found")

	// ErrInvalidBandReference возвращается, когда значение ячейки не совпадает
	// ни с одной буквой живого банда продукта. Запись отклоняется локально,
	// строка остается нетронутой
	ErrInvalidBandReference = errors.New("day cell value does not match any band of the product")

	// ErrInvalidDayIndex возвращается для индекса дня вне активной части месяца
	ErrInvalidDayIndex = errors.New("day index out of range for this month")

	// ErrInvalidMode возвращается для неизвестного режима применения
	ErrInvalidMode = errors.New("unknown apply mode")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("apply_band: internal error")
)
