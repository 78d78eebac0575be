package calendars

import "errors"

var (
	// ErrCalendarNotFound возвращается, когда строка календаря не найдена
	ErrCalendarNotFound = errors.New("calendar not found")

	// ErrProductNotFound возвращается, когда продукт не найден в каталоге
	ErrProductNotFound = errors.New("product not found")

	// ErrDuplicateCalendar возвращается, когда календарь для (продукт, год,
	// месяц) уже существует. Проверка по загруженному списку - быстрый путь;
	// авторитетная защита - уникальный индекс хранилища
	ErrDuplicateCalendar = errors.New("calendar already exists for this product, year and month")

	// ErrMonthNotAllowed возвращается, когда месяц не входит в список
	// разрешённых для запрошенного года
	ErrMonthNotAllowed = errors.New("month is not available for the requested year")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("calendars service: internal error")
)
