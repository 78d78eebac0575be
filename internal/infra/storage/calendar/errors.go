package calendar

import "errors"

var (
	// ErrCalendarNotFound возвращается, когда строка календаря не найдена
	ErrCalendarNotFound = errors.New("calendar.repository: calendar not found")

	// ErrDuplicateCalendar возвращается при нарушении уникальности
	// (product_id, year, month). Индекс в БД - авторитетная защита от гонки
	// двух операторов; клиентская проверка дубликата лишь быстрый путь
	ErrDuplicateCalendar = errors.New("calendar.repository: calendar already exists for this product, year and month")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("calendar.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("calendar.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("calendar.repository: failed to scan row")
)
