package bands

import "errors"

var (
	// ErrBandNotFound возвращается, когда банд не найден
	ErrBandNotFound = errors.New("band not found")

	// ErrProductNotFound возвращается, когда продукт не найден в каталоге
	ErrProductNotFound = errors.New("product not found")

	// ErrBandLimitExceeded возвращается, когда следующая буква вышла бы за "Z".
	// Создание прерывается до обращения к хранилищу - ни одна строка не создается
	ErrBandLimitExceeded = errors.New("band limit exceeded: all letters A-Z are in use")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bands service: internal error")
)
