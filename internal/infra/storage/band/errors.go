package band

import "errors"

var (
	// ErrBandNotFound возвращается, когда банд не найден
	ErrBandNotFound = errors.New("band.repository: band not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("band.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("band.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("band.repository: failed to scan row")
)
