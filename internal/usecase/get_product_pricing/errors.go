package get_product_pricing

import "errors"

var (
	// ErrProductNotFound возвращается, когда продукт не найден в каталоге
	ErrProductNotFound = errors.New("product not found")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("get_product_pricing: internal error")
)
