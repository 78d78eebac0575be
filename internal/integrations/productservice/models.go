package productservice

// Product продукт парковки из внешнего каталога.
// Сервис ссылается на продукт только по ID; владелец данных - каталог
type Product struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Provider string `json:"provider"`
}
