package get_product_pricing

// Request запрос снимка ценообразования продукта
type Request struct {
	ProductID int64
}

// Band банд в снимке
type Band struct {
	ID             int64
	Name           string
	IncrementValue float64
	DayPrices      []float64
}

// Calendar строка календаря в снимке.
// UnresolvedDays - дни (1-based), чья буква больше не совпадает ни с одним
// живым бандом: банд был удалён или переименован после заполнения ячейки.
// Ссылка слабая, каскада нет - такие ячейки помечаются при выдаче
type Calendar struct {
	ID             int64
	Year           int
	Month          string
	Days           []string
	UnresolvedDays []int
}

// Response снимок ценообразования продукта: банды и календари, загруженные
// в одной read-only транзакции. Контроллер запрашивает его после каждой
// успешной мутации для обновления состояния клиента
type Response struct {
	ProductID   int64
	ProductName string
	Provider    string
	Bands       []*Band
	Calendars   []*Calendar
}
