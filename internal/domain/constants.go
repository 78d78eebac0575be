package domain

// Business validation constants
const (
	MinPrice          = 0.0
	MaxPrice          = 1000000.0
	MinIncrementValue = 0.0
	MaxIncrementValue = 100000.0
)

// Day-cell edit indexes
const (
	// FirstDayIndex индекс первой ячейки строки календаря (1-based).
	// Редактирование этой ячейки каскадируется на всю строку - см.
	// правило FirstDayCascade в usecase apply_band
	FirstDayIndex = 1
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
