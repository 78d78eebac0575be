package domain

import "time"

// CalendarDays количество ячеек в строке календаря.
// Строка всегда хранит 31 ячейку независимо от месяца; лишние ячейки
// короткого месяца остаются пустыми
const CalendarDays = 31

// EmptyCell значение незаполненной ячейки дня
const EmptyCell = "-"

// DayCells фиксированная последовательность из 31 ячейки дня.
// Каждая ячейка - буква банда (BandName) либо EmptyCell
type DayCells [CalendarDays]string

// NewEmptyDayCells возвращает строку из 31 пустой ячейки
func NewEmptyDayCells() DayCells {
	var cells DayCells
	for i := range cells {
		cells[i] = EmptyCell
	}
	return cells
}

// NormalizeDayCells приводит произвольный срез значений к ровно 31 ячейке:
// недостающие ячейки дополняются EmptyCell, лишние отбрасываются,
// пустые строки заменяются на EmptyCell
func NormalizeDayCells(values []string) DayCells {
	cells := NewEmptyDayCells()
	for i := 0; i < len(values) && i < CalendarDays; i++ {
		if values[i] == "" {
			continue
		}
		cells[i] = values[i]
	}
	return cells
}

// MonthlyPriceCalendar строка ценового календаря: для одного продукта,
// года и месяца хранит букву банда на каждый календарный день.
// Ссылка на банд - слабая, по имени: удаление или переименование банда
// не каскадируется в календарь
type MonthlyPriceCalendar struct {
	ID        int64
	ProductID int64
	Year      int
	Month     Month
	Days      DayCells

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsEmpty возвращает true, если ни одна ячейка не заполнена
func (c *MonthlyPriceCalendar) IsEmpty() bool {
	for _, cell := range c.Days {
		if cell != EmptyCell {
			return false
		}
	}
	return true
}

// ActiveDays возвращает количество ячеек, реально используемых этим
// месяцем с учётом года
func (c *MonthlyPriceCalendar) ActiveDays() int {
	return DaysInMonth(c.Month, c.Year)
}

// ReferencedBands возвращает множество букв бандов, на которые ссылаются
// ячейки активной части строки
func (c *MonthlyPriceCalendar) ReferencedBands() map[BandName]struct{} {
	refs := make(map[BandName]struct{})
	for i := 0; i < c.ActiveDays(); i++ {
		if c.Days[i] == EmptyCell {
			continue
		}
		refs[BandName(c.Days[i])] = struct{}{}
	}
	return refs
}
