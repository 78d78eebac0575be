package domain

import (
	"errors"
	"time"
)

// Month каноническое английское название месяца
type Month string

const (
	January   Month = "January"
	February  Month = "February"
	March     Month = "March"
	April     Month = "April"
	May       Month = "May"
	June      Month = "June"
	July      Month = "July"
	August    Month = "August"
	September Month = "September"
	October   Month = "October"
	November  Month = "November"
	December  Month = "December"
)

// MonthNames все 12 месяцев в календарном порядке
var MonthNames = []Month{
	January, February, March, April, May, June,
	July, August, September, October, November, December,
}

// daysPerMonth стандартная григорианская таблица; февраль корректируется
// по году в DaysInMonth
var daysPerMonth = map[Month]int{
	January:   31,
	February:  28,
	March:     31,
	April:     30,
	May:       31,
	June:      30,
	July:      31,
	August:    31,
	September: 30,
	October:   31,
	November:  30,
	December:  31,
}

// ErrUnknownMonth возвращается для строки, не являющейся каноническим
// названием месяца
var ErrUnknownMonth = errors.New("unknown month name")

// ParseMonth разбирает каноническое название месяца
func ParseMonth(s string) (Month, error) {
	m := Month(s)
	if _, ok := daysPerMonth[m]; !ok {
		return "", ErrUnknownMonth
	}
	return m, nil
}

// Index возвращает порядковый номер месяца, 1..12 (0 для неизвестного имени)
func (m Month) Index() int {
	for i, name := range MonthNames {
		if name == m {
			return i + 1
		}
	}
	return 0
}

// Valid проверяет, что значение - одно из 12 канонических названий
func (m Month) Valid() bool {
	_, ok := daysPerMonth[m]
	return ok
}

// IsLeapYear упрощённое правило високосного года: year % 4 == 0.
// Исключение для столетий (1900, 2100) сознательно не реализовано -
// правило перенесено из исходной системы как есть; на практическом
// горизонте планирования расхождений не даёт
func IsLeapYear(year int) bool {
	return year%4 == 0
}

// DaysInMonth возвращает количество дней месяца с учётом года
func DaysInMonth(m Month, year int) int {
	days := daysPerMonth[m]
	if m == February && IsLeapYear(year) {
		return 29
	}
	return days
}

// AllowedMonths возвращает месяцы, в которых для запрошенного года разрешено
// создавать календарь:
//   - текущий год: с текущего месяца по декабрь (прошедшие месяцы исключаются);
//   - будущий год: все 12 месяцев;
//   - прошлый год: пусто.
//
// Чистая функция без побочных эффектов
func AllowedMonths(now time.Time, requestedYear int) []Month {
	currentYear := now.Year()

	switch {
	case requestedYear < currentYear:
		return []Month{}
	case requestedYear > currentYear:
		months := make([]Month, len(MonthNames))
		copy(months, MonthNames)
		return months
	default:
		currentMonth := int(now.Month())
		months := make([]Month, 0, 12-currentMonth+1)
		for i := currentMonth - 1; i < len(MonthNames); i++ {
			months = append(months, MonthNames[i])
		}
		return months
	}
}

// MonthAllowed проверяет, входит ли месяц в AllowedMonths для запрошенного года
func MonthAllowed(now time.Time, requestedYear int, m Month) bool {
	for _, allowed := range AllowedMonths(now, requestedYear) {
		if allowed == m {
			return true
		}
	}
	return false
}
