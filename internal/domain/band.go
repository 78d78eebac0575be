package domain

import (
	"errors"
	"time"
)

// Stay-length dimensions of a rate band
const (
	// ExplicitStayDays количество цен, задаваемых оператором вручную
	ExplicitStayDays = 30

	// MaxStayDays полная длина таблицы цен; хвост за ExplicitStayDays
	// вычисляется линейной экстраполяцией при создании банда
	MaxStayDays = 60
)

var (
	// ErrBandNameExhausted возвращается, когда следующая буква вышла бы за "Z"
	ErrBandNameExhausted = errors.New("band name sequence exhausted: no letter after Z")

	// ErrInvalidBandName возвращается для имени, не являющегося одной буквой A-Z
	ErrInvalidBandName = errors.New("band name must be a single letter A-Z")

	// ErrInvalidStayLength возвращается при обращении за пределы 1..MaxStayDays
	ErrInvalidStayLength = errors.New("stay length out of range")
)

// BandName имя тарифного банда - одна заглавная буква A-Z, уникальная
// в рамках продукта
type BandName string

// Valid проверяет, что имя банда - ровно одна буква A-Z
func (n BandName) Valid() bool {
	return len(n) == 1 && n[0] >= 'A' && n[0] <= 'Z'
}

// Next возвращает следующую букву алфавита.
// Возвращает ErrBandNameExhausted, если текущая буква - "Z"
func (n BandName) Next() (BandName, error) {
	if !n.Valid() {
		return "", ErrInvalidBandName
	}
	if n[0] == 'Z' {
		return "", ErrBandNameExhausted
	}
	return BandName([]byte{n[0] + 1}), nil
}

// GlobalBand тарифный банд: таблица цен по длительности проживания (1..60 дней),
// привязанная к одному продукту. Первые ExplicitStayDays цен задаются явно,
// остальные вычисляются один раз при создании и хранятся как снимок
type GlobalBand struct {
	ID             int64
	ProductID      int64
	Name           BandName
	IncrementValue float64
	DayPrices      [MaxStayDays]float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ExtrapolateTail заполняет цены day_31..day_60 снимком линейной экстраполяции:
// day_(30+k) = day_30 + increment * k. Без накопления и без округления
func (b *GlobalBand) ExtrapolateTail() {
	base := b.DayPrices[ExplicitStayDays-1]
	for k := 1; k <= MaxStayDays-ExplicitStayDays; k++ {
		b.DayPrices[ExplicitStayDays-1+k] = base + b.IncrementValue*float64(k)
	}
}

// PriceForStay возвращает цену для длительности проживания в днях (1..MaxStayDays)
func (b *GlobalBand) PriceForStay(days int) (float64, error) {
	if days < 1 || days > MaxStayDays {
		return 0, ErrInvalidStayLength
	}
	return b.DayPrices[days-1], nil
}

// NextBandName выводит следующую свободную букву из списка живых бандов.
// Имя всегда вычисляется по фактическому списку, а не хранится счётчиком:
// отдельный счётчик стал бы вторым источником истины и мог бы разойтись
// с реальным набором бандов.
//
// Строки, не являющиеся одной буквой A-Z, игнорируются. Для пустого списка
// возвращается "A". Если максимальная занятая буква - "Z",
// возвращается ErrBandNameExhausted
func NextBandName(existing []BandName) (BandName, error) {
	var max BandName
	for _, name := range existing {
		if !name.Valid() {
			continue
		}
		if max == "" || name > max {
			max = name
		}
	}
	if max == "" {
		return "A", nil
	}
	return max.Next()
}
