package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PricingService/internal/domain"
)

func TestDaysInMonth(t *testing.T) {
	// Обычный год: {31,28,31,30,31,30,31,31,30,31,30,31}
	wantCommon := []int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	for i, m := range domain.MonthNames {
		assert.Equal(t, wantCommon[i], domain.DaysInMonth(m, 2025), "%s 2025", m)
	}

	// Високосный по упрощённому правилу year % 4 == 0
	assert.Equal(t, 29, domain.DaysInMonth(domain.February, 2024))
	assert.Equal(t, 29, domain.DaysInMonth(domain.February, 2028))
	assert.Equal(t, 28, domain.DaysInMonth(domain.February, 2026))

	// Упрощённое правило сознательно без исключения для столетий
	assert.Equal(t, 29, domain.DaysInMonth(domain.February, 2100))
}

func TestParseMonth(t *testing.T) {
	m, err := domain.ParseMonth("March")
	require.NoError(t, err)
	assert.Equal(t, domain.March, m)
	assert.Equal(t, 3, m.Index())

	_, err = domain.ParseMonth("march")
	assert.ErrorIs(t, err, domain.ErrUnknownMonth)

	_, err = domain.ParseMonth("")
	assert.ErrorIs(t, err, domain.ErrUnknownMonth)
}

func TestAllowedMonths(t *testing.T) {
	now := time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC)

	t.Run("current year: from current month through December", func(t *testing.T) {
		months := domain.AllowedMonths(now, 2026)
		assert.Equal(t, []domain.Month{
			domain.August, domain.September, domain.October,
			domain.November, domain.December,
		}, months)
	})

	t.Run("future year: all 12 months", func(t *testing.T) {
		months := domain.AllowedMonths(now, 2027)
		assert.Len(t, months, 12)
		assert.Equal(t, domain.January, months[0])
		assert.Equal(t, domain.December, months[11])
	})

	t.Run("past year: empty", func(t *testing.T) {
		assert.Empty(t, domain.AllowedMonths(now, 2025))
	})

	t.Run("january keeps the whole year", func(t *testing.T) {
		january := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
		assert.Len(t, domain.AllowedMonths(january, 2026), 12)
	})

	t.Run("december keeps only december", func(t *testing.T) {
		december := time.Date(2026, time.December, 31, 23, 59, 0, 0, time.UTC)
		assert.Equal(t, []domain.Month{domain.December}, domain.AllowedMonths(december, 2026))
	})
}

func TestMonthAllowed(t *testing.T) {
	now := time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC)

	assert.True(t, domain.MonthAllowed(now, 2026, domain.August))
	assert.True(t, domain.MonthAllowed(now, 2026, domain.December))
	assert.False(t, domain.MonthAllowed(now, 2026, domain.July))
	assert.True(t, domain.MonthAllowed(now, 2027, domain.January))
	assert.False(t, domain.MonthAllowed(now, 2025, domain.December))
}
