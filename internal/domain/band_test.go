package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PricingService/internal/domain"
)

func TestNextBandName(t *testing.T) {
	tests := []struct {
		name     string
		existing []domain.BandName
		want     domain.BandName
		wantErr  error
	}{
		{
			name:     "empty set yields A",
			existing: nil,
			want:     "A",
		},
		{
			name:     "next after max letter",
			existing: []domain.BandName{"A", "B", "C"},
			want:     "D",
		},
		{
			name:     "gaps do not matter, only the max counts",
			existing: []domain.BandName{"A", "E"},
			want:     "F",
		},
		{
			name:     "unordered input",
			existing: []domain.BandName{"C", "A", "B"},
			want:     "D",
		},
		{
			name:     "non-letter names are ignored",
			existing: []domain.BandName{"A", "AB", "", "b", "1"},
			want:     "B",
		},
		{
			name:     "Y yields Z",
			existing: []domain.BandName{"Y"},
			want:     "Z",
		},
		{
			name:     "Z is exhausted",
			existing: []domain.BandName{"A", "Z"},
			wantErr:  domain.ErrBandNameExhausted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.NextBandName(tt.existing)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBandName_Valid(t *testing.T) {
	assert.True(t, domain.BandName("A").Valid())
	assert.True(t, domain.BandName("Z").Valid())
	assert.False(t, domain.BandName("a").Valid())
	assert.False(t, domain.BandName("AA").Valid())
	assert.False(t, domain.BandName("").Valid())
	assert.False(t, domain.BandName("1").Valid())
}

func TestGlobalBand_ExtrapolateTail(t *testing.T) {
	band := &domain.GlobalBand{IncrementValue: 5}
	for i := 0; i < domain.ExplicitStayDays; i++ {
		band.DayPrices[i] = 100
	}

	band.ExtrapolateTail()

	// day_(30+k) = day_30 + increment*k, без накопления
	day31, err := band.PriceForStay(31)
	require.NoError(t, err)
	assert.Equal(t, 105.0, day31)

	day40, err := band.PriceForStay(40)
	require.NoError(t, err)
	assert.Equal(t, 150.0, day40)

	day60, err := band.PriceForStay(60)
	require.NoError(t, err)
	assert.Equal(t, 250.0, day60)
}

func TestGlobalBand_ExtrapolateTail_Linear(t *testing.T) {
	band := &domain.GlobalBand{IncrementValue: 2.5}
	band.DayPrices[domain.ExplicitStayDays-1] = 80

	band.ExtrapolateTail()

	for k := 1; k <= domain.MaxStayDays-domain.ExplicitStayDays; k++ {
		price, err := band.PriceForStay(domain.ExplicitStayDays + k)
		require.NoError(t, err)
		assert.Equal(t, 80+2.5*float64(k), price, "day %d", domain.ExplicitStayDays+k)
	}
}

func TestGlobalBand_PriceForStay_OutOfRange(t *testing.T) {
	band := &domain.GlobalBand{}

	_, err := band.PriceForStay(0)
	assert.ErrorIs(t, err, domain.ErrInvalidStayLength)

	_, err = band.PriceForStay(domain.MaxStayDays + 1)
	assert.ErrorIs(t, err, domain.ErrInvalidStayLength)
}
