package apply_band_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PricingService/internal/domain"
	"github.com/m04kA/SMC-PricingService/internal/usecase/apply_band"
)

type mockCalendarRepo struct {
	calendar *domain.MonthlyPriceCalendar

	updateCalls int
	lastDays    domain.DayCells
}

func (m *mockCalendarRepo) GetByID(ctx context.Context, id int64) (*domain.MonthlyPriceCalendar, error) {
	cal := *m.calendar
	return &cal, nil
}

func (m *mockCalendarRepo) UpdateDays(ctx context.Context, id int64, days domain.DayCells) error {
	m.updateCalls++
	m.lastDays = days
	m.calendar.Days = days
	return nil
}

type mockBandRepo struct {
	bands []*domain.GlobalBand
}

func (m *mockBandRepo) ListByProduct(ctx context.Context, productID int64) ([]*domain.GlobalBand, error) {
	return m.bands, nil
}

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newMarch2026Calendar() *domain.MonthlyPriceCalendar {
	return &domain.MonthlyPriceCalendar{
		ID:        1,
		ProductID: 7,
		Year:      2026,
		Month:     domain.March, // 31 день
		Days:      domain.NewEmptyDayCells(),
	}
}

func newUseCase(cal *domain.MonthlyPriceCalendar, bandNames ...string) (*apply_band.UseCase, *mockCalendarRepo) {
	bands := make([]*domain.GlobalBand, 0, len(bandNames))
	for i, name := range bandNames {
		bands = append(bands, &domain.GlobalBand{ID: int64(i + 1), ProductID: 7, Name: domain.BandName(name)})
	}

	calRepo := &mockCalendarRepo{calendar: cal}
	uc := apply_band.NewUseCase(calRepo, &mockBandRepo{bands: bands}, fakeTxManager{}, nopLogger{})
	return uc, calRepo
}

func allCellsEqual(t *testing.T, days []string, want string) {
	t.Helper()
	for i, cell := range days {
		assert.Equal(t, want, cell, "day %d", i+1)
	}
}

func TestExecute_BulkFillsWholeMonth(t *testing.T) {
	uc, repo := newUseCase(newMarch2026Calendar(), "A", "B")

	resp, err := uc.Execute(context.Background(), &apply_band.Request{
		CalendarID: 1,
		Mode:       apply_band.ModeBulk,
		BandName:   "A",
	})
	require.NoError(t, err)

	require.Len(t, resp.Days, domain.CalendarDays)
	allCellsEqual(t, resp.Days, "A")
	assert.Equal(t, 1, repo.updateCalls)
}

func TestExecute_BulkIsIdempotent(t *testing.T) {
	uc, repo := newUseCase(newMarch2026Calendar(), "A")

	req := &apply_band.Request{CalendarID: 1, Mode: apply_band.ModeBulk, BandName: "A"}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.Days, second.Days)
	assert.Equal(t, 2, repo.updateCalls)
}

func TestExecute_FirstDayCascade(t *testing.T) {
	cal := newMarch2026Calendar()
	uc, _ := newUseCase(cal, "A", "B")

	// Сначала массовое применение "A"
	_, err := uc.Execute(context.Background(), &apply_band.Request{
		CalendarID: 1,
		Mode:       apply_band.ModeBulk,
		BandName:   "A",
	})
	require.NoError(t, err)

	// Ввод "B" в первую ячейку переносит "B" на всю строку
	resp, err := uc.Execute(context.Background(), &apply_band.Request{
		CalendarID: 1,
		Mode:       apply_band.ModeCell,
		DayIndex:   1,
		Value:      "B",
	})
	require.NoError(t, err)
	allCellsEqual(t, resp.Days, "B")

	// Ввод "B" в пятую ячейку меняет только её (здесь - "A" в пятую)
	resp, err = uc.Execute(context.Background(), &apply_band.Request{
		CalendarID: 1,
		Mode:       apply_band.ModeCell,
		DayIndex:   5,
		Value:      "A",
	})
	require.NoError(t, err)
	assert.Equal(t, "A", resp.Days[4])
	assert.Equal(t, "B", resp.Days[0])
	assert.Equal(t, "B", resp.Days[5])
	assert.Equal(t, "B", resp.Days[30])
}

func TestExecute_CellValueIsUppercased(t *testing.T) {
	uc, _ := newUseCase(newMarch2026Calendar(), "A")

	resp, err := uc.Execute(context.Background(), &apply_band.Request{
		CalendarID: 1,
		Mode:       apply_band.ModeCell,
		DayIndex:   3,
		Value:      "a",
	})
	require.NoError(t, err)
	assert.Equal(t, "A", resp.Days[2])
}

func TestExecute_InvalidBandReferenceLeavesRowUntouched(t *testing.T) {
	cal := newMarch2026Calendar()
	cal.Days[0] = "A"
	uc, repo := newUseCase(cal, "A")

	_, err := uc.Execute(context.Background(), &apply_band.Request{
		CalendarID: 1,
		Mode:       apply_band.ModeCell,
		DayIndex:   5,
		Value:      "Q",
	})
	require.ErrorIs(t, err, apply_band.ErrInvalidBandReference)

	// Запись отклонена до обращения к хранилищу, строка не изменилась
	assert.Zero(t, repo.updateCalls)
	assert.Equal(t, "A", cal.Days[0])
	assert.Equal(t, domain.EmptyCell, cal.Days[4])
}

func TestExecute_DayIndexOutsideMonth(t *testing.T) {
	cal := newMarch2026Calendar()
	cal.Month = domain.February // 28 дней в 2026
	uc, repo := newUseCase(cal, "A")

	_, err := uc.Execute(context.Background(), &apply_band.Request{
		CalendarID: 1,
		Mode:       apply_band.ModeCell,
		DayIndex:   29,
		Value:      "A",
	})
	require.ErrorIs(t, err, apply_band.ErrInvalidDayIndex)
	assert.Zero(t, repo.updateCalls)
}

func TestExecute_BulkRespectsMonthLength(t *testing.T) {
	cal := newMarch2026Calendar()
	cal.Month = domain.April // 30 дней
	uc, _ := newUseCase(cal, "A")

	resp, err := uc.Execute(context.Background(), &apply_band.Request{
		CalendarID: 1,
		Mode:       apply_band.ModeBulk,
		BandName:   "A",
	})
	require.NoError(t, err)

	assert.Equal(t, "A", resp.Days[29])
	// 31-я ячейка не принадлежит апрелю и остается пустой
	assert.Equal(t, domain.EmptyCell, resp.Days[30])
}

func TestExecute_RowReplaceRoundTrips(t *testing.T) {
	cal := newMarch2026Calendar()
	uc, repo := newUseCase(cal, "A", "B")

	days := make([]string, domain.CalendarDays)
	for i := range days {
		if i%2 == 0 {
			days[i] = "A"
		} else {
			days[i] = "B"
		}
	}

	resp, err := uc.Execute(context.Background(), &apply_band.Request{
		CalendarID: 1,
		Mode:       apply_band.ModeRow,
		Days:       days,
	})
	require.NoError(t, err)

	// Один атомарный вызов, ячейки возвращаются ровно как записаны
	assert.Equal(t, 1, repo.updateCalls)
	assert.Equal(t, days, resp.Days)
	assert.Equal(t, domain.NormalizeDayCells(days), repo.lastDays)
}

func TestExecute_RowReplaceRejectsUnknownBand(t *testing.T) {
	uc, repo := newUseCase(newMarch2026Calendar(), "A")

	days := make([]string, domain.CalendarDays)
	days[0] = "A"
	days[10] = "Q"
	for i := range days {
		if days[i] == "" {
			days[i] = domain.EmptyCell
		}
	}

	_, err := uc.Execute(context.Background(), &apply_band.Request{
		CalendarID: 1,
		Mode:       apply_band.ModeRow,
		Days:       days,
	})
	require.ErrorIs(t, err, apply_band.ErrInvalidBandReference)
	assert.Zero(t, repo.updateCalls)
}

func TestExecute_InvalidMode(t *testing.T) {
	uc, _ := newUseCase(newMarch2026Calendar(), "A")

	_, err := uc.Execute(context.Background(), &apply_band.Request{
		CalendarID: 1,
		Mode:       "patch",
		BandName:   "A",
	})
	assert.ErrorIs(t, err, apply_band.ErrInvalidMode)
}
