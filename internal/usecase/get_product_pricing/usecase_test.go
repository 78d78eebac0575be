package get_product_pricing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PricingService/internal/domain"
	"github.com/m04kA/SMC-PricingService/internal/integrations/productservice"
	"github.com/m04kA/SMC-PricingService/internal/usecase/get_product_pricing"
)

type mockBandRepo struct {
	bands []*domain.GlobalBand
}

func (m *mockBandRepo) ListByProduct(ctx context.Context, productID int64) ([]*domain.GlobalBand, error) {
	return m.bands, nil
}

type mockCalendarRepo struct {
	calendars []*domain.MonthlyPriceCalendar
}

func (m *mockCalendarRepo) ListByProduct(ctx context.Context, productID int64) ([]*domain.MonthlyPriceCalendar, error) {
	return m.calendars, nil
}

type mockProductClient struct {
	getFunc func(ctx context.Context, productID int64) (*productservice.Product, error)
}

func (m *mockProductClient) GetProduct(ctx context.Context, productID int64) (*productservice.Product, error) {
	return m.getFunc(ctx, productID)
}

type fakeTxManager struct{}

func (fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute_MarksUnresolvedCells(t *testing.T) {
	// Живой только банд "A"; ячейки с "B" должны быть помечены
	bandRepo := &mockBandRepo{bands: []*domain.GlobalBand{
		{ID: 1, ProductID: 7, Name: "A"},
	}}

	cal := &domain.MonthlyPriceCalendar{
		ID: 5, ProductID: 7, Year: 2026, Month: domain.September,
		Days: domain.NewEmptyDayCells(),
	}
	cal.Days[0] = "A"
	cal.Days[1] = "B"
	cal.Days[14] = "B"

	client := &mockProductClient{
		getFunc: func(ctx context.Context, productID int64) (*productservice.Product, error) {
			return &productservice.Product{ID: productID, Name: "P2 Long Stay", Provider: "AeroPark"}, nil
		},
	}

	uc := get_product_pricing.NewUseCase(bandRepo, &mockCalendarRepo{calendars: []*domain.MonthlyPriceCalendar{cal}},
		client, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &get_product_pricing.Request{ProductID: 7})
	require.NoError(t, err)

	assert.Equal(t, "P2 Long Stay", resp.ProductName)
	assert.Equal(t, "AeroPark", resp.Provider)
	require.Len(t, resp.Calendars, 1)
	assert.Equal(t, []int{2, 15}, resp.Calendars[0].UnresolvedDays)
}

func TestExecute_NoUnresolvedCellsForLiveBands(t *testing.T) {
	bandRepo := &mockBandRepo{bands: []*domain.GlobalBand{
		{ID: 1, ProductID: 7, Name: "A"},
		{ID: 2, ProductID: 7, Name: "B"},
	}}

	cal := &domain.MonthlyPriceCalendar{
		ID: 5, ProductID: 7, Year: 2026, Month: domain.March,
		Days: domain.NewEmptyDayCells(),
	}
	cal.Days[0] = "A"
	cal.Days[1] = "B"

	client := &mockProductClient{
		getFunc: func(ctx context.Context, productID int64) (*productservice.Product, error) {
			return &productservice.Product{ID: productID}, nil
		},
	}

	uc := get_product_pricing.NewUseCase(bandRepo, &mockCalendarRepo{calendars: []*domain.MonthlyPriceCalendar{cal}},
		client, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &get_product_pricing.Request{ProductID: 7})
	require.NoError(t, err)
	assert.Empty(t, resp.Calendars[0].UnresolvedDays)
	require.Len(t, resp.Bands, 2)
	assert.Equal(t, "A", resp.Bands[0].Name)
}

func TestExecute_ProductNotFound(t *testing.T) {
	client := &mockProductClient{
		getFunc: func(ctx context.Context, productID int64) (*productservice.Product, error) {
			return nil, productservice.ErrProductNotFound
		},
	}

	uc := get_product_pricing.NewUseCase(&mockBandRepo{}, &mockCalendarRepo{}, client, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &get_product_pricing.Request{ProductID: 404})
	assert.ErrorIs(t, err, get_product_pricing.ErrProductNotFound)
}
