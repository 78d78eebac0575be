package calendars_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PricingService/internal/domain"
	calendarRepo "github.com/m04kA/SMC-PricingService/internal/infra/storage/calendar"
	"github.com/m04kA/SMC-PricingService/internal/integrations/productservice"
	"github.com/m04kA/SMC-PricingService/internal/service/calendars"
	"github.com/m04kA/SMC-PricingService/internal/service/calendars/models"
)

type mockCalendarRepo struct {
	listFunc   func(ctx context.Context, productID int64) ([]*domain.MonthlyPriceCalendar, error)
	createFunc func(ctx context.Context, cal *domain.MonthlyPriceCalendar) (*domain.MonthlyPriceCalendar, error)
	getFunc    func(ctx context.Context, id int64) (*domain.MonthlyPriceCalendar, error)
	deleteFunc func(ctx context.Context, id int64) error

	createCalls int
}

func (m *mockCalendarRepo) ListByProduct(ctx context.Context, productID int64) ([]*domain.MonthlyPriceCalendar, error) {
	return m.listFunc(ctx, productID)
}

func (m *mockCalendarRepo) Create(ctx context.Context, cal *domain.MonthlyPriceCalendar) (*domain.MonthlyPriceCalendar, error) {
	m.createCalls++
	return m.createFunc(ctx, cal)
}

func (m *mockCalendarRepo) GetByID(ctx context.Context, id int64) (*domain.MonthlyPriceCalendar, error) {
	return m.getFunc(ctx, id)
}

func (m *mockCalendarRepo) Delete(ctx context.Context, id int64) error {
	return m.deleteFunc(ctx, id)
}

type mockProductClient struct {
	getFunc func(ctx context.Context, productID int64) (*productservice.Product, error)
}

func (m *mockProductClient) GetProduct(ctx context.Context, productID int64) (*productservice.Product, error) {
	return m.getFunc(ctx, productID)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func knownProduct() *mockProductClient {
	return &mockProductClient{
		getFunc: func(ctx context.Context, productID int64) (*productservice.Product, error) {
			return &productservice.Product{ID: productID, Name: "P1 Terminal Parking"}, nil
		},
	}
}

// 28 августа 2026 - фиксированные часы для политики месяцев
var testNow = time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC)

func TestService_Create_Success(t *testing.T) {
	repo := &mockCalendarRepo{
		listFunc: func(ctx context.Context, productID int64) ([]*domain.MonthlyPriceCalendar, error) {
			return nil, nil
		},
		createFunc: func(ctx context.Context, cal *domain.MonthlyPriceCalendar) (*domain.MonthlyPriceCalendar, error) {
			cal.ID = 11
			cal.Days = domain.NewEmptyDayCells()
			return cal, nil
		},
	}

	svc := calendars.NewService(repo, knownProduct(), nopLogger{}).WithTimeProvider(fixedTime{testNow})

	resp, err := svc.Create(context.Background(), &models.CreateCalendarRequest{
		ProductID: 7,
		Year:      2026,
		Month:     "October",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(11), resp.ID)
	require.Len(t, resp.Days, domain.CalendarDays)
	for _, cell := range resp.Days {
		assert.Equal(t, domain.EmptyCell, cell)
	}
}

func TestService_Create_DuplicateFastPath(t *testing.T) {
	repo := &mockCalendarRepo{
		listFunc: func(ctx context.Context, productID int64) ([]*domain.MonthlyPriceCalendar, error) {
			return []*domain.MonthlyPriceCalendar{
				{ID: 1, ProductID: 7, Year: 2026, Month: domain.October},
			}, nil
		},
		createFunc: func(ctx context.Context, cal *domain.MonthlyPriceCalendar) (*domain.MonthlyPriceCalendar, error) {
			t.Fatal("Create must not reach the repository for a known duplicate")
			return nil, nil
		},
	}

	svc := calendars.NewService(repo, knownProduct(), nopLogger{}).WithTimeProvider(fixedTime{testNow})

	_, err := svc.Create(context.Background(), &models.CreateCalendarRequest{
		ProductID: 7,
		Year:      2026,
		Month:     "October",
	})
	require.ErrorIs(t, err, calendars.ErrDuplicateCalendar)
	assert.Zero(t, repo.createCalls)
}

func TestService_Create_DuplicateUniqueIndex(t *testing.T) {
	// Быстрая проверка дубликат не увидела (второй оператор успел раньше),
	// гонку закрывает уникальный индекс хранилища
	repo := &mockCalendarRepo{
		listFunc: func(ctx context.Context, productID int64) ([]*domain.MonthlyPriceCalendar, error) {
			return nil, nil
		},
		createFunc: func(ctx context.Context, cal *domain.MonthlyPriceCalendar) (*domain.MonthlyPriceCalendar, error) {
			return nil, calendarRepo.ErrDuplicateCalendar
		},
	}

	svc := calendars.NewService(repo, knownProduct(), nopLogger{}).WithTimeProvider(fixedTime{testNow})

	_, err := svc.Create(context.Background(), &models.CreateCalendarRequest{
		ProductID: 7,
		Year:      2026,
		Month:     "October",
	})
	assert.ErrorIs(t, err, calendars.ErrDuplicateCalendar)
}

func TestService_Create_MonthNotAllowed(t *testing.T) {
	repo := &mockCalendarRepo{
		listFunc: func(ctx context.Context, productID int64) ([]*domain.MonthlyPriceCalendar, error) {
			return nil, nil
		},
	}

	svc := calendars.NewService(repo, knownProduct(), nopLogger{}).WithTimeProvider(fixedTime{testNow})

	t.Run("past month of the current year", func(t *testing.T) {
		_, err := svc.Create(context.Background(), &models.CreateCalendarRequest{
			ProductID: 7,
			Year:      2026,
			Month:     "March",
		})
		assert.ErrorIs(t, err, calendars.ErrMonthNotAllowed)
	})

	t.Run("past year", func(t *testing.T) {
		_, err := svc.Create(context.Background(), &models.CreateCalendarRequest{
			ProductID: 7,
			Year:      2025,
			Month:     "December",
		})
		assert.ErrorIs(t, err, calendars.ErrMonthNotAllowed)
	})

	t.Run("unknown month name", func(t *testing.T) {
		_, err := svc.Create(context.Background(), &models.CreateCalendarRequest{
			ProductID: 7,
			Year:      2026,
			Month:     "Октябрь",
		})
		assert.ErrorIs(t, err, calendars.ErrInvalidInput)
	})
}

func TestService_AllowedMonths(t *testing.T) {
	svc := calendars.NewService(&mockCalendarRepo{}, knownProduct(), nopLogger{}).
		WithTimeProvider(fixedTime{testNow})

	t.Run("current year", func(t *testing.T) {
		resp := svc.AllowedMonths(2026)
		assert.Equal(t, []string{"August", "September", "October", "November", "December"}, resp.Months)
	})

	t.Run("future year", func(t *testing.T) {
		assert.Len(t, svc.AllowedMonths(2027).Months, 12)
	})

	t.Run("past year", func(t *testing.T) {
		assert.Empty(t, svc.AllowedMonths(2020).Months)
	})
}

func TestService_List_NormalizesTo31Cells(t *testing.T) {
	repo := &mockCalendarRepo{
		listFunc: func(ctx context.Context, productID int64) ([]*domain.MonthlyPriceCalendar, error) {
			cal := &domain.MonthlyPriceCalendar{ID: 1, ProductID: 7, Year: 2026, Month: domain.September}
			cal.Days = domain.NormalizeDayCells([]string{"A", "A"})
			return []*domain.MonthlyPriceCalendar{cal}, nil
		},
	}

	svc := calendars.NewService(repo, knownProduct(), nopLogger{}).WithTimeProvider(fixedTime{testNow})

	resp, err := svc.List(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, resp.Calendars, 1)
	require.Len(t, resp.Calendars[0].Days, domain.CalendarDays)
	assert.Equal(t, "A", resp.Calendars[0].Days[0])
	assert.Equal(t, domain.EmptyCell, resp.Calendars[0].Days[30])
}

func TestService_Delete_NotFound(t *testing.T) {
	repo := &mockCalendarRepo{
		deleteFunc: func(ctx context.Context, id int64) error {
			return calendarRepo.ErrCalendarNotFound
		},
	}

	svc := calendars.NewService(repo, knownProduct(), nopLogger{})

	err := svc.Delete(context.Background(), 404)
	assert.ErrorIs(t, err, calendars.ErrCalendarNotFound)
}
