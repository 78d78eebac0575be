package create_calendar_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	handler "github.com/m04kA/SMC-PricingService/internal/api/handlers/create_calendar"
	calendarsService "github.com/m04kA/SMC-PricingService/internal/service/calendars"
	"github.com/m04kA/SMC-PricingService/internal/service/calendars/models"
)

type mockService struct {
	createFunc func(ctx context.Context, req *models.CreateCalendarRequest) (*models.CalendarResponse, error)
}

func (m *mockService) Create(ctx context.Context, req *models.CreateCalendarRequest) (*models.CalendarResponse, error) {
	return m.createFunc(ctx, req)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, svc *mockService, productID string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/products/"+productID+"/calendars", bytes.NewReader(raw))
	req = mux.SetURLVars(req, map[string]string{"productId": productID})
	w := httptest.NewRecorder()

	handler.NewHandler(svc, nopLogger{}).Handle(w, req)
	return w
}

func TestHandle_Created(t *testing.T) {
	svc := &mockService{
		createFunc: func(ctx context.Context, req *models.CreateCalendarRequest) (*models.CalendarResponse, error) {
			require.Equal(t, int64(7), req.ProductID)
			require.Equal(t, 2026, req.Year)
			require.Equal(t, "October", req.Month)

			days := make([]string, 31)
			for i := range days {
				days[i] = "-"
			}
			return &models.CalendarResponse{ID: 11, ProductID: 7, Year: 2026, Month: "October", Days: days}, nil
		},
	}

	w := doRequest(t, svc, "7", map[string]interface{}{"year": 2026, "month": "October"})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp models.CalendarResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(11), resp.ID)
	assert.Len(t, resp.Days, 31)
}

func TestHandle_DuplicateCalendarConflict(t *testing.T) {
	svc := &mockService{
		createFunc: func(ctx context.Context, req *models.CreateCalendarRequest) (*models.CalendarResponse, error) {
			return nil, calendarsService.ErrDuplicateCalendar
		},
	}

	w := doRequest(t, svc, "7", map[string]interface{}{"year": 2026, "month": "October"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandle_MonthNotAllowed(t *testing.T) {
	svc := &mockService{
		createFunc: func(ctx context.Context, req *models.CreateCalendarRequest) (*models.CalendarResponse, error) {
			return nil, calendarsService.ErrMonthNotAllowed
		},
	}

	w := doRequest(t, svc, "7", map[string]interface{}{"year": 2026, "month": "March"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandle_ProductNotFound(t *testing.T) {
	svc := &mockService{
		createFunc: func(ctx context.Context, req *models.CreateCalendarRequest) (*models.CalendarResponse, error) {
			return nil, calendarsService.ErrProductNotFound
		},
	}

	w := doRequest(t, svc, "404", map[string]interface{}{"year": 2026, "month": "October"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
