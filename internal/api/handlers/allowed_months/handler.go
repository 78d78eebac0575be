package allowed_months

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-PricingService/internal/api/handlers"
	"github.com/m04kA/SMC-PricingService/internal/service/calendars/models"
)

const msgInvalidYear = "некорректный параметр year"

type Handler struct {
	service CalendarService
	logger  Logger
}

func NewHandler(service CalendarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/products/{productId}/calendars/allowed-months?year=YYYY
// Без года политика возвращает пустой список: создать календарь можно
// только для явно выбранного года
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("year")
	if raw == "" {
		handlers.RespondJSON(w, http.StatusOK, &models.AllowedMonthsResponse{Year: 0, Months: []string{}})
		return
	}

	year, err := strconv.Atoi(raw)
	if err != nil || year < 0 {
		h.logger.Warn("GET /calendars/allowed-months - Invalid year %q", raw)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, h.service.AllowedMonths(year))
}
