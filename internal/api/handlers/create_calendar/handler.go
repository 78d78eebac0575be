package create_calendar

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PricingService/internal/api/handlers"
	calendarsService "github.com/m04kA/SMC-PricingService/internal/service/calendars"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidProductID   = "некорректный ID продукта"
	msgInvalidInput       = "некорректные данные календаря"
	msgProductNotFound    = "продукт не найден"
	msgDuplicateCalendar  = "календарь для этого продукта, года и месяца уже существует"
	msgMonthNotAllowed    = "месяц недоступен для выбранного года"
)

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

// Handle POST /api/v1/products/{productId}/calendars
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	productID, err := handlers.PathID(mux.Vars(r), "productId")
	if err != nil {
		h.logger.Warn("POST /products/{productId}/calendars - Invalid product id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProductID)
		return
	}

	var req CreateCalendarRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /products/%d/calendars - Invalid request body: %v", productID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest(productID))
	if err != nil {
		switch {
		case errors.Is(err, calendarsService.ErrDuplicateCalendar):
			h.logger.Warn("POST /products/%d/calendars - Duplicate calendar: year=%d, month=%s",
				productID, req.Year, req.Month)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateCalendar)

		case errors.Is(err, calendarsService.ErrMonthNotAllowed):
			h.logger.Warn("POST /products/%d/calendars - Month not allowed: year=%d, month=%s",
				productID, req.Year, req.Month)
			handlers.RespondBadRequest(w, msgMonthNotAllowed)

		case errors.Is(err, calendarsService.ErrProductNotFound):
			h.logger.Warn("POST /products/%d/calendars - Product not found", productID)
			handlers.RespondNotFound(w, msgProductNotFound)

		case errors.Is(err, calendarsService.ErrInvalidInput):
			h.logger.Warn("POST /products/%d/calendars - Invalid input: %v", productID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /products/%d/calendars - Failed to create calendar: %v", productID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /products/%d/calendars - Calendar created: id=%d (%s %d)",
		productID, result.ID, result.Month, result.Year)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
