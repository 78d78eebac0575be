package list_calendars

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PricingService/internal/api/handlers"
)

const msgInvalidProductID = "некорректный ID продукта"

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

// Handle GET /api/v1/products/{productId}/calendars
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	productID, err := handlers.PathID(mux.Vars(r), "productId")
	if err != nil {
		h.logger.Warn("GET /products/{productId}/calendars - Invalid product id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProductID)
		return
	}

	result, err := h.service.List(r.Context(), productID)
	if err != nil {
		h.logger.Error("GET /products/%d/calendars - Failed to list calendars: %v", productID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
