package list_bands

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PricingService/internal/api/handlers"
	bandsService "github.com/m04kA/SMC-PricingService/internal/service/bands"
)

const (
	msgInvalidProductID  = "некорректный ID продукта"
	msgBandLimitExceeded = "исчерпаны буквы бандов: все имена A-Z заняты"
)

type Handler struct {
	service BandService
	logger  Logger
}

func NewHandler(service BandService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/products/{productId}/bands
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	productID, err := handlers.PathID(mux.Vars(r), "productId")
	if err != nil {
		h.logger.Warn("GET /products/{productId}/bands - Invalid product id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProductID)
		return
	}

	result, err := h.service.List(r.Context(), productID)
	if err != nil {
		h.logger.Error("GET /products/%d/bands - Failed to list bands: %v", productID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleNextName GET /api/v1/products/{productId}/bands/next-name
// Консоль запрашивает следующую свободную букву при открытии формы
// создания банда
func (h *Handler) HandleNextName(w http.ResponseWriter, r *http.Request) {
	productID, err := handlers.PathID(mux.Vars(r), "productId")
	if err != nil {
		h.logger.Warn("GET /products/{productId}/bands/next-name - Invalid product id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProductID)
		return
	}

	result, err := h.service.NextName(r.Context(), productID)
	if err != nil {
		if errors.Is(err, bandsService.ErrBandLimitExceeded) {
			h.logger.Warn("GET /products/%d/bands/next-name - Band limit exceeded", productID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgBandLimitExceeded)
			return
		}
		h.logger.Error("GET /products/%d/bands/next-name - Failed to resolve next name: %v", productID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
