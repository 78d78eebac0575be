package create_band

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PricingService/internal/api/handlers"
	bandsService "github.com/m04kA/SMC-PricingService/internal/service/bands"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidProductID   = "некорректный ID продукта"
	msgInvalidInput       = "некорректные данные банда"
	msgProductNotFound    = "продукт не найден"
	msgBandLimitExceeded  = "исчерпаны буквы бандов: все имена A-Z заняты"
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

// Handle POST /api/v1/products/{productId}/bands
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	productID, err := handlers.PathID(mux.Vars(r), "productId")
	if err != nil {
		h.logger.Warn("POST /products/{productId}/bands - Invalid product id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProductID)
		return
	}

	var req CreateBandRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /products/%d/bands - Invalid request body: %v", productID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest(productID))
	if err != nil {
		switch {
		case errors.Is(err, bandsService.ErrBandLimitExceeded):
			h.logger.Warn("POST /products/%d/bands - Band limit exceeded", productID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgBandLimitExceeded)

		case errors.Is(err, bandsService.ErrProductNotFound):
			h.logger.Warn("POST /products/%d/bands - Product not found", productID)
			handlers.RespondNotFound(w, msgProductNotFound)

		case errors.Is(err, bandsService.ErrInvalidInput):
			h.logger.Warn("POST /products/%d/bands - Invalid input: %v", productID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /products/%d/bands - Failed to create band: %v", productID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /products/%d/bands - Band created: id=%d, name=%s", productID, result.ID, result.BandName)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
