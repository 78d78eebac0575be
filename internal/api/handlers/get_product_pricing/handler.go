package get_product_pricing

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PricingService/internal/api/handlers"
	getProductPricing "github.com/m04kA/SMC-PricingService/internal/usecase/get_product_pricing"
)

const (
	msgInvalidProductID = "некорректный ID продукта"
	msgProductNotFound  = "продукт не найден"
)

type Handler struct {
	useCase GetProductPricingUseCase
	logger  Logger
}

func NewHandler(useCase GetProductPricingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/products/{productId}/pricing
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	productID, err := handlers.PathID(mux.Vars(r), "productId")
	if err != nil {
		h.logger.Warn("GET /products/{productId}/pricing - Invalid product id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProductID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getProductPricing.Request{ProductID: productID})
	if err != nil {
		switch {
		case errors.Is(err, getProductPricing.ErrProductNotFound):
			h.logger.Warn("GET /products/%d/pricing - Product not found", productID)
			handlers.RespondNotFound(w, msgProductNotFound)

		default:
			h.logger.Error("GET /products/%d/pricing - Failed to build pricing snapshot: %v", productID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
