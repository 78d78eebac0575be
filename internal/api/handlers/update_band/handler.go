package update_band

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PricingService/internal/api/handlers"
	bandsService "github.com/m04kA/SMC-PricingService/internal/service/bands"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBandID      = "некорректный ID банда"
	msgInvalidInput       = "некорректные данные банда"
	msgBandNotFound       = "банд не найден"
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

// Handle PUT /api/v1/bands/{bandId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bandID, err := handlers.PathID(mux.Vars(r), "bandId")
	if err != nil {
		h.logger.Warn("PUT /bands/{bandId} - Invalid band id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBandID)
		return
	}

	var req UpdateBandRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bands/%d - Invalid request body: %v", bandID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), req.ToServiceRequest(bandID))
	if err != nil {
		switch {
		case errors.Is(err, bandsService.ErrBandNotFound):
			h.logger.Warn("PUT /bands/%d - Band not found", bandID)
			handlers.RespondNotFound(w, msgBandNotFound)

		case errors.Is(err, bandsService.ErrInvalidInput):
			h.logger.Warn("PUT /bands/%d - Invalid input: %v", bandID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /bands/%d - Failed to update band: %v", bandID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bands/%d - Band updated: name=%s", bandID, result.BandName)
	handlers.RespondJSON(w, http.StatusOK, result)
}
