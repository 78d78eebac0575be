package delete_band

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PricingService/internal/api/handlers"
	bandsService "github.com/m04kA/SMC-PricingService/internal/service/bands"
)

const (
	msgInvalidBandID = "некорректный ID банда"
	msgBandNotFound  = "банд не найден"
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

// Handle DELETE /api/v1/bands/{bandId}
// Удаление жёсткое; ссылающиеся календари не каскадируются - их ячейки
// будут помечены неразрешёнными в снимке ценообразования
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bandID, err := handlers.PathID(mux.Vars(r), "bandId")
	if err != nil {
		h.logger.Warn("DELETE /bands/{bandId} - Invalid band id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBandID)
		return
	}

	if err := h.service.Delete(r.Context(), bandID); err != nil {
		switch {
		case errors.Is(err, bandsService.ErrBandNotFound):
			h.logger.Warn("DELETE /bands/%d - Band not found", bandID)
			handlers.RespondNotFound(w, msgBandNotFound)

		default:
			h.logger.Error("DELETE /bands/%d - Failed to delete band: %v", bandID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bands/%d - Band deleted", bandID)
	handlers.RespondNoContent(w)
}
