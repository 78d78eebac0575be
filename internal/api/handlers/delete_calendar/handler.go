package delete_calendar

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PricingService/internal/api/handlers"
	calendarsService "github.com/m04kA/SMC-PricingService/internal/service/calendars"
)

const (
	msgInvalidCalendarID = "некорректный ID календаря"
	msgCalendarNotFound  = "календарь не найден"
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

// Handle DELETE /api/v1/calendars/{calendarId}
// Удаление жёсткое и безвозвратное
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	calendarID, err := handlers.PathID(mux.Vars(r), "calendarId")
	if err != nil {
		h.logger.Warn("DELETE /calendars/{calendarId} - Invalid calendar id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCalendarID)
		return
	}

	if err := h.service.Delete(r.Context(), calendarID); err != nil {
		switch {
		case errors.Is(err, calendarsService.ErrCalendarNotFound):
			h.logger.Warn("DELETE /calendars/%d - Calendar not found", calendarID)
			handlers.RespondNotFound(w, msgCalendarNotFound)

		default:
			h.logger.Error("DELETE /calendars/%d - Failed to delete calendar: %v", calendarID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /calendars/%d - Calendar deleted", calendarID)
	handlers.RespondNoContent(w)
}
