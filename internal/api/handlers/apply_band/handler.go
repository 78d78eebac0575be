package apply_band

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PricingService/internal/api/handlers"
	applyBand "github.com/m04kA/SMC-PricingService/internal/usecase/apply_band"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidCalendarID    = "некорректный ID календаря"
	msgCalendarNotFound     = "календарь не найден"
	msgInvalidBandReference = "значение ячейки не совпадает ни с одним бандом продукта"
	msgInvalidDayIndex      = "индекс дня выходит за пределы месяца"
	msgInvalidInput         = "некорректные данные запроса"
)

type Handler struct {
	useCase ApplyBandUseCase
	logger  Logger
}

func NewHandler(useCase ApplyBandUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/calendars/{calendarId}/days
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	calendarID, err := handlers.PathID(mux.Vars(r), "calendarId")
	if err != nil {
		h.logger.Warn("PUT /calendars/{calendarId}/days - Invalid calendar id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCalendarID)
		return
	}

	var req ApplyBandRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /calendars/%d/days - Invalid request body: %v", calendarID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(calendarID))
	if err != nil {
		switch {
		case errors.Is(err, applyBand.ErrCalendarNotFound):
			h.logger.Warn("PUT /calendars/%d/days - Calendar not found", calendarID)
			handlers.RespondNotFound(w, msgCalendarNotFound)

		case errors.Is(err, applyBand.ErrInvalidBandReference):
			h.logger.Warn("PUT /calendars/%d/days - Invalid band reference: %v", calendarID, err)
			handlers.RespondBadRequest(w, msgInvalidBandReference)

		case errors.Is(err, applyBand.ErrInvalidDayIndex):
			h.logger.Warn("PUT /calendars/%d/days - Invalid day index: %v", calendarID, err)
			handlers.RespondBadRequest(w, msgInvalidDayIndex)

		case errors.Is(err, applyBand.ErrInvalidMode), errors.Is(err, applyBand.ErrInvalidInput):
			h.logger.Warn("PUT /calendars/%d/days - Invalid input: %v", calendarID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /calendars/%d/days - Failed to apply band: %v", calendarID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /calendars/%d/days - Calendar updated (mode=%s)", calendarID, req.Mode)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
