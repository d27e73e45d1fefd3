package cancel_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/LaMesa-ReservationService/internal/api/handlers"
	"github.com/m04kA/LaMesa-ReservationService/internal/service/reservations"
)

const (
	msgMissingID     = "Falta el ID de la reserva"
	msgNotFound      = "Reserva no encontrada"
	msgOnlyConfirmed = "Solo se pueden cancelar reservas confirmadas"
	msgCancelFailed  = "Error interno al cancelar la reserva"
)

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /reservas/{id}/cancelar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("DELETE /reservas/{id}/cancelar - Invalid id=%q", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgMissingID)
		return
	}

	result, err := h.service.Cancel(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("DELETE /reservas/%d/cancelar - Reservation not found", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrCannotCancel):
			h.logger.Warn("DELETE /reservas/%d/cancelar - Reservation is not confirmed", id)
			handlers.RespondBadRequest(w, msgOnlyConfirmed)

		default:
			h.logger.Error("DELETE /reservas/%d/cancelar - Failed to cancel: %v", id, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgCancelFailed)
		}
		return
	}

	h.logger.Info("DELETE /reservas/%d/cancelar - Reservation cancelled and removed", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
