package deny_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/LaMesa-ReservationService/internal/api/handlers"
	"github.com/m04kA/LaMesa-ReservationService/internal/service/reservations"
)

const (
	msgMissingID  = "Falta el ID de la reserva"
	msgNotFound   = "Reserva no encontrada"
	msgDenyFailed = "Error al eliminar reserva"
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

// Handle DELETE /reservas/{id}/denegar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("DELETE /reservas/{id}/denegar - Invalid id=%q", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgMissingID)
		return
	}

	result, err := h.service.Deny(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("DELETE /reservas/%d/denegar - Reservation not found", id)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /reservas/%d/denegar - Failed to deny: %v", id, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgDenyFailed)
		}
		return
	}

	h.logger.Info("DELETE /reservas/%d/denegar - Reservation denied and removed, notification sent=%t",
		id, result.Notification.Sent)
	handlers.RespondJSON(w, http.StatusOK, result)
}
