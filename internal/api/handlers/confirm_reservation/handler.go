package confirm_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/LaMesa-ReservationService/internal/api/handlers"
	"github.com/m04kA/LaMesa-ReservationService/internal/service/reservations"
)

const (
	msgMissingID        = "Falta el ID de la reserva"
	msgNotFound         = "Reserva no encontrada"
	msgAlreadyConfirmed = "La reserva ya está confirmada"
	msgConfirmFailed    = "Error al confirmar reserva"
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

// Handle POST /reservas/{id}/confirmar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("POST /reservas/{id}/confirmar - Invalid id=%q", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgMissingID)
		return
	}

	result, err := h.service.Confirm(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("POST /reservas/%d/confirmar - Reservation not found", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrAlreadyConfirmed):
			h.logger.Warn("POST /reservas/%d/confirmar - Already confirmed", id)
			handlers.RespondBadRequest(w, msgAlreadyConfirmed)

		default:
			h.logger.Error("POST /reservas/%d/confirmar - Failed to confirm: %v", id, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgConfirmFailed)
		}
		return
	}

	h.logger.Info("POST /reservas/%d/confirmar - Reservation confirmed, notification sent=%t",
		id, result.Notification.Sent)
	handlers.RespondJSON(w, http.StatusOK, result)
}
