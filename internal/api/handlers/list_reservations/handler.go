package list_reservations

import (
	"net/http"

	"github.com/m04kA/LaMesa-ReservationService/internal/api/handlers"
)

const msgListFailed = "Error al obtener reservas"

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

// Handle GET /reservas
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /reservas - Failed to list reservations: %v", err)
		handlers.RespondError(w, http.StatusInternalServerError, msgListFailed)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
