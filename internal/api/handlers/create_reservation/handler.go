package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/LaMesa-ReservationService/internal/api/handlers"
	createReservation "github.com/m04kA/LaMesa-ReservationService/internal/usecase/create_reservation"
	"github.com/m04kA/LaMesa-ReservationService/pkg/types"
)

const (
	msgMissingFields    = "Faltan datos obligatorios"
	msgInvalidDate      = "Formato de fecha inválido, se espera YYYY-MM-DD"
	msgInvalidTime      = "Formato de hora inválido, se espera HH:MM"
	msgPastDate         = "Fecha pasada"
	msgClosed           = "Restaurante cerrado"
	msgInvalidTimeSlot  = "Horario no válido para reservas"
	msgSlotNotAvailable = "Sin disponibilidad"
	msgSaveFailed       = "Error al guardar la reserva"
	msgSaved            = "Reserva guardada correctamente"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /reservar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservar - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgMissingFields)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservar - Failed to parse request: %v", err)
		if errors.Is(err, types.ErrInvalidTimeFormat) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservar - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, createReservation.ErrInvalidDate):
			h.logger.Warn("POST /reservar - Past date: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, createReservation.ErrClosed):
			h.logger.Warn("POST /reservar - Restaurant closed: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgClosed)

		case errors.Is(err, createReservation.ErrInvalidTimeSlot):
			h.logger.Warn("POST /reservar - Invalid time slot: time=%s", req.Time)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createReservation.ErrSlotNotAvailable):
			h.logger.Warn("POST /reservar - Slot full: date=%s, time=%s, partySize=%d",
				req.Date, req.Time, req.PartySize)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		default:
			h.logger.Error("POST /reservar - Failed to create reservation: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgSaveFailed)
		}
		return
	}

	h.logger.Info("POST /reservar - Reservation created: id=%d, date=%s, time=%s",
		result.ID, result.Date, result.Time)
	handlers.RespondJSON(w, http.StatusCreated, &CreateReservationResponse{
		Message:     msgSaved,
		Reservation: result,
	})
}
