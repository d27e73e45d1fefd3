package get_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/LaMesa-ReservationService/internal/api/handlers"
	"github.com/m04kA/LaMesa-ReservationService/internal/domain"
	getAvailability "github.com/m04kA/LaMesa-ReservationService/internal/usecase/get_availability"
)

const (
	msgInvalidDate      = "Formato de fecha inválido, se espera YYYY-MM-DD"
	msgInvalidPartySize = "El número de personas debe ser al menos 1"
	msgQueryFailed      = "Error al consultar disponibilidad"
)

type Handler struct {
	useCase AvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase AvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /disponibilidad?fecha=YYYY-MM-DD&personas=N
// Без параметра fecha возвращает обзор доступности на ближайшие 30 дней
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	fecha := r.URL.Query().Get("fecha")

	// Без даты - месячный обзор
	if fecha == "" {
		result, err := h.useCase.ExecuteMonth(r.Context())
		if err != nil {
			h.logger.Error("GET /disponibilidad - Failed to get month availability: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgQueryFailed)
			return
		}

		handlers.RespondJSON(w, http.StatusOK, result)
		return
	}

	date, err := time.Parse(domain.DateFormat, fecha)
	if err != nil {
		h.logger.Warn("GET /disponibilidad - Invalid fecha=%q: %v", fecha, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	partySize, err := parsePartySize(r.URL.Query().Get("personas"))
	if err != nil {
		h.logger.Warn("GET /disponibilidad - Invalid personas=%q: %v", r.URL.Query().Get("personas"), err)
		handlers.RespondBadRequest(w, msgInvalidPartySize)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{
		Date:      date,
		PartySize: partySize,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /disponibilidad - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPartySize)

		default:
			h.logger.Error("GET /disponibilidad - Failed to get availability for %s: %v", fecha, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgQueryFailed)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// parsePartySize разбирает параметр personas, по умолчанию 1
func parsePartySize(raw string) (int, error) {
	if raw == "" {
		return domain.MinPartySize, nil
	}

	personas, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if personas < domain.MinPartySize {
		return 0, errors.New("personas below minimum")
	}

	return personas, nil
}
