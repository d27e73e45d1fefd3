package create_reservation

import (
	"time"

	"github.com/m04kA/LaMesa-ReservationService/internal/domain"
	createReservation "github.com/m04kA/LaMesa-ReservationService/internal/usecase/create_reservation"
	"github.com/m04kA/LaMesa-ReservationService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Email     *string `json:"email,omitempty"`
	PartySize int     `json:"partySize"`
	Date      string  `json:"date"` // "2025-11-14"
	Time      string  `json:"time"` // "20:00"
}

// CreateReservationResponse HTTP response model
type CreateReservationResponse struct {
	Message     string                      `json:"message"`
	Reservation *createReservation.Response `json:"reservation"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время
	slot, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		Name:      r.Name,
		Phone:     r.Phone,
		Email:     r.Email,
		PartySize: r.PartySize,
		Date:      date,
		Time:      slot,
	}, nil
}
