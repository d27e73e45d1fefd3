package create_reservation

import (
	"time"

	"github.com/m04kA/LaMesa-ReservationService/internal/domain"
	"github.com/m04kA/LaMesa-ReservationService/pkg/types"
)

// Request модель запроса создания брони
type Request struct {
	Name      string           // имя гостя
	Phone     string           // контактный телефон
	Email     *string          // опциональный email гостя
	PartySize int              // размер компании, >= 1
	Date      time.Time        // дата брони (без времени)
	Time      types.TimeString // время слота в формате HH:MM
}

// Response модель ответа с созданной бронью
type Response struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Email     *string `json:"email,omitempty"`
	PartySize int     `json:"partySize"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"createdAt"`
}

// toResponse конвертирует доменную модель в модель ответа
func toResponse(res *domain.Reservation) *Response {
	return &Response{
		ID:        res.ID,
		Name:      res.Name,
		Phone:     res.Phone,
		Email:     res.Email,
		PartySize: res.PartySize,
		Date:      res.DateString(),
		Time:      string(res.Time),
		Status:    string(res.Status),
		CreatedAt: res.CreatedAt.Format(time.RFC3339),
	}
}
