// Package models содержит модели ответов сервиса броней
package models

import (
	"time"

	"github.com/m04kA/LaMesa-ReservationService/internal/domain"
	"github.com/m04kA/LaMesa-ReservationService/internal/service/notifications"
)

// ReservationResponse представление брони в ответах API
type ReservationResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Email     *string `json:"email,omitempty"`
	PartySize int     `json:"partySize"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"createdAt,omitempty"`
}

// ReservationListResponse список броней
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Total        int                   `json:"total"`
}

// NotificationOutcome результат отправки уведомления в ответе API.
// Неуспех - мягкая ошибка: переход статуса уже совершен.
type NotificationOutcome struct {
	Sent      bool   `json:"sent"`
	Channel   string `json:"channel"`
	Recipient string `json:"recipient"`
	Error     string `json:"error,omitempty"`
}

// TransitionResponse результат подтверждения или отказа
type TransitionResponse struct {
	Reservation  ReservationResponse `json:"reservation"`
	Notification NotificationOutcome `json:"notification"`
}

// CancelResponse результат отмены с удаленным снимком брони.
// Ключ reserva_cancelada сохранен из исторического API.
type CancelResponse struct {
	Cancelled ReservationResponse `json:"reserva_cancelada"`
}

// FromDomainReservation конвертирует доменную бронь в модель ответа
func FromDomainReservation(res *domain.Reservation) ReservationResponse {
	out := ReservationResponse{
		ID:        res.ID,
		Name:      res.Name,
		Phone:     res.Phone,
		Email:     res.Email,
		PartySize: res.PartySize,
		Date:      res.DateString(),
		Time:      res.Time.String(),
		Status:    string(res.Status),
	}
	if !res.CreatedAt.IsZero() {
		out.CreatedAt = res.CreatedAt.Format(time.RFC3339)
	}
	return out
}

// FromDomainList конвертирует список броней
func FromDomainList(reservas []*domain.Reservation) *ReservationListResponse {
	out := make([]ReservationResponse, 0, len(reservas))
	for _, res := range reservas {
		out = append(out, FromDomainReservation(res))
	}
	return &ReservationListResponse{
		Reservations: out,
		Total:        len(out),
	}
}

// FromNotifyResult конвертирует результат уведомления
func FromNotifyResult(result notifications.Result) NotificationOutcome {
	return NotificationOutcome{
		Sent:      result.Sent,
		Channel:   string(result.Channel),
		Recipient: result.Recipient,
		Error:     result.ErrorMessage(),
	}
}
