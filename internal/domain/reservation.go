package domain

import (
	"time"

	"github.com/m04kA/LaMesa-ReservationService/pkg/types"
)

// ReservationStatus represents the status of a reservation.
// The persisted values are Spanish, matching the historical data
// ("pendiente", "confirmada"). Denied and cancelled reservations are
// deleted, never tagged - there is no terminal status value.
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pendiente"
	StatusConfirmed ReservationStatus = "confirmada"
)

// Reservation represents a table reservation in the system
type Reservation struct {
	ID        int64
	Name      string
	Phone     string
	Email     *string // optional; selects the notification recipient
	PartySize int
	Date      time.Time // calendar date, time part is always midnight
	Time      types.TimeString
	Status    ReservationStatus
	CreatedAt time.Time
}

// IsPending returns true if the reservation has not been confirmed yet
func (r *Reservation) IsPending() bool {
	return r.Status == StatusPending
}

// IsConfirmed returns true if the reservation counts against slot capacity
func (r *Reservation) IsConfirmed() bool {
	return r.Status == StatusConfirmed
}

// CanBeCancelled returns true if the reservation may be cancelled.
// Only confirmed reservations are cancellable; pending ones are denied instead.
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusConfirmed
}

// HasEmail returns true if the guest left an email address
func (r *Reservation) HasEmail() bool {
	return r.Email != nil && *r.Email != ""
}

// DateString returns the reservation date in YYYY-MM-DD format
func (r *Reservation) DateString() string {
	return r.Date.Format(DateFormat)
}
