package domain

import "github.com/m04kA/LaMesa-ReservationService/pkg/types"

// AvailableSlot represents a time slot open for booking on a given date
type AvailableSlot struct {
	Time              types.TimeString
	AvailableSpaces   int // capacity left after confirmed reservations
	ReservationsCount int // confirmed reservations at this exact slot
}

// Fits returns true if a party of the given size can be seated in the slot
func (s *AvailableSlot) Fits(partySize int) bool {
	return s.AvailableSpaces >= partySize
}
