package domain

import (
	"time"

	"github.com/m04kA/LaMesa-ReservationService/pkg/types"
)

// OpeningInterval represents the opening hours of a single weekday
type OpeningInterval struct {
	Start types.TimeString
	End   types.TimeString
}

// Contains returns true if the slot falls within the interval.
// Both boundaries are inclusive: a slot exactly at closing time is bookable.
func (i OpeningInterval) Contains(slot types.TimeString) bool {
	return !slot.IsBefore(i.Start) && !slot.IsAfter(i.End)
}

// RestaurantConfig holds the static restaurant configuration.
// It is loaded once at process start and never mutated afterwards.
type RestaurantConfig struct {
	// OpeningHours indexed by time.Weekday (0 = Sunday). nil = closed that day.
	OpeningHours [7]*OpeningInterval

	// MaxCapacity is the total number of diners per slot, independent of tables
	MaxCapacity int

	// TimeSlots is the fixed list of bookable clock times
	TimeSlots []types.TimeString

	// ClosedDates lists fully-closed calendar dates (YYYY-MM-DD), e.g. holidays
	ClosedDates []string

	// AutoConfirm makes the booking operation confirm inline instead of
	// creating a pending reservation
	AutoConfirm bool
}

// HoursFor returns the opening interval for the given date's weekday,
// or nil if the restaurant is closed that weekday
func (c *RestaurantConfig) HoursFor(date time.Time) *OpeningInterval {
	return c.OpeningHours[int(date.Weekday())]
}

// IsClosedDate returns true if the date (YYYY-MM-DD) is a special closed day
func (c *RestaurantConfig) IsClosedDate(fecha string) bool {
	for _, d := range c.ClosedDates {
		if d == fecha {
			return true
		}
	}
	return false
}

// IsBookableSlot returns true if the time belongs to the fixed slot list
func (c *RestaurantConfig) IsBookableSlot(t types.TimeString) bool {
	for _, slot := range c.TimeSlots {
		if slot == t {
			return true
		}
	}
	return false
}

// DefaultRestaurantConfig возвращает конфигурацию ресторана по умолчанию:
// закрыто по воскресеньям, 12:00-23:00 пн-чт, 12:00-23:30 пт-сб,
// вместимость 50 человек, слоты по 30 минут на обед и ужин
func DefaultRestaurantConfig() RestaurantConfig {
	return RestaurantConfig{
		OpeningHours: [7]*OpeningInterval{
			time.Sunday:    nil,
			time.Monday:    {Start: "12:00", End: "23:00"},
			time.Tuesday:   {Start: "12:00", End: "23:00"},
			time.Wednesday: {Start: "12:00", End: "23:00"},
			time.Thursday:  {Start: "12:00", End: "23:00"},
			time.Friday:    {Start: "12:00", End: "23:30"},
			time.Saturday:  {Start: "12:00", End: "23:30"},
		},
		MaxCapacity: DefaultMaxCapacity,
		TimeSlots: []types.TimeString{
			"12:00", "12:30", "13:00", "13:30", "14:00", "14:30",
			"19:00", "19:30", "20:00", "20:30", "21:00", "21:30", "22:00", "22:30", "23:00",
		},
		ClosedDates: []string{
			"2025-12-25", // Navidad
			"2025-12-31", // Nochevieja
			"2026-01-01", // Año nuevo
		},
	}
}
