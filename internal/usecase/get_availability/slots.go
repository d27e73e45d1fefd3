package get_availability

import (
	"time"

	"github.com/m04kA/LaMesa-ReservationService/internal/domain"
	"github.com/m04kA/LaMesa-ReservationService/pkg/types"
)

// dayAvailability результат расчета доступности на одну дату
type dayAvailability struct {
	Available bool
	Reason    string
	Slots     []domain.AvailableSlot
}

// checkDate проверяет дату без обращения к хранилищу: прошедшие даты,
// закрытые дни недели и особые закрытые даты. Возвращает причину
// недоступности или пустую строку, если день открыт.
func checkDate(cfg *domain.RestaurantConfig, date, now time.Time) string {
	if isDateInPast(date, now) {
		return domain.ReasonPastDate
	}
	if cfg.HoursFor(date) == nil {
		return domain.ReasonClosedWeekday
	}
	if cfg.IsClosedDate(date.Format(domain.DateFormat)) {
		return domain.ReasonClosedDate
	}
	return ""
}

// computeSlots рассчитывает открытые слоты на дату.
// Вместимость считается на каждый слот отдельно: слоты не делят
// вместимость между собой, бронь учитывается только в своем слоте.
// Граница закрытия включительна - слот ровно во время закрытия доступен.
func computeSlots(
	cfg *domain.RestaurantConfig,
	date time.Time,
	partySize int,
	confirmed []*domain.Reservation,
) []domain.AvailableSlot {
	hours := cfg.HoursFor(date)
	if hours == nil {
		return []domain.AvailableSlot{}
	}

	slots := make([]domain.AvailableSlot, 0, len(cfg.TimeSlots))

	for _, slot := range cfg.TimeSlots {
		if !hours.Contains(slot) {
			continue
		}

		people, count := sumConfirmedAt(slot, confirmed)
		availableSpaces := cfg.MaxCapacity - people

		if availableSpaces >= partySize {
			slots = append(slots, domain.AvailableSlot{
				Time:              slot,
				AvailableSpaces:   availableSpaces,
				ReservationsCount: count,
			})
		}
	}

	return slots
}

// sumConfirmedAt суммирует размер компаний подтвержденных броней
// ровно на этот слот и возвращает также их количество
func sumConfirmedAt(slot types.TimeString, confirmed []*domain.Reservation) (int, int) {
	people := 0
	count := 0

	for _, res := range confirmed {
		// Хранилище уже фильтрует по статусу, но оставляем защиту
		// на случай иной реализации
		if !res.IsConfirmed() {
			continue
		}
		if res.Time == slot {
			people += res.PartySize
			count++
		}
	}

	return people, count
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
