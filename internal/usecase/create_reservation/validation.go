package create_reservation

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/LaMesa-ReservationService/internal/domain"
	"github.com/m04kA/LaMesa-ReservationService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	if req.PartySize < domain.MinPartySize {
		return fmt.Errorf("%w: partySize must be at least %d", ErrInvalidInput, domain.MinPartySize)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время указано
	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateDate проверяет, что ресторан открыт в указанную дату
func validateDate(cfg *domain.RestaurantConfig, date, now time.Time) error {
	// Проверяем, что дата не в прошлом
	if isDateInPast(date, now) {
		return ErrInvalidDate
	}

	// Проверяем день недели
	if cfg.HoursFor(date) == nil {
		return fmt.Errorf("%w: closed on %s", ErrClosed, date.Weekday())
	}

	// Проверяем особые закрытые даты
	if cfg.IsClosedDate(date.Format(domain.DateFormat)) {
		return fmt.Errorf("%w: special closed date %s", ErrClosed, date.Format(domain.DateFormat))
	}

	return nil
}

// validateTimeSlot проверяет, что время входит в список слотов
// и попадает в рабочие часы дня (граница закрытия включительна)
func validateTimeSlot(cfg *domain.RestaurantConfig, date time.Time, slot types.TimeString) error {
	if !cfg.IsBookableSlot(slot) {
		return fmt.Errorf("%w: %s is not a bookable slot", ErrInvalidTimeSlot, slot)
	}

	hours := cfg.HoursFor(date)
	if hours == nil || !hours.Contains(slot) {
		return fmt.Errorf("%w: %s is outside opening hours", ErrInvalidTimeSlot, slot)
	}

	return nil
}

// sumConfirmedAt суммирует размер компаний подтвержденных броней ровно на этот слот
func sumConfirmedAt(slot types.TimeString, confirmed []*domain.Reservation) int {
	people := 0

	for _, res := range confirmed {
		if !res.IsConfirmed() {
			continue
		}
		if res.Time == slot {
			people += res.PartySize
		}
	}

	return people
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
