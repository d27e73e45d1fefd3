package get_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/LaMesa-ReservationService/internal/domain"
)

type UseCase struct {
	store        ReservationStore
	restaurant   *domain.RestaurantConfig
	timeProvider TimeProvider
	logger       Logger
}

func NewUseCase(store ReservationStore, restaurant *domain.RestaurantConfig, logger Logger) *UseCase {
	return &UseCase{
		store:        store,
		restaurant:   restaurant,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute возвращает доступность на конкретную дату: открытые слоты
// с оставшейся вместимостью или причину недоступности дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*DayResponse, error) {
	// 1. Валидация входных данных
	if req == nil || req.Date.IsZero() {
		return nil, fmt.Errorf("%w: Execute - date is required", ErrInvalidInput)
	}
	if req.PartySize < domain.MinPartySize {
		return nil, fmt.Errorf("%w: Execute - party size must be at least %d", ErrInvalidInput, domain.MinPartySize)
	}

	fecha := req.Date.Format(domain.DateFormat)
	now := uc.timeProvider.Now()

	// 2. Проверки, не требующие обращения к хранилищу
	if reason := checkDate(uc.restaurant, req.Date, now); reason != "" {
		uc.logger.Info("Execute: date %s unavailable: %s", fecha, reason)
		return uc.unavailableDay(fecha, reason, req.Date), nil
	}

	// 3. Подтвержденные брони на дату
	confirmed, err := uc.store.ListConfirmedForDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("Execute: failed to list confirmed reservations for %s: %v", fecha, err)
		return nil, fmt.Errorf("%w: Execute - list confirmed reservations: %v", ErrInternal, err)
	}

	// 4. Расчет слотов
	slots := computeSlots(uc.restaurant, req.Date, req.PartySize, confirmed)
	if len(slots) == 0 {
		return uc.unavailableDay(fecha, domain.ReasonNoCapacity, req.Date), nil
	}

	return &DayResponse{
		Fecha:          fecha,
		Available:      true,
		AvailableSlots: toSlotResponses(slots),
		DayOfWeek:      domain.ShortWeekdays[req.Date.Weekday()],
		OpeningHours:   toHoursResponse(uc.restaurant.HoursFor(req.Date)),
	}, nil
}

// ExecuteMonth возвращает сводку доступности на ближайшие 30 дней
// вместе с публичной частью конфигурации ресторана
func (uc *UseCase) ExecuteMonth(ctx context.Context) (*MonthResponse, error) {
	now := uc.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	availability := make(map[string]DaySummary, domain.MonthViewDays)

	for i := 0; i < domain.MonthViewDays; i++ {
		date := today.AddDate(0, 0, i)
		fecha := date.Format(domain.DateFormat)

		summary, err := uc.daySummary(ctx, date, fecha, now)
		if err != nil {
			return nil, err
		}

		availability[fecha] = summary
	}

	return &MonthResponse{
		Month:            int(now.Month()),
		Year:             now.Year(),
		Availability:     availability,
		RestaurantConfig: uc.configEcho(),
	}, nil
}

func (uc *UseCase) daySummary(ctx context.Context, date time.Time, fecha string, now time.Time) (DaySummary, error) {
	dayOfWeek := domain.ShortWeekdays[date.Weekday()]

	if reason := checkDate(uc.restaurant, date, now); reason != "" {
		return DaySummary{
			Available:  false,
			Reason:     reason,
			SlotsCount: 0,
			DayOfWeek:  dayOfWeek,
		}, nil
	}

	confirmed, err := uc.store.ListConfirmedForDate(ctx, date)
	if err != nil {
		uc.logger.Error("ExecuteMonth: failed to list confirmed reservations for %s: %v", fecha, err)
		return DaySummary{}, fmt.Errorf("%w: ExecuteMonth - list confirmed reservations: %v", ErrInternal, err)
	}

	// Для обзора месяца проверяем доступность хотя бы на одного гостя
	slots := computeSlots(uc.restaurant, date, domain.MinPartySize, confirmed)
	if len(slots) == 0 {
		return DaySummary{
			Available:  false,
			Reason:     domain.ReasonNoCapacity,
			SlotsCount: 0,
			DayOfWeek:  dayOfWeek,
		}, nil
	}

	return DaySummary{
		Available:  true,
		SlotsCount: len(slots),
		DayOfWeek:  dayOfWeek,
	}, nil
}

func (uc *UseCase) unavailableDay(fecha, reason string, date time.Time) *DayResponse {
	return &DayResponse{
		Fecha:          fecha,
		Available:      false,
		Reason:         reason,
		AvailableSlots: []SlotResponse{},
		DayOfWeek:      domain.ShortWeekdays[date.Weekday()],
	}
}

func (uc *UseCase) configEcho() ConfigEcho {
	hours := make(map[int]*HoursResponse, len(uc.restaurant.OpeningHours))
	for day, interval := range uc.restaurant.OpeningHours {
		hours[day] = toHoursResponse(interval)
	}

	return ConfigEcho{
		OpeningHours: hours,
		MaxCapacity:  uc.restaurant.MaxCapacity,
	}
}

func toSlotResponses(slots []domain.AvailableSlot) []SlotResponse {
	out := make([]SlotResponse, 0, len(slots))
	for _, slot := range slots {
		out = append(out, SlotResponse{
			Time:              string(slot.Time),
			AvailableSpaces:   slot.AvailableSpaces,
			ReservationsCount: slot.ReservationsCount,
		})
	}
	return out
}

func toHoursResponse(interval *domain.OpeningInterval) *HoursResponse {
	if interval == nil {
		return nil
	}
	return &HoursResponse{
		Start: string(interval.Start),
		End:   string(interval.End),
	}
}
