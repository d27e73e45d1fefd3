package create_reservation

import (
	"context"
	"fmt"

	"github.com/m04kA/LaMesa-ReservationService/internal/domain"
)

// UseCase use case для создания брони
type UseCase struct {
	store        ReservationStore
	restaurant   *domain.RestaurantConfig
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(store ReservationStore, restaurant *domain.RestaurantConfig, logger Logger) *UseCase {
	return &UseCase{
		store:        store,
		restaurant:   restaurant,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания брони.
// Вместимость проверяется до записи: подтвержденные гости слота
// плюс новая компания не должны превышать вместимость ресторана
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: name=%s, date=%s, time=%s, partySize=%d",
		req.Name, req.Date.Format(domain.DateFormat), req.Time, req.PartySize)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем дату: прошлое, закрытый день недели, особые даты
	if err := validateDate(uc.restaurant, req.Date, now); err != nil {
		uc.logger.Warn("CreateReservation: date %s rejected: %v", req.Date.Format(domain.DateFormat), err)
		return nil, err
	}

	// 4. Проверяем, что время является допустимым слотом
	if err := validateTimeSlot(uc.restaurant, req.Date, req.Time); err != nil {
		uc.logger.Warn("CreateReservation: time %s rejected: %v", req.Time, err)
		return nil, err
	}

	// 5. Проверяем вместимость слота по подтвержденным броням
	confirmed, err := uc.store.ListConfirmedForDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to list confirmed reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to list confirmed reservations: %v", ErrInternal, err)
	}

	occupied := sumConfirmedAt(req.Time, confirmed)
	if occupied+req.PartySize > uc.restaurant.MaxCapacity {
		uc.logger.Warn("CreateReservation: slot %s %s full: occupied=%d, requested=%d, capacity=%d",
			req.Date.Format(domain.DateFormat), req.Time, occupied, req.PartySize, uc.restaurant.MaxCapacity)
		return nil, fmt.Errorf("%w: %d seats occupied, %d requested", ErrSlotNotAvailable, occupied, req.PartySize)
	}

	// 6. Создаем бронь
	status := domain.StatusPending
	if uc.restaurant.AutoConfirm {
		status = domain.StatusConfirmed
	}

	created, err := uc.store.Create(ctx, &domain.Reservation{
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		PartySize: req.PartySize,
		Date:      req.Date,
		Time:      req.Time,
		Status:    status,
		CreatedAt: now,
	})
	if err != nil {
		uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
		return nil, fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateReservation: created id=%d with status=%s", created.ID, created.Status)

	return toResponse(created), nil
}
