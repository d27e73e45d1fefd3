// Package reservations реализует жизненный цикл брони:
// список, подтверждение, отказ и отмена.
//
// Машина состояний: pendiente -> confirmada (подтверждение),
// pendiente -> удалена (отказ), confirmada -> удалена (отмена).
// Отказ и отмена физически удаляют строку - терминального статуса нет.
package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/LaMesa-ReservationService/internal/domain"
	"github.com/m04kA/LaMesa-ReservationService/internal/infra/storage"
	"github.com/m04kA/LaMesa-ReservationService/internal/service/reservations/models"
)

// Service сервис жизненного цикла броней
type Service struct {
	store    ReservationStore
	notifier Notifier
	log      Logger
}

// NewService создает новый экземпляр сервиса броней
func NewService(store ReservationStore, notifier Notifier, log Logger) *Service {
	return &Service{
		store:    store,
		notifier: notifier,
		log:      log,
	}
}

// List возвращает все брони, отсортированные по дате и времени
func (s *Service) List(ctx context.Context) (*models.ReservationListResponse, error) {
	reservas, err := s.store.ListAll(ctx)
	if err != nil {
		s.log.Error("List: store error: %v", err)
		return nil, fmt.Errorf("%w: List - store error: %v", ErrInternal, err)
	}

	s.log.Info("List: fetched %d reservations", len(reservas))
	return models.FromDomainList(reservas), nil
}

// Confirm подтверждает бронь: pendiente -> confirmada.
// После записи статуса отправляется ровно одно уведомление;
// его неуспех не откатывает подтверждение.
func (s *Service) Confirm(ctx context.Context, id int64) (*models.TransitionResponse, error) {
	res, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrReservationNotFound) {
			s.log.Warn("Confirm: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.log.Error("Confirm: store error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Confirm - store error: %v", ErrInternal, err)
	}

	if !res.IsPending() {
		s.log.Warn("Confirm: reservation id=%d has status=%s, cannot confirm", id, res.Status)
		return nil, ErrAlreadyConfirmed
	}

	if err := s.store.UpdateStatus(ctx, id, domain.StatusConfirmed); err != nil {
		if errors.Is(err, storage.ErrReservationNotFound) {
			s.log.Warn("Confirm: reservation id=%d disappeared during update", id)
			return nil, ErrReservationNotFound
		}
		s.log.Error("Confirm: store error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Confirm - store error: %v", ErrInternal, err)
	}

	res.Status = domain.StatusConfirmed
	s.log.Info("Confirm: reservation id=%d confirmed", id)

	// Переход уже совершен - результат уведомления только прикладывается к ответу
	notifyResult := s.notifier.NotifyConfirmed(ctx, res)

	return &models.TransitionResponse{
		Reservation:  models.FromDomainReservation(res),
		Notification: models.FromNotifyResult(notifyResult),
	}, nil
}

// Deny отказывает в брони: pendiente -> удалена.
// Уведомление отправляется до удаления, удаление выполняется
// независимо от результата отправки.
func (s *Service) Deny(ctx context.Context, id int64) (*models.TransitionResponse, error) {
	res, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrReservationNotFound) {
			s.log.Warn("Deny: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.log.Error("Deny: store error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Deny - store error: %v", ErrInternal, err)
	}

	notifyResult := s.notifier.NotifyDenied(ctx, res)

	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrReservationNotFound) {
			s.log.Warn("Deny: reservation id=%d disappeared during delete", id)
			return nil, ErrReservationNotFound
		}
		s.log.Error("Deny: store error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Deny - store error: %v", ErrInternal, err)
	}

	s.log.Info("Deny: reservation id=%d denied and removed", id)

	return &models.TransitionResponse{
		Reservation:  models.FromDomainReservation(deleted),
		Notification: models.FromNotifyResult(notifyResult),
	}, nil
}

// Cancel отменяет подтвержденную бронь: confirmada -> удалена.
// Отмена pendiente-брони запрещена и отличается от not-found.
// Возвращает удаленный снимок.
func (s *Service) Cancel(ctx context.Context, id int64) (*models.CancelResponse, error) {
	res, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrReservationNotFound) {
			s.log.Warn("Cancel: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.log.Error("Cancel: store error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - store error: %v", ErrInternal, err)
	}

	if !res.CanBeCancelled() {
		s.log.Warn("Cancel: reservation id=%d has status=%s, cannot cancel", id, res.Status)
		return nil, ErrCannotCancel
	}

	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrReservationNotFound) {
			s.log.Warn("Cancel: reservation id=%d disappeared during delete", id)
			return nil, ErrReservationNotFound
		}
		s.log.Error("Cancel: store error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - store error: %v", ErrInternal, err)
	}

	s.log.Info("Cancel: reservation id=%d cancelled and removed", id)

	return &models.CancelResponse{
		Cancelled: models.FromDomainReservation(deleted),
	}, nil
}
