package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/LaMesa-ReservationService/internal/domain"
)

// ReservationStore интерфейс хранилища броней
type ReservationStore interface {
	// Create создает новую бронь и возвращает ее с присвоенным id
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	// ListConfirmedForDate получает подтвержденные брони на конкретную дату
	ListConfirmedForDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
