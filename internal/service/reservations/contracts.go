package reservations

import (
	"context"

	"github.com/m04kA/LaMesa-ReservationService/internal/domain"
	"github.com/m04kA/LaMesa-ReservationService/internal/service/notifications"
)

// ReservationStore интерфейс хранилища броней.
// Реализации: postgres, supabase, mongodb.
type ReservationStore interface {
	ListAll(ctx context.Context) ([]*domain.Reservation, error)
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
	Delete(ctx context.Context, id int64) (*domain.Reservation, error)
}

// Notifier интерфейс сервиса уведомлений
type Notifier interface {
	NotifyConfirmed(ctx context.Context, res *domain.Reservation) notifications.Result
	NotifyDenied(ctx context.Context, res *domain.Reservation) notifications.Result
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
