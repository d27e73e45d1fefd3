package list_reservations

import (
	"context"

	"github.com/m04kA/LaMesa-ReservationService/internal/service/reservations/models"
)

type ReservationsService interface {
	List(ctx context.Context) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
