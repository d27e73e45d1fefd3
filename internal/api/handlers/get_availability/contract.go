package get_availability

import (
	"context"

	getAvailability "github.com/m04kA/LaMesa-ReservationService/internal/usecase/get_availability"
)

type AvailabilityUseCase interface {
	Execute(ctx context.Context, req *getAvailability.Request) (*getAvailability.DayResponse, error)
	ExecuteMonth(ctx context.Context) (*getAvailability.MonthResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
