package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронь не найдена
	ErrReservationNotFound = errors.New("reservations: reservation not found")

	// ErrAlreadyConfirmed возвращается при попытке подтвердить бронь,
	// которая уже не в статусе pendiente
	ErrAlreadyConfirmed = errors.New("reservations: reservation is already confirmed")

	// ErrCannotCancel возвращается при попытке отменить бронь,
	// которая еще не подтверждена. Отличается от not-found:
	// бронь существует, но переход запрещен.
	ErrCannotCancel = errors.New("reservations: only confirmed reservations can be cancelled")

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("reservations: internal error")
)
