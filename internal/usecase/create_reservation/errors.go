package create_reservation

import "errors"

var (
	// ErrInvalidDate возвращается, когда дата брони в прошлом
	ErrInvalidDate = errors.New("create_reservation: invalid reservation date")

	// ErrClosed возвращается, когда ресторан закрыт в указанную дату
	ErrClosed = errors.New("create_reservation: restaurant is closed on this date")

	// ErrInvalidTimeSlot возвращается, когда время не входит в список слотов
	// или выходит за рабочие часы дня
	ErrInvalidTimeSlot = errors.New("create_reservation: invalid time slot")

	// ErrSlotNotAvailable возвращается, когда в слоте не хватает вместимости
	ErrSlotNotAvailable = errors.New("create_reservation: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
