// Package storage определяет общие ошибки хранилища броней.
// Бэкенды (postgres, supabase, mongo) взаимозаменяемы, поэтому
// sentinel-ошибки вынесены сюда: сервисный слой сравнивает через
// errors.Is, не зная конкретного бэкенда.
package storage

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронь не найдена
	ErrReservationNotFound = errors.New("storage: reservation not found")

	// ErrBuildQuery возвращается при ошибке построения запроса
	ErrBuildQuery = errors.New("storage: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения запроса
	ErrExecQuery = errors.New("storage: failed to execute query")

	// ErrScanRow возвращается при ошибке чтения результата
	ErrScanRow = errors.New("storage: failed to scan row")

	// ErrUnavailable возвращается, когда бэкенд недоступен
	// (сетевая ошибка, отказ сервиса)
	ErrUnavailable = errors.New("storage: backend unavailable")
)
