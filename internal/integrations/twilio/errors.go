package twilio

import "errors"

var (
	// ErrNotConfigured возвращается, когда не заданы учетные данные Twilio
	ErrNotConfigured = errors.New("twilio client: credentials are not configured")

	// ErrSendFailed возвращается, когда Twilio отклонил отправку сообщения
	ErrSendFailed = errors.New("twilio client: send failed")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("twilio client: internal error")
)
