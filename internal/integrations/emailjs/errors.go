package emailjs

import "errors"

var (
	// ErrNotConfigured возвращается, когда не заданы учетные данные EmailJS
	ErrNotConfigured = errors.New("emailjs client: credentials are not configured")

	// ErrSendFailed возвращается, когда EmailJS отклонил отправку
	ErrSendFailed = errors.New("emailjs client: send failed")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("emailjs client: internal error")
)
