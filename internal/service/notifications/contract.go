package notifications

import (
	"context"

	"github.com/m04kA/LaMesa-ReservationService/internal/integrations/emailjs"
)

// EmailSender интерфейс отправки писем (EmailJS)
type EmailSender interface {
	Send(ctx context.Context, params emailjs.TemplateParams) error
}

// SMSSender интерфейс отправки SMS (Twilio)
type SMSSender interface {
	SendSMS(ctx context.Context, to, body string) error
}

// MetricsObserver интерфейс учета попыток отправки уведомлений
type MetricsObserver interface {
	ObserveNotification(transition, channel string, sent bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
