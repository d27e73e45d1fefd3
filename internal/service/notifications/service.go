// Package notifications отправляет уведомления о переходах статуса брони.
// Выбор канала: email гостя, если он указан; письмо ресторану, если нет;
// SMS гостю, если сервис настроен на канал "sms". Ровно одно уведомление
// на переход.
package notifications

import (
	"context"

	"github.com/m04kA/LaMesa-ReservationService/internal/domain"
)

// Service сервис уведомлений
type Service struct {
	email           EmailSender
	sms             SMSSender
	channel         Channel
	restaurantEmail string
	restaurantPhone string
	metrics         MetricsObserver
	log             Logger
}

// NewService создает новый экземпляр сервиса уведомлений.
// metrics может быть nil, если сбор метрик выключен.
func NewService(
	email EmailSender,
	sms SMSSender,
	channel Channel,
	restaurantEmail string,
	restaurantPhone string,
	metrics MetricsObserver,
	log Logger,
) *Service {
	return &Service{
		email:           email,
		sms:             sms,
		channel:         channel,
		restaurantEmail: restaurantEmail,
		restaurantPhone: restaurantPhone,
		metrics:         metrics,
		log:             log,
	}
}

// NotifyConfirmed уведомляет о подтверждении брони
func (s *Service) NotifyConfirmed(ctx context.Context, res *domain.Reservation) Result {
	return s.notify(ctx, TransitionConfirmed, res)
}

// NotifyDenied уведомляет об отказе в брони
func (s *Service) NotifyDenied(ctx context.Context, res *domain.Reservation) Result {
	return s.notify(ctx, TransitionDenied, res)
}

// notify отправляет ровно одно уведомление о переходе.
// Ошибка отправки не фатальна: она логируется и возвращается в Result.
func (s *Service) notify(ctx context.Context, transition Transition, res *domain.Reservation) Result {
	var result Result

	if s.channel == ChannelSMS {
		result = s.sendSMS(ctx, transition, res)
	} else {
		result = s.sendEmail(ctx, transition, res)
	}

	if result.Failed() {
		s.log.Warn("Notify: %s notification failed for reservation id=%d via %s to %s: %v",
			transition, res.ID, result.Channel, result.Recipient, result.Err)
	} else {
		s.log.Info("Notify: %s notification sent for reservation id=%d via %s to %s",
			transition, res.ID, result.Channel, result.Recipient)
	}

	if s.metrics != nil {
		s.metrics.ObserveNotification(string(transition), string(result.Channel), result.Sent)
	}

	return result
}

func (s *Service) sendEmail(ctx context.Context, transition Transition, res *domain.Reservation) Result {
	var params = s.restaurantEmailParams(transition, res)
	if res.HasEmail() {
		params = s.guestEmailParams(transition, res)
	}

	err := s.email.Send(ctx, params)
	return Result{
		Sent:      err == nil,
		Channel:   ChannelEmail,
		Recipient: params.ToEmail,
		Err:       err,
	}
}

func (s *Service) sendSMS(ctx context.Context, transition Transition, res *domain.Reservation) Result {
	err := s.sms.SendSMS(ctx, res.Phone, s.smsBody(transition, res))
	return Result{
		Sent:      err == nil,
		Channel:   ChannelSMS,
		Recipient: res.Phone,
		Err:       err,
	}
}
