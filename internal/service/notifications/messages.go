package notifications

import (
	"fmt"

	"github.com/m04kA/LaMesa-ReservationService/internal/domain"
	"github.com/m04kA/LaMesa-ReservationService/internal/integrations/emailjs"
)

// Темы писем по переходу и адресату
const (
	subjectConfirmedGuest      = "Reserva Confirmada ✅"
	subjectConfirmedRestaurant = "Reserva Confirmada ✅ - Contactar cliente"
	subjectDeniedGuest         = "Reserva no disponible ❌"
	subjectDeniedRestaurant    = "Reserva Denegada ❌ - Contactar cliente"

	restaurantTeamName = "Equipo del Restaurante"
	noEmailPlaceholder = "No proporcionado"
)

// guestEmailParams собирает письмо гостю
func (s *Service) guestEmailParams(transition Transition, res *domain.Reservation) emailjs.TemplateParams {
	fecha := FormatFecha(res.Date)

	var subject, message string
	switch transition {
	case TransitionConfirmed:
		subject = subjectConfirmedGuest
		message = fmt.Sprintf(`¡Hola %s!

Tu reserva ha sido CONFIRMADA:

📅 Fecha: %s
🕐 Hora: %s
👥 Personas: %d
📞 Teléfono: %s

¡Te esperamos! Gracias por elegirnos.`,
			res.Name, fecha, res.Time, res.PartySize, res.Phone)

	case TransitionDenied:
		subject = subjectDeniedGuest
		message = fmt.Sprintf(`Hola %s,

Lamentamos informarte que tu reserva no ha podido ser confirmada:

📅 Fecha solicitada: %s
🕐 Hora: %s
👥 Personas: %d

MOTIVO: No hay disponibilidad para esa fecha y hora.

¿Te interesa otra fecha? Contacta con nosotros:
📞 Teléfono: %s
📧 Email: %s`,
			res.Name, fecha, res.Time, res.PartySize, s.restaurantPhone, s.restaurantEmail)
	}

	return emailjs.TemplateParams{
		ToName:  res.Name,
		ToEmail: *res.Email,
		Subject: subject,
		Message: message,
		ReplyTo: s.restaurantEmail,
	}
}

// restaurantEmailParams собирает письмо ресторану, когда у гостя нет email.
// Письмо содержит телефон гостя для ручного контакта.
func (s *Service) restaurantEmailParams(transition Transition, res *domain.Reservation) emailjs.TemplateParams {
	fecha := FormatFecha(res.Date)

	email := noEmailPlaceholder
	if res.HasEmail() {
		email = *res.Email
	}

	var subject, header, action string
	switch transition {
	case TransitionConfirmed:
		subject = subjectConfirmedRestaurant
		header = "Se ha confirmado una reserva. Datos del cliente para contactar:"
		action = "ACCIÓN: Contacta al cliente para confirmar los detalles finales."
	case TransitionDenied:
		subject = subjectDeniedRestaurant
		header = "Se ha denegado una reserva. Datos del cliente para contactar:"
		action = "ACCIÓN: Contacta al cliente para ofrecerle una fecha alternativa."
	}

	message := fmt.Sprintf(`%s

👤 Cliente: %s
📞 Teléfono: %s
📧 Email: %s
📅 Fecha: %s
🕐 Hora: %s
👥 Personas: %d

%s`,
		header, res.Name, res.Phone, email, fecha, res.Time, res.PartySize, action)

	return emailjs.TemplateParams{
		ToName:  restaurantTeamName,
		ToEmail: s.restaurantEmail,
		Subject: subject,
		Message: message,
		ReplyTo: s.restaurantEmail,
	}
}

// smsBody собирает компактный текст SMS
func (s *Service) smsBody(transition Transition, res *domain.Reservation) string {
	fecha := FormatFecha(res.Date)

	switch transition {
	case TransitionConfirmed:
		return fmt.Sprintf("¡Hola %s! Tu reserva para el %s a las %s (%d personas) ha sido CONFIRMADA. ¡Te esperamos!",
			res.Name, fecha, res.Time, res.PartySize)
	case TransitionDenied:
		return fmt.Sprintf("Hola %s, lamentablemente tu reserva para el %s a las %s no ha podido ser confirmada. Llámanos al %s.",
			res.Name, fecha, res.Time, s.restaurantPhone)
	}
	return ""
}
