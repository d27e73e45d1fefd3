package domain

// Default configuration values
const (
	DefaultMaxCapacity = 50
	MinPartySize       = 1
)

// MonthViewDays is the number of days covered by the month availability view,
// counting today
const MonthViewDays = 30

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Причины недоступности даты (дословно из пользовательского интерфейса)
const (
	ReasonPastDate      = "Fecha pasada"
	ReasonClosedWeekday = "Restaurante cerrado"
	ReasonClosedDate    = "Día especial cerrado"
	ReasonNoCapacity    = "Sin disponibilidad"
)

// Сокращенные испанские названия дней недели, индекс = time.Weekday
var ShortWeekdays = [7]string{"Dom", "Lun", "Mar", "Mié", "Jue", "Vie", "Sáb"}
