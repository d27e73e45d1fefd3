package notifications

import (
	"fmt"
	"time"
)

// Испанские названия дней недели, индекс = time.Weekday (0 = Domingo)
var weekdays = [7]string{
	"Domingo", "Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado",
}

// Испанские названия месяцев, индекс = time.Month - 1
var months = [12]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// FormatFecha форматирует дату для текстов уведомлений:
// "Viernes día 14 de Noviembre"
func FormatFecha(date time.Time) string {
	return fmt.Sprintf("%s día %d de %s",
		weekdays[int(date.Weekday())],
		date.Day(),
		months[int(date.Month())-1],
	)
}
