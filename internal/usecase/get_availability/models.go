package get_availability

import "time"

// Request модель запроса доступности на конкретную дату
type Request struct {
	Date      time.Time // дата запроса (без времени)
	PartySize int       // размер компании, >= 1
}

// SlotResponse открытый слот с остатком вместимости
type SlotResponse struct {
	Time              string `json:"time"`
	AvailableSpaces   int    `json:"availableSpaces"`
	ReservationsCount int    `json:"reservationsCount"`
}

// HoursResponse интервал работы ресторана
type HoursResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DayResponse доступность на одну дату
type DayResponse struct {
	Fecha          string         `json:"fecha"`
	Available      bool           `json:"available"`
	Reason         string         `json:"reason,omitempty"`
	AvailableSlots []SlotResponse `json:"availableSlots"`
	DayOfWeek      string         `json:"dayOfWeek,omitempty"`
	OpeningHours   *HoursResponse `json:"openingHours,omitempty"`
}

// DaySummary компактная сводка по дню для месячного обзора
type DaySummary struct {
	Available  bool   `json:"available"`
	Reason     string `json:"reason,omitempty"`
	SlotsCount int    `json:"slotsCount"`
	DayOfWeek  string `json:"dayOfWeek"`
}

// ConfigEcho сводка конфигурации ресторана в месячном обзоре
type ConfigEcho struct {
	// OpeningHours индексированы днем недели (0 = воскресенье), nil = закрыто
	OpeningHours map[int]*HoursResponse `json:"openingHours"`
	MaxCapacity  int                    `json:"maxCapacity"`
}

// MonthResponse доступность на ближайшие 30 дней
type MonthResponse struct {
	Month            int                   `json:"month"`
	Year             int                   `json:"year"`
	Availability     map[string]DaySummary `json:"availability"`
	RestaurantConfig ConfigEcho            `json:"restaurantConfig"`
}
