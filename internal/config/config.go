// Package config загружает конфигурацию сервиса из config.toml.
// Секреты (пароли, API-ключи) берутся из переменных окружения,
// а не из файла конфигурации.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/LaMesa-ReservationService/internal/domain"
	"github.com/m04kA/LaMesa-ReservationService/pkg/types"
)

// Config корневая конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Storage    StorageConfig    `toml:"storage"`
	Database   DatabaseConfig   `toml:"database"`
	Mongo      MongoConfig      `toml:"mongo"`
	Supabase   SupabaseConfig   `toml:"supabase"`
	Notifier   NotifierConfig   `toml:"notifier"`
	Restaurant RestaurantConfig `toml:"restaurant"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// StorageConfig выбор бэкенда хранилища броней
type StorageConfig struct {
	// Backend: "postgres", "supabase" или "mongo"
	Backend string `toml:"backend"`
}

// DatabaseConfig настройки подключения к PostgreSQL.
// Пароль берется из переменной окружения DB_PASSWORD.
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"-"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN собирает строку подключения к PostgreSQL
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// MongoConfig настройки подключения к MongoDB.
// URI берется из переменной окружения MONGO_URI, если задана.
type MongoConfig struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
	Timeout    int    `toml:"timeout"`
}

// SupabaseConfig настройки REST-клиента Supabase.
// Ключ берется из переменной окружения SUPABASE_ANON_KEY.
type SupabaseConfig struct {
	URL     string `toml:"url"`
	APIKey  string `toml:"-"`
	Table   string `toml:"table"`
	Timeout int    `toml:"timeout"`
}

// NotifierConfig настройки уведомлений о смене статуса брони
type NotifierConfig struct {
	// Channel: "email" (EmailJS) или "sms" (Twilio)
	Channel string `toml:"channel"`

	// RestaurantEmail адрес ресторана для броней без email гостя
	// (переопределяется переменной окружения RESTAURANT_EMAIL)
	RestaurantEmail string `toml:"restaurant_email"`

	// RestaurantPhone телефон ресторана, попадает в тексты отказов
	// (переопределяется переменной окружения RESTAURANT_PHONE)
	RestaurantPhone string `toml:"restaurant_phone"`

	EmailJS EmailJSConfig `toml:"emailjs"`
	Twilio  TwilioConfig  `toml:"twilio"`
}

// EmailJSConfig учетные данные EmailJS, целиком из окружения
type EmailJSConfig struct {
	ServiceID  string `toml:"-"`
	TemplateID string `toml:"-"`
	PublicKey  string `toml:"-"`
	PrivateKey string `toml:"-"`
	Timeout    int    `toml:"timeout"`
}

// TwilioConfig учетные данные Twilio, целиком из окружения
type TwilioConfig struct {
	AccountSID string `toml:"-"`
	AuthToken  string `toml:"-"`
	From       string `toml:"-"`
	Timeout    int    `toml:"timeout"`
}

// RestaurantConfig конфигурация ресторана в формате config.toml
type RestaurantConfig struct {
	MaxCapacity int      `toml:"max_capacity"`
	AutoConfirm bool     `toml:"auto_confirm"`
	TimeSlots   []string `toml:"time_slots"`
	ClosedDates []string `toml:"closed_dates"`
	// Hours: день недели -> "HH:MM-HH:MM", пустая строка = закрыто
	Hours map[string]string `toml:"hours"`
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ToDomain конвертирует секцию [restaurant] в domain.RestaurantConfig.
// Отсутствующие поля заполняются значениями по умолчанию.
func (c RestaurantConfig) ToDomain() (domain.RestaurantConfig, error) {
	cfg := domain.DefaultRestaurantConfig()
	cfg.AutoConfirm = c.AutoConfirm

	if c.MaxCapacity > 0 {
		cfg.MaxCapacity = c.MaxCapacity
	}

	if len(c.TimeSlots) > 0 {
		slots := make([]types.TimeString, 0, len(c.TimeSlots))
		for _, s := range c.TimeSlots {
			ts, err := types.NewTimeStringFromString(s)
			if err != nil {
				return domain.RestaurantConfig{}, fmt.Errorf("config: time_slots: %w", err)
			}
			slots = append(slots, ts)
		}
		cfg.TimeSlots = slots
	}

	if len(c.ClosedDates) > 0 {
		for _, d := range c.ClosedDates {
			if _, err := time.Parse(domain.DateFormat, d); err != nil {
				return domain.RestaurantConfig{}, fmt.Errorf("config: closed_dates: invalid date %q", d)
			}
		}
		cfg.ClosedDates = c.ClosedDates
	}

	if len(c.Hours) > 0 {
		var hours [7]*domain.OpeningInterval
		for name, spec := range c.Hours {
			day, ok := weekdayNames[strings.ToLower(name)]
			if !ok {
				return domain.RestaurantConfig{}, fmt.Errorf("config: hours: unknown weekday %q", name)
			}
			if spec == "" {
				continue // закрыто
			}
			interval, err := parseInterval(spec)
			if err != nil {
				return domain.RestaurantConfig{}, fmt.Errorf("config: hours.%s: %w", name, err)
			}
			hours[int(day)] = interval
		}
		cfg.OpeningHours = hours
	}

	return cfg, nil
}

func parseInterval(spec string) (*domain.OpeningInterval, error) {
	parts := strings.SplitN(spec, "-", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("expected \"HH:MM-HH:MM\", got %q", spec)
	}
	start, err := types.NewTimeStringFromString(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, err
	}
	end, err := types.NewTimeStringFromString(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, err
	}
	if end.IsBefore(start) {
		return nil, fmt.Errorf("closing time %s is before opening time %s", end, start)
	}
	return &domain.OpeningInterval{Start: start, End: end}, nil
}

// Load читает конфигурацию из toml-файла и накладывает секреты из окружения
func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs:    LogsConfig{Level: "info"},
		Metrics: MetricsConfig{ServiceName: "lamesa-reservations", Path: "/metrics"},
		Storage: StorageConfig{Backend: "postgres"},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Mongo:    MongoConfig{Database: "lamesa", Collection: "reservas", Timeout: 10},
		Supabase: SupabaseConfig{Table: "reservas", Timeout: 10},
		Notifier: NotifierConfig{
			Channel: "email",
			EmailJS: EmailJSConfig{Timeout: 10},
			Twilio:  TwilioConfig{Timeout: 10},
		},
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv накладывает секреты и переопределения из переменных окружения
func (c *Config) applyEnv() {
	c.Database.Password = os.Getenv("DB_PASSWORD")

	if v := os.Getenv("MONGO_URI"); v != "" {
		c.Mongo.URI = v
	}
	if v := os.Getenv("SUPABASE_URL"); v != "" {
		c.Supabase.URL = v
	}
	c.Supabase.APIKey = os.Getenv("SUPABASE_ANON_KEY")

	c.Notifier.EmailJS.ServiceID = os.Getenv("EMAILJS_SERVICE_ID")
	c.Notifier.EmailJS.TemplateID = os.Getenv("EMAILJS_TEMPLATE_ID")
	c.Notifier.EmailJS.PublicKey = os.Getenv("EMAILJS_PUBLIC_KEY")
	c.Notifier.EmailJS.PrivateKey = os.Getenv("EMAILJS_PRIVATE_KEY")

	c.Notifier.Twilio.AccountSID = os.Getenv("TWILIO_SID")
	c.Notifier.Twilio.AuthToken = os.Getenv("TWILIO_TOKEN")
	c.Notifier.Twilio.From = os.Getenv("TWILIO_FROM")

	if v := os.Getenv("RESTAURANT_EMAIL"); v != "" {
		c.Notifier.RestaurantEmail = v
	}
	if v := os.Getenv("RESTAURANT_PHONE"); v != "" {
		c.Notifier.RestaurantPhone = v
	}
}

func (c *Config) validate() error {
	switch c.Storage.Backend {
	case "postgres", "supabase", "mongo":
	default:
		return fmt.Errorf("config: unknown storage backend %q", c.Storage.Backend)
	}

	switch c.Notifier.Channel {
	case "email", "sms":
	default:
		return fmt.Errorf("config: unknown notifier channel %q", c.Notifier.Channel)
	}

	if c.Notifier.RestaurantEmail == "" {
		return fmt.Errorf("config: notifier.restaurant_email is required")
	}

	return nil
}
