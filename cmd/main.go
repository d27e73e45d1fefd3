package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	cancelReservationHandler "github.com/m04kA/LaMesa-ReservationService/internal/api/handlers/cancel_reservation"
	confirmReservationHandler "github.com/m04kA/LaMesa-ReservationService/internal/api/handlers/confirm_reservation"
	createReservationHandler "github.com/m04kA/LaMesa-ReservationService/internal/api/handlers/create_reservation"
	denyReservationHandler "github.com/m04kA/LaMesa-ReservationService/internal/api/handlers/deny_reservation"
	getAvailabilityHandler "github.com/m04kA/LaMesa-ReservationService/internal/api/handlers/get_availability"
	listReservationsHandler "github.com/m04kA/LaMesa-ReservationService/internal/api/handlers/list_reservations"
	"github.com/m04kA/LaMesa-ReservationService/internal/api/middleware"
	"github.com/m04kA/LaMesa-ReservationService/internal/config"
	"github.com/m04kA/LaMesa-ReservationService/internal/domain"
	"github.com/m04kA/LaMesa-ReservationService/internal/infra/storage/mongodb"
	"github.com/m04kA/LaMesa-ReservationService/internal/infra/storage/postgres"
	"github.com/m04kA/LaMesa-ReservationService/internal/infra/storage/supabase"
	"github.com/m04kA/LaMesa-ReservationService/internal/integrations/emailjs"
	"github.com/m04kA/LaMesa-ReservationService/internal/integrations/twilio"
	notificationsService "github.com/m04kA/LaMesa-ReservationService/internal/service/notifications"
	reservationsService "github.com/m04kA/LaMesa-ReservationService/internal/service/reservations"
	createReservationUC "github.com/m04kA/LaMesa-ReservationService/internal/usecase/create_reservation"
	getAvailabilityUC "github.com/m04kA/LaMesa-ReservationService/internal/usecase/get_availability"
	"github.com/m04kA/LaMesa-ReservationService/pkg/logger"
	"github.com/m04kA/LaMesa-ReservationService/pkg/metrics"
)

// reservationStore объединяет методы хранилища, которые используют
// сервисы и use cases. Все три бэкенда реализуют его целиком.
type reservationStore interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	ListAll(ctx context.Context) ([]*domain.Reservation, error)
	ListConfirmedForDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
	Delete(ctx context.Context, id int64) (*domain.Reservation, error)
}

func main() {
	// Подхватываем .env, если он есть (локальная разработка)
	_ = godotenv.Load()

	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting LaMesa-ReservationService...")
	log.Info("Configuration loaded from config.toml")

	// Конфигурация ресторана
	restaurant, err := cfg.Restaurant.ToDomain()
	if err != nil {
		log.Fatal("Invalid restaurant configuration: %v", err)
	}
	log.Info("Restaurant configured: capacity=%d, slots=%d, autoConfirm=%t",
		restaurant.MaxCapacity, len(restaurant.TimeSlots), restaurant.AutoConfirm)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаем выбранный бэкенд хранилища
	var store reservationStore

	switch cfg.Storage.Backend {
	case "postgres":
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		// Проверяем соединение
		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Connected to PostgreSQL (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		store = postgres.NewRepository(db)

	case "supabase":
		store = supabase.NewClient(
			cfg.Supabase.URL,
			cfg.Supabase.APIKey,
			cfg.Supabase.Table,
			time.Duration(cfg.Supabase.Timeout)*time.Second,
		)
		log.Info("Using Supabase backend (url=%s, table=%s)", cfg.Supabase.URL, cfg.Supabase.Table)

	case "mongo":
		connectCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.Mongo.Timeout)*time.Second,
		)
		defer cancel()

		client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.Mongo.URI))
		if err != nil {
			log.Fatal("Failed to connect to MongoDB: %v", err)
		}
		defer func() {
			_ = client.Disconnect(context.Background())
		}()

		if err := client.Ping(connectCtx, nil); err != nil {
			log.Fatal("Failed to ping MongoDB: %v", err)
		}
		log.Info("Connected to MongoDB (db=%s, collection=%s)", cfg.Mongo.Database, cfg.Mongo.Collection)

		store = mongodb.NewRepository(client.Database(cfg.Mongo.Database), cfg.Mongo.Collection)
	}

	// Инициализируем клиентов уведомлений
	emailClient := emailjs.NewClient(
		cfg.Notifier.EmailJS.ServiceID,
		cfg.Notifier.EmailJS.TemplateID,
		cfg.Notifier.EmailJS.PublicKey,
		cfg.Notifier.EmailJS.PrivateKey,
		time.Duration(cfg.Notifier.EmailJS.Timeout)*time.Second,
		log,
	)
	smsClient := twilio.NewClient(
		cfg.Notifier.Twilio.AccountSID,
		cfg.Notifier.Twilio.AuthToken,
		cfg.Notifier.Twilio.From,
		time.Duration(cfg.Notifier.Twilio.Timeout)*time.Second,
		log,
	)

	var notifyMetrics notificationsService.MetricsObserver
	if metricsCollector != nil {
		notifyMetrics = metricsCollector
	}

	notifier := notificationsService.NewService(
		emailClient,
		smsClient,
		notificationsService.Channel(cfg.Notifier.Channel),
		cfg.Notifier.RestaurantEmail,
		cfg.Notifier.RestaurantPhone,
		notifyMetrics,
		log,
	)
	log.Info("Notifier initialized (channel=%s)", cfg.Notifier.Channel)

	// Инициализируем сервисы
	reservationsSvc := reservationsService.NewService(store, notifier, log)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(store, &restaurant, log)
	createReservationUseCase := createReservationUC.NewUseCase(store, &restaurant, log)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	listReservations := listReservationsHandler.NewHandler(reservationsSvc, log)
	confirmReservation := confirmReservationHandler.NewHandler(reservationsSvc, log)
	denyReservation := denyReservationHandler.NewHandler(reservationsSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		http.Error(w, "Método no permitido", http.StatusMethodNotAllowed)
	})

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Доступность
	r.HandleFunc("/disponibilidad", getAvailability.Handle).Methods(http.MethodGet)

	// Брони
	r.HandleFunc("/reservar", createReservation.Handle).Methods(http.MethodPost)
	r.HandleFunc("/reservas", listReservations.Handle).Methods(http.MethodGet)
	r.HandleFunc("/reservas/{id}/confirmar", confirmReservation.Handle).Methods(http.MethodPost)
	r.HandleFunc("/reservas/{id}/denegar", denyReservation.Handle).Methods(http.MethodDelete)
	r.HandleFunc("/reservas/{id}/cancelar", cancelReservation.Handle).Methods(http.MethodDelete)

	// CORS: фронтенд ресторана живет на другом origin
	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
