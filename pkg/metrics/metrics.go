// Package metrics содержит prometheus-коллекторы сервиса
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор коллекторов, регистрируемых в default registry
type Metrics struct {
	serviceName string

	// HTTPRequestsTotal счетчик HTTP запросов по методу, пути и коду ответа
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration гистограмма длительности HTTP запросов
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInFlight количество запросов в обработке
	HTTPRequestsInFlight prometheus.Gauge

	// NotificationsTotal счетчик попыток отправки уведомлений
	// по переходу (confirmada/denegada), каналу и результату
	NotificationsTotal *prometheus.CounterVec
}

// New создает и регистрирует коллекторы метрик
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		serviceName: serviceName,

		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		HTTPRequestsInFlight: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "http_requests_in_flight",
			Help:        "Number of HTTP requests currently being served",
			ConstLabels: constLabels,
		}),

		NotificationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "notifications_total",
			Help:        "Notification send attempts by transition, channel and outcome",
			ConstLabels: constLabels,
		}, []string{"transition", "channel", "outcome"}),
	}
}

// ObserveNotification инкрементирует счетчик уведомлений
func (m *Metrics) ObserveNotification(transition, channel string, sent bool) {
	outcome := "sent"
	if !sent {
		outcome = "failed"
	}
	m.NotificationsTotal.WithLabelValues(transition, channel, outcome).Inc()
}
