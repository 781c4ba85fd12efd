package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-коллекторов сервиса
type Metrics struct {
	// HTTP
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Доменные счетчики бронирований
	AppointmentsCreated prometheus.Counter
	SlotConflicts       prometheus.Counter
}

// BookingCreated увеличивает счетчик успешных записей
func (m *Metrics) BookingCreated() {
	m.AppointmentsCreated.Inc()
}

// BookingConflict увеличивает счетчик отказов из-за занятого слота
func (m *Metrics) BookingConflict() {
	m.SlotConflicts.Inc()
}

// Nop коллектор-заглушка для окружений с выключенными метриками
type Nop struct{}

func (Nop) BookingCreated()  {}
func (Nop) BookingConflict() {}

// New регистрирует коллекторы в default registry
func New(serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "path", "status"}),

		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		AppointmentsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "appointments_created_total",
			Help:        "Total number of successfully booked appointments",
			ConstLabels: labels,
		}),

		SlotConflicts: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "appointment_slot_conflicts_total",
			Help:        "Total number of bookings rejected because the slot was no longer available",
			ConstLabels: labels,
		}),
	}
}
