package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns its own registry so that several instances (one per test)
// never collide on registration.
type Metrics struct {
	registry *prometheus.Registry

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	transitions     *prometheus.CounterVec
	payments        *prometheus.CounterVec
	paymentsAmount  prometheus.Counter
	invoices        prometheus.Counter
}

func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "Duration of HTTP requests in seconds",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "hotel_reservation_transitions_total",
			Help:        "Reservation status transitions",
			ConstLabels: constLabels,
		}, []string{"from", "to"}),
		payments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "hotel_payments_total",
			Help:        "Completed payments by method",
			ConstLabels: constLabels,
		}, []string{"metodo"}),
		paymentsAmount: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "hotel_payments_amount_total",
			Help:        "Sum of completed payment amounts",
			ConstLabels: constLabels,
		}),
		invoices: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "hotel_invoices_issued_total",
			Help:        "Invoices issued",
			ConstLabels: constLabels,
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.requestDuration,
		m.transitions,
		m.payments,
		m.paymentsAmount,
		m.invoices,
	)
	return m
}

func (m *Metrics) ObserveRequest(method, path string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	code := strconv.Itoa(status)
	m.requests.WithLabelValues(method, path, code).Inc()
	m.requestDuration.WithLabelValues(method, path, code).Observe(elapsed.Seconds())
}

func (m *Metrics) ReservationTransition(from, to string) {
	if m == nil {
		return
	}
	m.transitions.WithLabelValues(from, to).Inc()
}

func (m *Metrics) PaymentCompleted(method string, amount float64) {
	if m == nil {
		return
	}
	m.payments.WithLabelValues(method).Inc()
	m.paymentsAmount.Add(amount)
}

func (m *Metrics) InvoiceIssued() {
	if m == nil {
		return
	}
	m.invoices.Inc()
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
