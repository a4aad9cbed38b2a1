package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics коллекторы Prometheus сервиса.
// Все методы безопасны для nil-получателя: метрики выключены - вызовы ничего не делают.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	apiRequestsTotal    *prometheus.CounterVec
	apiRequestDuration  *prometheus.HistogramVec
	guardDecisionsTotal *prometheus.CounterVec
	sessionEventsTotal  *prometheus.CounterVec
	paymentEventsTotal  *prometheus.CounterVec
}

// New создает набор метрик в собственном реестре
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests served by the portal.",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "Latency of HTTP requests served by the portal.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		apiRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "upstream_api_requests_total",
			Help:        "Total number of requests sent to the MediCare API.",
			ConstLabels: constLabels,
		}, []string{"method", "status_class"}),
		apiRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "upstream_api_request_duration_seconds",
			Help:        "Latency of requests sent to the MediCare API.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method"}),
		guardDecisionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "route_guard_decisions_total",
			Help:        "Route guard outcomes by state.",
			ConstLabels: constLabels,
		}, []string{"state"}),
		sessionEventsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "session_events_total",
			Help:        "Session store mutations by kind.",
			ConstLabels: constLabels,
		}, []string{"event"}),
		paymentEventsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "payment_events_total",
			Help:        "Payment flow outcomes.",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.apiRequestsTotal,
		m.apiRequestDuration,
		m.guardDecisionsTotal,
		m.sessionEventsTotal,
		m.paymentEventsTotal,
	)

	return m
}

// Handler HTTP handler для эндпоинта /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry нужен тестам для проверки значений
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveAPIRequest status 0 - запрос не дошёл до сервера
func (m *Metrics) ObserveAPIRequest(method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.apiRequestsTotal.WithLabelValues(method, statusClass(status)).Inc()
	m.apiRequestDuration.WithLabelValues(method).Observe(duration.Seconds())
}

func (m *Metrics) IncGuardDecision(state string) {
	if m == nil {
		return
	}
	m.guardDecisionsTotal.WithLabelValues(state).Inc()
}

func (m *Metrics) IncSessionEvent(event string) {
	if m == nil {
		return
	}
	m.sessionEventsTotal.WithLabelValues(event).Inc()
}

func (m *Metrics) IncPaymentEvent(outcome string) {
	if m == nil {
		return
	}
	m.paymentEventsTotal.WithLabelValues(outcome).Inc()
}

func statusClass(status int) string {
	switch {
	case status == 0:
		return "error"
	case status < 200:
		return "1xx"
	case status < 300:
		return "2xx"
	case status < 400:
		return "3xx"
	case status < 500:
		return "4xx"
	default:
		return "5xx"
	}
}
