package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics - счетчики переходов владения и работы обходчика
type Metrics struct {
	reg *prometheus.Registry

	ClaimsTotal        prometheus.Counter
	StaleClaimsTotal   prometheus.Counter
	DefaultsTotal      prometheus.Counter
	SweepRunsTotal     prometheus.Counter
	SweepItemFailures  prometheus.Counter
	NotificationsTotal *prometheus.CounterVec
}

// New регистрирует счетчики в собственном registry
func New() *Metrics {
	reg := prometheus.NewRegistry()

	return &Metrics{
		reg: reg,
		ClaimsTotal: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "emergency_claims_total",
			Help: "Total number of successful ownership claims.",
		}),
		StaleClaimsTotal: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "emergency_stale_claims_total",
			Help: "Total number of claims rejected as stale.",
		}),
		DefaultsTotal: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "emergency_defaults_total",
			Help: "Total number of ownership defaults applied by the safety net.",
		}),
		SweepRunsTotal: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "emergency_sweep_runs_total",
			Help: "Total number of safety-net sweep runs.",
		}),
		SweepItemFailures: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "emergency_sweep_item_failures_total",
			Help: "Total number of sweep items that failed to default.",
		}),
		NotificationsTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "emergency_contact_notifications_total",
			Help: "Total number of contact notification attempts by outcome.",
		}, []string{"outcome"}),
	}
}

// Handler возвращает HTTP-обработчик для /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}
