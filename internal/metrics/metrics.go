// Package metrics - счетчики Prometheus для спинов и HTTP запросов.
package metrics

import (
	"net/http"
	"roulette_backend/internal/model"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "roulette"

type Metrics struct {
	reg *prometheus.Registry

	spins        *prometheus.CounterVec
	stakedTotal  prometheus.Counter
	payoutTotal  prometheus.Counter
	httpRequests *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		spins: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "spins_total",
				Help:      "Total player spins",
			},
			[]string{"mode", "result"},
		),
		stakedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "staked_total",
				Help:      "Sum of all bets",
			},
		),
		payoutTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "payout_total",
				Help:      "Sum of all payouts",
			},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
	}

	m.reg.MustRegister(m.spins, m.stakedTotal, m.payoutTotal, m.httpRequests)

	return m
}

// ObserveSpin Учитывает спин игрока
func (m *Metrics) ObserveSpin(tweaked bool, bet, payout float64) {
	mode := "fair"
	if tweaked {
		mode = "tweaked"
	}
	result := "loss"
	if payout > 0 {
		result = "win"
	}

	m.spins.WithLabelValues(mode, result).Inc()
	m.stakedTotal.Add(bet)
	m.payoutTotal.Add(payout)
}

// WatchHouse Публикует живую статистику казино как gauge
func (m *Metrics) WatchHouse(state func() model.HouseState) {
	m.reg.MustRegister(
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "house_rtp_percent",
			Help:      "RTP over all real spins",
		}, func() float64 { return state().CurrentRTP }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "house_window_rtp_percent",
			Help:      "RTP over the sliding window of recent spins",
		}, func() float64 { return state().WindowRTP }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "house_profit",
			Help:      "Total staked minus total paid",
		}, func() float64 { return state().HouseProfit }),
	)
}

// Middleware Считает запросы по шаблону маршрута chi
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unknown"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.httpRequests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
	}

	return http.HandlerFunc(fn)
}

// Handler Эндпоинт /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}
