package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"roulette_backend/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveSpin(t *testing.T) {
	m := New()

	m.ObserveSpin(false, 10, 20)
	m.ObserveSpin(true, 10, 0)
	m.ObserveSpin(true, 5, 0)

	if got := testutil.ToFloat64(m.spins.WithLabelValues("fair", "win")); got != 1 {
		t.Errorf("fair wins %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.spins.WithLabelValues("tweaked", "loss")); got != 2 {
		t.Errorf("tweaked losses %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.stakedTotal); got != 25 {
		t.Errorf("staked %v, want 25", got)
	}
	if got := testutil.ToFloat64(m.payoutTotal); got != 20 {
		t.Errorf("paid %v, want 20", got)
	}
}

func TestMiddlewareAndHandler(t *testing.T) {
	m := New()
	m.WatchHouse(func() model.HouseState { return model.HouseState{CurrentRTP: 97.5} })

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/users/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	r.Handle("/metrics", m.Handler())

	for _, id := range []string{"1", "2"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/users/"+id, nil))
	}

	if got := testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/users/{id}", "418")); got != 2 {
		t.Errorf("requests by route %v, want 2", got)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := w.Body.String()
	if !strings.Contains(body, "roulette_house_rtp_percent 97.5") {
		t.Errorf("house gauge missing in:\n%s", body)
	}
}
