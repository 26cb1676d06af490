package middleware

import (
	"net/http"
	"net/http/httptest"
	"roulette_backend/internal/model"
	"roulette_backend/pkg/token"
	"testing"
	"time"
)

var secret = []byte("test-secret")

func echoUser(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := UserIDFromContext(r.Context())
		if !ok {
			t.Error("user id not in context")
		}
		if id != 7 {
			t.Errorf("expected user 7, got %d", id)
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

func bearer(t *testing.T, u *model.User) string {
	t.Helper()
	tok, err := token.GenerateAccessToken(u, secret, time.Minute)
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}
	return "Bearer " + tok
}

func TestAuth(t *testing.T) {
	h := Auth(secret)(echoUser(t))

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"garbage", "Bearer abc", http.StatusUnauthorized},
		{"valid", bearer(t, &model.User{ID: 7}), http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, r)
			if w.Code != tt.want {
				t.Errorf("status %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	h := Auth(secret)(RequireAdmin(echoUser(t)))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", bearer(t, &model.User{ID: 7}))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	if w.Code != http.StatusForbidden {
		t.Errorf("player got %d, want 403", w.Code)
	}

	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", bearer(t, &model.User{ID: 7, IsAdmin: true}))
	w = httptest.NewRecorder()
	h.ServeHTTP(w, r)
	if w.Code != http.StatusNoContent {
		t.Errorf("admin got %d, want 204", w.Code)
	}
}
