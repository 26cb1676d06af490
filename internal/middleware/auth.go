package middleware

import (
	"context"
	"net/http"
	"roulette_backend/pkg/resp"
	"roulette_backend/pkg/token"
	"strings"
)

type ctxKey int

const (
	userIDKey ctxKey = iota
	adminKey
)

// WithUser Кладет пользователя в контекст
func WithUser(ctx context.Context, userID int, admin bool) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, adminKey, admin)
}

// UserIDFromContext Достает ID пользователя из контекста
func UserIDFromContext(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(userIDKey).(int)
	return id, ok
}

// IsAdminFromContext Является ли пользователь администратором
func IsAdminFromContext(ctx context.Context) bool {
	admin, _ := ctx.Value(adminKey).(bool)
	return admin
}

// Auth Проверяет access токен из заголовка Authorization: Bearer <token>
func Auth(secretKey []byte) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			tokenStr, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || len(tokenStr) == 0 {
				resp.WriteError(w, r, http.StatusUnauthorized, "missing access token")
				return
			}

			claims, err := token.VerifyToken(tokenStr, secretKey)
			if err != nil {
				resp.WriteError(w, r, http.StatusUnauthorized, "invalid access token")
				return
			}

			userID, err := token.UserID(claims)
			if err != nil {
				resp.WriteError(w, r, http.StatusUnauthorized, "invalid access token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), userID, claims.Admin)))
		}

		return http.HandlerFunc(fn)
	}
}

// RequireAdmin Пропускает только администраторов. Ставится после Auth
func RequireAdmin(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		if !IsAdminFromContext(r.Context()) {
			resp.WriteError(w, r, http.StatusForbidden, "unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	}

	return http.HandlerFunc(fn)
}
