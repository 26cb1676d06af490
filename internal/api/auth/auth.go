package auth

import (
	"net/http"
	"roulette_backend/internal/api"
	dto "roulette_backend/internal/api/dto/auth"
	"roulette_backend/internal/converter"
	"roulette_backend/internal/model"
	"roulette_backend/internal/service"
	"roulette_backend/pkg/req"
	"roulette_backend/pkg/resp"
	"time"

	"golang.org/x/exp/slog"
)

const (
	sessionIDCookie    = "session_id"
	refreshTokenCookie = "refresh_token"
	cookiePath         = "/auth"
)

type HandlerDeps struct {
	Log             *slog.Logger
	Serv            service.AuthService
	RefreshDuration time.Duration
}

type Handler struct {
	log             *slog.Logger
	serv            service.AuthService
	refreshDuration time.Duration
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		log:             deps.Log.With(slog.String("component", "api/auth")),
		serv:            deps.Serv,
		refreshDuration: deps.RefreshDuration,
	}
}

// Register создаёт игрока, открывает сессию и возвращает access_token.
// session_id и refresh_token уходят в cookies
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.RegisterRequest](r.Body)
	if err != nil {
		resp.WriteDecodeError(w, r, err)
		return
	}

	data, err := h.serv.Register(r.Context(), converter.RegisterRequestToUserModel(&requestBody))
	if err != nil {
		api.WriteServiceError(w, r, h.log, err)
		return
	}

	h.writeAuthData(w, r, http.StatusCreated, data)
}

// Login открывает сессию игрока
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.LoginRequest](r.Body)
	if err != nil {
		resp.WriteDecodeError(w, r, err)
		return
	}

	data, err := h.serv.Login(r.Context(), requestBody.Login, requestBody.Password)
	if err != nil {
		api.WriteServiceError(w, r, h.log, err)
		return
	}

	h.writeAuthData(w, r, http.StatusOK, data)
}

// AdminLogin открывает сессию администратора
func (h *Handler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.LoginRequest](r.Body)
	if err != nil {
		resp.WriteDecodeError(w, r, err)
		return
	}

	data, err := h.serv.AdminLogin(r.Context(), requestBody.Login, requestBody.Password)
	if err != nil {
		api.WriteServiceError(w, r, h.log, err)
		return
	}

	h.writeAuthData(w, r, http.StatusOK, data)
}

// Refresh выдаёт новый access_token по session_id и refresh_token из cookies
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	sessionID, err := r.Cookie(sessionIDCookie)
	if err != nil {
		resp.WriteError(w, r, http.StatusUnauthorized, "no session_id cookie")
		return
	}
	refreshToken, err := r.Cookie(refreshTokenCookie)
	if err != nil {
		resp.WriteError(w, r, http.StatusUnauthorized, "no refresh_token cookie")
		return
	}

	accessToken, err := h.serv.Refresh(r.Context(), &model.AuthData{
		SessionID:    sessionID.Value,
		RefreshToken: refreshToken.Value,
	})
	if err != nil {
		api.WriteServiceError(w, r, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, r, http.StatusOK, dto.TokenResponse{AccessToken: accessToken})
}

// Logout закрывает сессию по session_id
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie(sessionIDCookie)
	if err != nil {
		resp.WriteError(w, r, http.StatusUnauthorized, "no session_id cookie")
		return
	}

	if err := h.serv.Logout(r.Context(), c.Value); err != nil {
		api.WriteServiceError(w, r, h.log, err)
		return
	}

	deleteCookie(w, sessionIDCookie)
	deleteCookie(w, refreshTokenCookie)

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeAuthData(w http.ResponseWriter, r *http.Request, status int, data *model.AuthData) {
	setCookie(w, sessionIDCookie, data.SessionID, h.refreshDuration)
	setCookie(w, refreshTokenCookie, data.RefreshToken, h.refreshDuration)

	resp.WriteJSONResponse(w, r, status, dto.TokenResponse{AccessToken: data.AccessToken})
}

func setCookie(w http.ResponseWriter, name, value string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     cookiePath,
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(ttl.Seconds()),
	})
}

func deleteCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     cookiePath,
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}
