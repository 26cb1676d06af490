// Package api - общие для хендлеров функции.
package api

import (
	"errors"
	"net/http"

	"roulette_backend/internal/lib/logger/sl"
	"roulette_backend/internal/model"
	"roulette_backend/internal/wheel"
	"roulette_backend/pkg/resp"

	"golang.org/x/exp/slog"
)

type errStatus struct {
	err    error
	status int
}

var errStatuses = []errStatus{
	{model.ErrInvalidBet, http.StatusBadRequest},
	{model.ErrInsufficientBalance, http.StatusBadRequest},
	{model.ErrInvalidAmount, http.StatusBadRequest},
	{model.ErrInvalidBalance, http.StatusBadRequest},
	{model.ErrInvalidAction, http.StatusBadRequest},
	{model.ErrCannotDeleteUser, http.StatusBadRequest},
	{model.ErrTooManyRuns, http.StatusBadRequest},
	{wheel.ErrInvalidConfiguration, http.StatusBadRequest},
	{wheel.ErrInvalidSimulation, http.StatusBadRequest},

	{model.ErrUserExists, http.StatusConflict},
	{model.ErrRequestHandled, http.StatusConflict},

	{model.ErrUserNotFound, http.StatusNotFound},
	{model.ErrMoneyRequestNotFound, http.StatusNotFound},

	{model.ErrInvalidCredentials, http.StatusUnauthorized},
	{model.ErrInvalidRefreshToken, http.StatusUnauthorized},
	{model.ErrSessionNotFound, http.StatusUnauthorized},
	{model.ErrUnauthorized, http.StatusUnauthorized},

	{model.ErrForbidden, http.StatusForbidden},
}

// StatusOf HTTP статус и текст для ошибки сервиса.
// Незнакомые ошибки наружу не отдаются.
func StatusOf(err error) (int, string) {
	for _, es := range errStatuses {
		if errors.Is(err, es.err) {
			return es.status, es.err.Error()
		}
	}
	return http.StatusInternalServerError, "internal error"
}

// WriteServiceError Пишет ошибку сервиса клиенту, внутренние ошибки логирует
func WriteServiceError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	status, msg := StatusOf(err)
	if status == http.StatusInternalServerError {
		log.Error("request failed", sl.Err(err))
	} else {
		log.Debug("request rejected", sl.Err(err), slog.Int("status", status))
	}
	resp.WriteError(w, r, status, msg)
}
