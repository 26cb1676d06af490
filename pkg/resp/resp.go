package resp

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Response struct {
	Status  int    `json:"status"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// WriteJSONResponse Пишет тело ответа в JSON с указанным статусом
func WriteJSONResponse(w http.ResponseWriter, r *http.Request, status int, v any) {
	render.Status(r, status)
	render.JSON(w, r, v)
}

// WriteError Пишет ошибку в виде {"status":..,"error":..}
func WriteError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	WriteJSONResponse(w, r, status, Response{Status: status, Error: msg})
}

// WriteOK Успешный ответ без данных
func WriteOK(w http.ResponseWriter, r *http.Request, msg string) {
	WriteJSONResponse(w, r, http.StatusOK, Response{Status: http.StatusOK, Message: msg})
}

// WriteDecodeError Ошибка разбора или валидации тела запроса
func WriteDecodeError(w http.ResponseWriter, r *http.Request, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		WriteError(w, r, http.StatusBadRequest, ValidationMessage(verrs))
		return
	}
	WriteError(w, r, http.StatusBadRequest, "invalid request body")
}

func ValidationMessage(errs validator.ValidationErrors) string {
	var msgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("field %s is required", err.Field()))
		case "gt", "gte", "min":
			msgs = append(msgs, fmt.Sprintf("field %s must be at least %s", err.Field(), err.Param()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("field %s must be one of [%s]", err.Field(), err.Param()))
		case "len":
			msgs = append(msgs, fmt.Sprintf("field %s must have %s items", err.Field(), err.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("field %s is invalid", err.Field()))
		}
	}

	return strings.Join(msgs, ", ")
}
