package roulette

import (
	"net/http"
	"roulette_backend/internal/api"
	dto "roulette_backend/internal/api/dto/roulette"
	"roulette_backend/internal/converter"
	"roulette_backend/internal/service"
	"roulette_backend/pkg/req"
	"roulette_backend/pkg/resp"
	"strconv"

	"golang.org/x/exp/slog"
)

type HandlerDeps struct {
	Log  *slog.Logger
	Serv service.RouletteService
}

type Handler struct {
	log  *slog.Logger
	serv service.RouletteService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		log:  deps.Log.With(slog.String("component", "api/roulette")),
		serv: deps.Serv,
	}
}

func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SpinRequest](r.Body)
	if err != nil {
		resp.WriteDecodeError(w, r, err)
		return
	}

	result, err := h.serv.Spin(r.Context(), converter.ToSpinRequest(payload))
	if err != nil {
		api.WriteServiceError(w, r, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, r, http.StatusOK, converter.ToSpinResponse(*result))
}

// History последние спины игрока, ?limit=N
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	var limit int
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			resp.WriteError(w, r, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	results, err := h.serv.History(r.Context(), limit)
	if err != nil {
		api.WriteServiceError(w, r, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, r, http.StatusOK, converter.ToHistoryResponse(results))
}
