package admin

import (
	"net/http"
	"roulette_backend/internal/api"
	dto "roulette_backend/internal/api/dto/admin"
	"roulette_backend/internal/converter"
	"roulette_backend/internal/model"
	"roulette_backend/internal/service"
	"roulette_backend/pkg/req"
	"roulette_backend/pkg/resp"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slog"
)

type HandlerDeps struct {
	Log  *slog.Logger
	Serv service.AdminService
}

type Handler struct {
	log  *slog.Logger
	serv service.AdminService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		log:  deps.Log.With(slog.String("component", "api/admin")),
		serv: deps.Serv,
	}
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.serv.Dashboard(r.Context())
	if err != nil {
		api.WriteServiceError(w, r, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, r, http.StatusOK, converter.ToDashboardResponse(*d))
}

func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.UpdateSettingsRequest](r.Body)
	if err != nil {
		resp.WriteDecodeError(w, r, err)
		return
	}

	if err := h.serv.UpdateSettings(r.Context(), converter.ToWeights(payload.Weights), payload.UseTweaked); err != nil {
		api.WriteServiceError(w, r, h.log, err)
		return
	}

	resp.WriteOK(w, r, "settings updated")
}

func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.serv.ResetGame(r.Context()); err != nil {
		api.WriteServiceError(w, r, h.log, err)
		return
	}

	resp.WriteOK(w, r, "game reset")
}

// Simulate честный и подкрученный прогон одной и той же ставки
func (h *Handler) Simulate(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SimulateRequest](r.Body)
	if err != nil {
		resp.WriteDecodeError(w, r, err)
		return
	}

	cmp, err := h.serv.Simulate(r.Context(), converter.ToSimulationParams(payload))
	if err != nil {
		api.WriteServiceError(w, r, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, r, http.StatusOK, converter.ToSimulateResponse(*cmp))
}

func (h *Handler) UpdateBalance(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.UpdateBalanceRequest](r.Body)
	if err != nil {
		resp.WriteDecodeError(w, r, err)
		return
	}

	if err := h.serv.UpdateBalance(r.Context(), payload.UserID, decimal.NewFromFloat(payload.Balance)); err != nil {
		api.WriteServiceError(w, r, h.log, err)
		return
	}

	resp.WriteOK(w, r, "balance updated")
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := h.serv.DeleteUser(r.Context(), id); err != nil {
		api.WriteServiceError(w, r, h.log, err)
		return
	}

	resp.WriteOK(w, r, "user deleted")
}

func (h *Handler) Requests(w http.ResponseWriter, r *http.Request) {
	reqs, err := h.serv.PendingRequests(r.Context())
	if err != nil {
		api.WriteServiceError(w, r, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, r, http.StatusOK, dto.RequestsResponse{Requests: converter.ToMoneyRequests(reqs)})
}

// HandleRequest /admin/requests/{id}/{action}, action: approve или reject
func (h *Handler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	action := model.RequestAction(chi.URLParam(r, "action"))

	if err := h.serv.HandleRequest(r.Context(), id, action); err != nil {
		api.WriteServiceError(w, r, h.log, err)
		return
	}

	msg := "request approved"
	if action == model.ActionReject {
		msg = "request rejected"
	}
	resp.WriteOK(w, r, msg)
}

func idParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		resp.WriteError(w, r, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}
