package wallet

import (
	"net/http"
	"roulette_backend/internal/api"
	dto "roulette_backend/internal/api/dto/wallet"
	"roulette_backend/internal/service"
	"roulette_backend/pkg/req"
	"roulette_backend/pkg/resp"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slog"
)

type HandlerDeps struct {
	Log  *slog.Logger
	Serv service.PaymentService
}

type Handler struct {
	log  *slog.Logger
	serv service.PaymentService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		log:  deps.Log.With(slog.String("component", "api/wallet")),
		serv: deps.Serv,
	}
}

func (h *Handler) Balance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.serv.GetBalance(r.Context())
	if err != nil {
		api.WriteServiceError(w, r, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, r, http.StatusOK, dto.BalanceResponse{Balance: balance.InexactFloat64()})
}

// RequestMoney заявка администратору на пополнение баланса
func (h *Handler) RequestMoney(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.RequestMoneyRequest](r.Body)
	if err != nil {
		resp.WriteDecodeError(w, r, err)
		return
	}

	id, err := h.serv.RequestMoney(r.Context(), decimal.NewFromFloat(payload.Amount))
	if err != nil {
		api.WriteServiceError(w, r, h.log, err)
		return
	}

	resp.WriteJSONResponse(w, r, http.StatusCreated, dto.RequestMoneyResponse{
		RequestID: id,
		Message:   "Request sent to admin",
	})
}
