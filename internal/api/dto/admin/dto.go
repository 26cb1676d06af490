package admin

import "time"

type UpdateSettingsRequest struct {
	Weights    []int `json:"weights"` // 13 неотрицательных весов, пусто - веса не меняются
	UseTweaked bool  `json:"use_tweaked"`
}

type SimulateRequest struct {
	Runs      int     `json:"n_runs" validate:"gte=0"`
	BetType   string  `json:"bet_type" validate:"omitempty,oneof=number color parity"`
	BetValue  any     `json:"bet_value"`
	BetAmount float64 `json:"bet_amount" validate:"gte=0"`
	Weights   []int   `json:"weights"` // Веса только для этого прогона
	Seed      *int64  `json:"seed"`
}

type UpdateBalanceRequest struct {
	UserID  int     `json:"user_id" validate:"required,gt=0"`
	Balance float64 `json:"balance"`
}

type SimulationResult struct {
	Runs                int            `json:"runs"`
	BetType             string         `json:"bet_type"`
	BetValue            string         `json:"bet_value"`
	BetAmount           float64        `json:"bet_amount"`
	TotalBet            float64        `json:"total_bet"`
	TotalPayout         float64        `json:"total_payout"`
	HouseProfit         float64        `json:"house_profit"`
	HouseEdgePercent    float64        `json:"house_edge_percent"`
	Wins                int            `json:"wins"`
	Losses              int            `json:"losses"`
	WinRate             float64        `json:"win_rate"`
	LossRate            float64        `json:"loss_rate"`
	NetProfit           float64        `json:"net_profit"`
	ROI                 float64        `json:"roi"`
	ProfitPerBet        float64        `json:"profit_per_bet"`
	ExpectedValuePerBet float64        `json:"expected_value_per_bet"`
	CumulativeProfits   []float64      `json:"cumulative_profits"`
	OutcomeDistribution map[string]int `json:"outcome_distribution"` // Ключ - номер ячейки
}

type SimulateResponse struct {
	Fair    SimulationResult `json:"fair"`
	Tweaked SimulationResult `json:"tweaked"`
}

type HouseState struct {
	TotalSpins       int     `json:"total_spins"`
	TotalBet         float64 `json:"total_bet"`
	TotalPayout      float64 `json:"total_payout"`
	CurrentRTP       float64 `json:"current_rtp"`
	HouseProfit      float64 `json:"house_profit"`
	HouseEdgePercent float64 `json:"house_edge_percent"`
	WindowRTP        float64 `json:"window_rtp"`
	WindowSize       int     `json:"window_size"`
}

type User struct {
	ID        int       `json:"id"`
	Login     string    `json:"login"`
	Balance   float64   `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
}

type MoneyRequest struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Login     string    `json:"login"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type DashboardResponse struct {
	Weights         []int          `json:"weights"`
	UseTweaked      bool           `json:"use_tweaked"`
	House           HouseState     `json:"house"`
	Users           []User         `json:"users"`
	PendingRequests []MoneyRequest `json:"pending_requests"`
}

type RequestsResponse struct {
	Requests []MoneyRequest `json:"requests"`
}
