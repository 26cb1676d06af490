package roulette

import "time"

type SpinRequest struct {
	BetType   string  `json:"bet_type" validate:"required"` // number, color или parity
	BetValue  any     `json:"bet_value"`                    // 0..12, red/black, odd/even
	BetAmount float64 `json:"bet_amount" validate:"gt=0"`   // Размер ставки
}

type SpinResponse struct {
	OutcomeNumber int     `json:"outcome_number"`
	OutcomeColor  string  `json:"outcome_color"`
	OutcomeParity string  `json:"outcome_parity"`
	Payout        float64 `json:"payout"`      // 0 при проигрыше
	NewBalance    float64 `json:"new_balance"` // Баланс после спина
	IsTweaked     bool    `json:"is_tweaked"`
}

type GameResult struct {
	ID            int       `json:"id"`
	BetType       string    `json:"bet_type"`
	BetValue      string    `json:"bet_value"`
	BetAmount     float64   `json:"bet_amount"`
	OutcomeNumber int       `json:"outcome_number"`
	OutcomeColor  string    `json:"outcome_color"`
	Payout        float64   `json:"payout"`
	IsTweaked     bool      `json:"is_tweaked"`
	CreatedAt     time.Time `json:"created_at"`
}

type HistoryResponse struct {
	Results []GameResult `json:"results"`
}
