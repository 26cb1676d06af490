package converter

import (
	"fmt"
	dto "roulette_backend/internal/api/dto/roulette"
	"roulette_backend/internal/model"
)

// betValue Значение ставки приходит строкой или числом
func betValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}

func ToSpinRequest(req dto.SpinRequest) model.SpinRequest {
	return model.SpinRequest{
		Bet: model.Bet{
			Type:   model.BetType(req.BetType),
			Value:  betValue(req.BetValue),
			Amount: req.BetAmount,
		},
	}
}

func ToSpinResponse(res model.SpinResult) dto.SpinResponse {
	return dto.SpinResponse{
		OutcomeNumber: int(res.Outcome),
		OutcomeColor:  string(res.Color),
		OutcomeParity: string(res.Parity),
		Payout:        res.Payout.InexactFloat64(),
		NewBalance:    res.Balance.InexactFloat64(),
		IsTweaked:     res.Tweaked,
	}
}

func ToHistoryResponse(results []model.GameResult) dto.HistoryResponse {
	out := make([]dto.GameResult, len(results))
	for i, g := range results {
		out[i] = dto.GameResult{
			ID:            g.ID,
			BetType:       string(g.BetType),
			BetValue:      g.BetValue,
			BetAmount:     g.BetAmount.InexactFloat64(),
			OutcomeNumber: int(g.OutcomeNumber),
			OutcomeColor:  string(g.OutcomeColor),
			Payout:        g.Payout.InexactFloat64(),
			IsTweaked:     g.IsTweaked,
			CreatedAt:     g.CreatedAt,
		}
	}
	return dto.HistoryResponse{Results: out}
}
