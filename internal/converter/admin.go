package converter

import (
	"strconv"

	dto "roulette_backend/internal/api/dto/admin"
	"roulette_backend/internal/model"
)

func ToSimulationParams(req dto.SimulateRequest) model.SimulationParams {
	return model.SimulationParams{
		Runs: req.Runs,
		Bet: model.Bet{
			Type:   model.BetType(req.BetType),
			Value:  betValue(req.BetValue),
			Amount: req.BetAmount,
		},
		Weights: ToWeights(req.Weights),
		Seed:    req.Seed,
	}
}

// ToWeights Пустой список - nil, то есть "веса не переданы"
func ToWeights(w []int) model.Weights {
	if len(w) == 0 {
		return nil
	}
	return append(model.Weights(nil), w...)
}

func ToSimulateResponse(cmp model.SimulationComparison) dto.SimulateResponse {
	return dto.SimulateResponse{
		Fair:    toSimulationResult(cmp.Fair),
		Tweaked: toSimulationResult(cmp.Tweaked),
	}
}

func toSimulationResult(res *model.SimulationResult) dto.SimulationResult {
	if res == nil {
		return dto.SimulationResult{}
	}

	distribution := make(map[string]int, len(res.OutcomeDistribution))
	for outcome, n := range res.OutcomeDistribution {
		distribution[strconv.Itoa(int(outcome))] = n
	}

	return dto.SimulationResult{
		Runs:                res.Runs,
		BetType:             string(res.Bet.Type),
		BetValue:            res.Bet.Value,
		BetAmount:           res.Bet.Amount,
		TotalBet:            res.TotalBet,
		TotalPayout:         res.TotalPayout,
		HouseProfit:         res.HouseProfit,
		HouseEdgePercent:    res.HouseEdgePercent,
		Wins:                res.Wins,
		Losses:              res.Losses,
		WinRate:             res.WinRate,
		LossRate:            res.LossRate,
		NetProfit:           res.NetProfit,
		ROI:                 res.ROI,
		ProfitPerBet:        res.ProfitPerBet,
		ExpectedValuePerBet: res.ExpectedValuePerBet,
		CumulativeProfits:   res.CumulativeProfits,
		OutcomeDistribution: distribution,
	}
}

func ToDashboardResponse(d model.Dashboard) dto.DashboardResponse {
	users := make([]dto.User, len(d.Players))
	for i, u := range d.Players {
		users[i] = dto.User{
			ID:        u.ID,
			Login:     u.Login,
			Balance:   u.Balance.InexactFloat64(),
			CreatedAt: u.CreatedAt,
		}
	}

	return dto.DashboardResponse{
		Weights:    []int(d.Settings.TweakedWeights),
		UseTweaked: d.Settings.UseTweaked,
		House: dto.HouseState{
			TotalSpins:       d.House.TotalSpins,
			TotalBet:         d.House.TotalBet,
			TotalPayout:      d.House.TotalPayout,
			CurrentRTP:       d.House.CurrentRTP,
			HouseProfit:      d.House.HouseProfit,
			HouseEdgePercent: d.House.HouseEdgePercent,
			WindowRTP:        d.House.WindowRTP,
			WindowSize:       d.House.WindowSize,
		},
		Users:           users,
		PendingRequests: ToMoneyRequests(d.PendingRequests),
	}
}

func ToMoneyRequests(reqs []model.MoneyRequest) []dto.MoneyRequest {
	out := make([]dto.MoneyRequest, len(reqs))
	for i, r := range reqs {
		out[i] = dto.MoneyRequest{
			ID:        r.ID,
			UserID:    r.UserID,
			Login:     r.Login,
			Amount:    r.Amount.InexactFloat64(),
			Status:    string(r.Status),
			CreatedAt: r.CreatedAt,
		}
	}
	return out
}
