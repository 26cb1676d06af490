package wheel

import (
	"errors"
	"fmt"
	"math/rand"

	"roulette_backend/internal/model"
)

// ErrInvalidSimulation Неверные параметры симуляции
var ErrInvalidSimulation = errors.New("invalid simulation parameters")

// Ставка по умолчанию для симуляции: 10 на красное
var defaultSimulationBet = model.Bet{Type: model.BetColor, Value: string(model.ColorRed), Amount: 10}

// Simulate Прогоняет Runs спинов с одной и той же ставкой и собирает статистику.
// С заданным Seed результат воспроизводится бит в бит.
func (e *Engine) Simulate(p model.SimulationParams) (*model.SimulationResult, error) {
	if p.Runs < 0 {
		return nil, fmt.Errorf("%w: runs must not be negative", ErrInvalidSimulation)
	}
	bet := withDefaults(p.Bet)

	// Веса фиксируются на весь прогон
	c, err := e.cumulativeFor(p.UseTweaked, p.Weights)
	if err != nil {
		return nil, err
	}

	var seed int64
	if p.Seed != nil {
		seed = *p.Seed
	} else {
		seed = e.nextSeed()
	}
	rnd := rand.New(rand.NewSource(seed))

	res := &model.SimulationResult{
		Runs:                p.Runs,
		Bet:                 bet,
		CumulativeProfits:   make([]float64, 0, p.Runs),
		OutcomeDistribution: make(map[model.Outcome]int, model.OutcomeCount),
	}
	for _, o := range Outcomes() {
		res.OutcomeDistribution[o] = 0
	}

	var runningProfit float64
	for i := 0; i < p.Runs; i++ {
		outcome := c.pick(rnd.Intn(c.total()))
		payout := Payout(bet, outcome)

		res.TotalBet += bet.Amount
		res.TotalPayout += payout

		runningProfit += payout - bet.Amount
		res.CumulativeProfits = append(res.CumulativeProfits, runningProfit)

		res.OutcomeDistribution[outcome]++

		if payout > 0 {
			res.Wins++
		}
	}

	res.Losses = p.Runs - res.Wins
	res.HouseProfit = res.TotalBet - res.TotalPayout
	res.HouseEdgePercent = percent(res.HouseProfit, res.TotalBet)
	res.WinRate = percent(float64(res.Wins), float64(p.Runs))
	res.LossRate = percent(float64(res.Losses), float64(p.Runs))
	res.NetProfit = res.TotalPayout - res.TotalBet
	res.ROI = percent(res.NetProfit, res.TotalBet)
	res.ProfitPerBet = ratio(res.NetProfit, float64(p.Runs))
	res.ExpectedValuePerBet = res.ProfitPerBet

	return res, nil
}

func withDefaults(b model.Bet) model.Bet {
	if b.Type == "" {
		b.Type = defaultSimulationBet.Type
		b.Value = defaultSimulationBet.Value
	}
	if b.Amount == 0 {
		b.Amount = defaultSimulationBet.Amount
	}
	return b
}

// ratio Деление, при нулевом знаменателе - 0
func ratio(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

func percent(a, b float64) float64 {
	return ratio(a, b) * 100
}
