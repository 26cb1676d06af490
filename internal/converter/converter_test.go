package converter

import (
	"testing"

	adminDTO "roulette_backend/internal/api/dto/admin"
	rouletteDTO "roulette_backend/internal/api/dto/roulette"
	"roulette_backend/internal/model"
)

func TestBetValue(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"red", "red"},
		{float64(7), "7"},
		{float64(0), "0"},
		{7.5, "7.5"},
		{true, "true"},
	}
	for _, tt := range tests {
		if got := betValue(tt.in); got != tt.want {
			t.Errorf("betValue(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestToSpinRequest(t *testing.T) {
	got := ToSpinRequest(rouletteDTO.SpinRequest{BetType: "number", BetValue: float64(12), BetAmount: 5})
	want := model.Bet{Type: model.BetNumber, Value: "12", Amount: 5}
	if got.Bet != want {
		t.Errorf("got %+v, want %+v", got.Bet, want)
	}
}

func TestToSimulationParams(t *testing.T) {
	p := ToSimulationParams(adminDTO.SimulateRequest{Runs: 10})
	if p.Weights != nil {
		t.Error("empty weights must become nil")
	}
	if p.Bet.Type != "" || p.Bet.Value != "" {
		t.Errorf("empty bet expected, got %+v", p.Bet)
	}

	w := []int{1, 2}
	p = ToSimulationParams(adminDTO.SimulateRequest{Weights: w})
	w[0] = 100
	if p.Weights[0] != 1 {
		t.Error("weights must be copied")
	}
}

func TestToSimulateResponse(t *testing.T) {
	res := &model.SimulationResult{
		Runs:                2,
		OutcomeDistribution: map[model.Outcome]int{0: 1, 12: 1},
	}
	out := ToSimulateResponse(model.SimulationComparison{Fair: res})
	if out.Fair.OutcomeDistribution["0"] != 1 || out.Fair.OutcomeDistribution["12"] != 1 {
		t.Errorf("unexpected distribution %v", out.Fair.OutcomeDistribution)
	}
	if out.Tweaked.Runs != 0 {
		t.Error("missing result must convert to zero value")
	}
}
