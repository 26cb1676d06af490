package roulette

import (
	"context"
	"errors"
	"testing"

	"roulette_backend/internal/lib/logger/sl"
	"roulette_backend/internal/middleware"
	"roulette_backend/internal/model"
	"roulette_backend/internal/repository/house_stats_repo"
	"roulette_backend/internal/service/servicetest"
	"roulette_backend/internal/wheel"

	"github.com/shopspring/decimal"
)

type spinLog struct {
	spins int
}

func (l *spinLog) ObserveSpin(bool, float64, float64) { l.spins++ }

type fixture struct {
	spins *spinLog
	users *servicetest.UserRepo
	games *servicetest.GameResultRepo
	stats *house_stats_repo.StatsRepo
	serv  *serv
}

// newFixture Колесо в подкрученном режиме, где всегда выпадает 7
func newFixture(t *testing.T) *fixture {
	t.Helper()
	only7 := make(model.Weights, model.OutcomeCount)
	only7[7] = 1
	engine := wheel.NewEngine(wheel.WithSeed(1), wheel.WithTweakedWeights(only7), wheel.WithUseTweaked(true))

	f := &fixture{
		spins: &spinLog{},
		users: servicetest.NewUserRepo(),
		games: &servicetest.GameResultRepo{},
		stats: house_stats_repo.NewHouseStatsRepository(),
	}
	f.serv = NewRouletteService(sl.Discard(), engine, f.users, f.games, f.stats, &servicetest.TxManager{}, f.spins).(*serv)
	return f
}

func (f *fixture) player(balance int64) (context.Context, int) {
	id := f.users.Add(model.User{Login: "player", Balance: decimal.NewFromInt(balance)})
	return middleware.WithUser(context.Background(), id, false), id
}

func TestSpin_Win(t *testing.T) {
	f := newFixture(t)
	ctx, id := f.player(100)

	res, err := f.serv.Spin(ctx, model.SpinRequest{Bet: model.Bet{Type: model.BetNumber, Value: "7", Amount: 10}})
	if err != nil {
		t.Fatalf("Spin failed: %v", err)
	}
	if res.Outcome != 7 || res.Color != model.ColorBlack || res.Parity != model.ParityOdd {
		t.Errorf("unexpected outcome %+v", res)
	}
	if !res.Payout.Equal(decimal.NewFromInt(130)) {
		t.Errorf("payout %s, want 130", res.Payout)
	}
	// 100 - 10 + 130
	if !res.Balance.Equal(decimal.NewFromInt(220)) {
		t.Errorf("balance %s, want 220", res.Balance)
	}
	if !res.Tweaked {
		t.Error("spin must report tweaked mode")
	}

	stored, _ := f.users.GetBalance(context.Background(), id)
	if !stored.Equal(res.Balance) {
		t.Errorf("stored balance %s differs from result %s", stored, res.Balance)
	}

	if len(f.games.Results) != 1 {
		t.Fatalf("expected 1 game result, got %d", len(f.games.Results))
	}
	g := f.games.Results[0]
	if g.UserID != id || g.OutcomeNumber != 7 || !g.IsTweaked || !g.Payout.Equal(res.Payout) {
		t.Errorf("unexpected game result %+v", g)
	}

	hs := f.stats.HouseState()
	if hs.TotalSpins != 1 || hs.TotalBet != 10 || hs.TotalPayout != 130 {
		t.Errorf("house stats not updated: %+v", hs)
	}
	if f.spins.spins != 1 {
		t.Errorf("observer got %d spins, want 1", f.spins.spins)
	}
}

func TestSpin_LossAndUnknownBetType(t *testing.T) {
	f := newFixture(t)
	ctx, _ := f.player(100)

	tests := []struct {
		name string
		bet  model.Bet
	}{
		{"red on black", model.Bet{Type: model.BetColor, Value: "red", Amount: 10}},
		{"even on odd", model.Bet{Type: model.BetParity, Value: "even", Amount: 10}},
		{"unknown type", model.Bet{Type: "corner", Value: "7", Amount: 10}},
	}
	want := decimal.NewFromInt(100)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := f.serv.Spin(ctx, model.SpinRequest{Bet: tt.bet})
			if err != nil {
				t.Fatalf("Spin failed: %v", err)
			}
			want = want.Sub(decimal.NewFromInt(10))
			if !res.Payout.IsZero() || !res.Balance.Equal(want) {
				t.Errorf("payout %s balance %s, want 0 and %s", res.Payout, res.Balance, want)
			}
		})
	}
}

func TestSpin_Errors(t *testing.T) {
	f := newFixture(t)
	ctx, id := f.player(5)

	_, err := f.serv.Spin(context.Background(), model.SpinRequest{Bet: model.Bet{Type: model.BetColor, Value: "red", Amount: 1}})
	if !errors.Is(err, model.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}

	_, err = f.serv.Spin(ctx, model.SpinRequest{Bet: model.Bet{Type: model.BetColor, Value: "red", Amount: 0}})
	if !errors.Is(err, model.ErrInvalidBet) {
		t.Errorf("expected ErrInvalidBet, got %v", err)
	}

	_, err = f.serv.Spin(ctx, model.SpinRequest{Bet: model.Bet{Type: model.BetColor, Value: "red", Amount: 10}})
	if !errors.Is(err, model.ErrInsufficientBalance) {
		t.Errorf("expected ErrInsufficientBalance, got %v", err)
	}

	balance, _ := f.users.GetBalance(context.Background(), id)
	if !balance.Equal(decimal.NewFromInt(5)) {
		t.Errorf("balance changed on failed spin: %s", balance)
	}
	if len(f.games.Results) != 0 || f.stats.HouseState().TotalSpins != 0 || f.spins.spins != 0 {
		t.Error("failed spins must not be recorded")
	}
}

func TestHistory(t *testing.T) {
	f := newFixture(t)
	ctx, _ := f.player(1000)

	for i := 0; i < 3; i++ {
		if _, err := f.serv.Spin(ctx, model.SpinRequest{Bet: model.Bet{Type: model.BetColor, Value: "black", Amount: 1}}); err != nil {
			t.Fatalf("Spin failed: %v", err)
		}
	}
	other := middleware.WithUser(context.Background(), f.users.Add(model.User{Login: "other", Balance: decimal.NewFromInt(10)}), false)
	if _, err := f.serv.Spin(other, model.SpinRequest{Bet: model.Bet{Type: model.BetColor, Value: "black", Amount: 1}}); err != nil {
		t.Fatalf("Spin failed: %v", err)
	}

	history, err := f.serv.History(ctx, 2)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 results, got %d", len(history))
	}
	if history[0].ID < history[1].ID {
		t.Error("history must be newest first")
	}

	all, err := f.serv.History(ctx, 0)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 own results, got %d", len(all))
	}
}

func TestSpin_CentPrecision(t *testing.T) {
	tests := []struct {
		name    string
		amount  float64
		payout  string
		balance string
	}{
		{"0.29 on number", 0.29, "3.77", "103.48"},
		{"0.07 on number", 0.07, "0.91", "100.84"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			ctx, id := f.player(100)

			res, err := f.serv.Spin(ctx, model.SpinRequest{Bet: model.Bet{Type: model.BetNumber, Value: "7", Amount: tt.amount}})
			if err != nil {
				t.Fatalf("Spin failed: %v", err)
			}
			if want := decimal.RequireFromString(tt.payout); !res.Payout.Equal(want) {
				t.Errorf("payout %s, want %s", res.Payout, want)
			}
			want := decimal.RequireFromString(tt.balance)
			if !res.Balance.Equal(want) {
				t.Errorf("balance %s, want %s", res.Balance, want)
			}
			stored, _ := f.users.GetBalance(context.Background(), id)
			if !stored.Equal(want) {
				t.Errorf("stored balance %s, want %s", stored, want)
			}
			if !f.games.Results[0].Payout.Equal(res.Payout) {
				t.Errorf("stored payout %s differs from result %s", f.games.Results[0].Payout, res.Payout)
			}
		})
	}
}

func TestSpin_SubCentBet(t *testing.T) {
	f := newFixture(t)
	ctx, id := f.player(100)

	for _, amount := range []float64{0.004, 1.005} {
		_, err := f.serv.Spin(ctx, model.SpinRequest{Bet: model.Bet{Type: model.BetNumber, Value: "7", Amount: amount}})
		if !errors.Is(err, model.ErrInvalidBet) {
			t.Errorf("amount %v: expected ErrInvalidBet, got %v", amount, err)
		}
	}

	balance, _ := f.users.GetBalance(context.Background(), id)
	if !balance.Equal(decimal.NewFromInt(100)) {
		t.Errorf("balance changed: %s", balance)
	}
	if len(f.games.Results) != 0 {
		t.Error("rejected bets must not be recorded")
	}
}
