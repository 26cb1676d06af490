package admin

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"roulette_backend/internal/lib/logger/sl"
	"roulette_backend/internal/model"
	"roulette_backend/internal/repository/house_stats_repo"
	"roulette_backend/internal/service/servicetest"
	"roulette_backend/internal/wheel"

	"github.com/shopspring/decimal"
)

type fixture struct {
	engine *wheel.Engine
	users  *servicetest.UserRepo
	reqs   *servicetest.MoneyRequestRepo
	stats  *house_stats_repo.StatsRepo
	serv   *serv
}

func newFixture() *fixture {
	f := &fixture{
		engine: wheel.NewEngine(wheel.WithSeed(1)),
		users:  servicetest.NewUserRepo(),
		reqs:   &servicetest.MoneyRequestRepo{},
		stats:  house_stats_repo.NewHouseStatsRepository(),
	}
	f.serv = NewAdminService(sl.Discard(), f.engine, f.users, f.reqs, f.stats, &servicetest.TxManager{}, 1000, 5000).(*serv)
	return f
}

func TestUpdateSettings(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	w := wheel.FairWeights()
	w[0] = 10
	if err := f.serv.UpdateSettings(ctx, w, true); err != nil {
		t.Fatalf("UpdateSettings failed: %v", err)
	}
	s := f.engine.Settings()
	if !s.UseTweaked || s.TweakedWeights[0] != 10 {
		t.Errorf("settings not applied: %+v", s)
	}

	// Только переключение режима, веса сохраняются
	if err := f.serv.UpdateSettings(ctx, nil, false); err != nil {
		t.Fatalf("UpdateSettings failed: %v", err)
	}
	s = f.engine.Settings()
	if s.UseTweaked || s.TweakedWeights[0] != 10 {
		t.Errorf("unexpected settings: %+v", s)
	}

	err := f.serv.UpdateSettings(ctx, model.Weights{1, 2, 3}, true)
	if !errors.Is(err, wheel.ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
	}
	if f.engine.Settings().UseTweaked {
		t.Error("rejected update must not switch mode")
	}
}

func TestResetGame(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.engine.SetUseTweaked(true)
	f.stats.UpdateState(10, 0)

	if err := f.serv.ResetGame(ctx); err != nil {
		t.Fatalf("ResetGame failed: %v", err)
	}
	s := f.engine.Settings()
	if s.UseTweaked || s.TweakedWeights[0] != 1 {
		t.Errorf("engine not reset: %+v", s)
	}
	if f.stats.HouseState().TotalSpins != 0 {
		t.Error("house stats not reset")
	}
}

func TestSimulate(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	seed := int64(42)

	cmp, err := f.serv.Simulate(ctx, model.SimulationParams{Seed: &seed})
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}
	if cmp.Fair.Runs != 1000 || cmp.Tweaked.Runs != 1000 {
		t.Errorf("default runs not applied: %d/%d", cmp.Fair.Runs, cmp.Tweaked.Runs)
	}
	if cmp.Fair.TotalBet != 10000 {
		t.Errorf("fair total bet %v, want 10000", cmp.Fair.TotalBet)
	}

	again, err := f.serv.Simulate(ctx, model.SimulationParams{Seed: &seed})
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}
	if again.Fair.NetProfit != cmp.Fair.NetProfit || again.Tweaked.NetProfit != cmp.Tweaked.NetProfit {
		t.Error("seeded simulations differ")
	}

	if _, err := f.serv.Simulate(ctx, model.SimulationParams{Runs: 5001}); !errors.Is(err, model.ErrTooManyRuns) {
		t.Errorf("expected ErrTooManyRuns, got %v", err)
	}
}

func TestSimulate_UnseededRunsUseOwnSeeds(t *testing.T) {
	// Подкрученные веса равны честным, отличаться прогоны могут только сидом
	engine := wheel.NewEngine(wheel.WithSeed(9), wheel.WithTweakedWeights(wheel.FairWeights()))
	s := NewAdminService(sl.Discard(), engine, servicetest.NewUserRepo(), &servicetest.MoneyRequestRepo{},
		house_stats_repo.NewHouseStatsRepository(), &servicetest.TxManager{}, 1000, 5000)

	cmp, err := s.Simulate(context.Background(), model.SimulationParams{Runs: 500})
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}
	if reflect.DeepEqual(cmp.Fair.CumulativeProfits, cmp.Tweaked.CumulativeProfits) {
		t.Error("fair and tweaked runs must draw separate seeds")
	}

	seed := int64(4)
	cmp, err = s.Simulate(context.Background(), model.SimulationParams{Runs: 500, Seed: &seed})
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}
	if !reflect.DeepEqual(cmp.Fair.CumulativeProfits, cmp.Tweaked.CumulativeProfits) {
		t.Error("with an explicit seed both runs share it")
	}
}

func TestUsers(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	player := f.users.Add(model.User{Login: "bob", Balance: decimal.NewFromInt(10)})
	admin := f.users.Add(model.User{Login: "admin", IsAdmin: true})

	if err := f.serv.UpdateBalance(ctx, player, decimal.NewFromInt(500)); err != nil {
		t.Fatalf("UpdateBalance failed: %v", err)
	}
	if b, _ := f.users.GetBalance(ctx, player); !b.Equal(decimal.NewFromInt(500)) {
		t.Errorf("balance %s, want 500", b)
	}
	if err := f.serv.UpdateBalance(ctx, player, decimal.NewFromInt(-1)); !errors.Is(err, model.ErrInvalidBalance) {
		t.Errorf("expected ErrInvalidBalance, got %v", err)
	}
	if err := f.serv.UpdateBalance(ctx, player, decimal.RequireFromString("10.005")); !errors.Is(err, model.ErrInvalidBalance) {
		t.Errorf("sub-cent balance: expected ErrInvalidBalance, got %v", err)
	}
	if err := f.serv.UpdateBalance(ctx, 999, decimal.NewFromInt(1)); !errors.Is(err, model.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}

	dash, err := f.serv.Dashboard(ctx)
	if err != nil {
		t.Fatalf("Dashboard failed: %v", err)
	}
	if len(dash.Players) != 1 || dash.Players[0].ID != player {
		t.Errorf("dashboard must list players only: %+v", dash.Players)
	}

	if err := f.serv.DeleteUser(ctx, admin); !errors.Is(err, model.ErrCannotDeleteUser) {
		t.Errorf("expected ErrCannotDeleteUser, got %v", err)
	}
	if err := f.serv.DeleteUser(ctx, player); err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}
	if _, err := f.users.GetUserByID(ctx, player); !errors.Is(err, model.ErrUserNotFound) {
		t.Error("player not deleted")
	}
}

func TestHandleRequest(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	player := f.users.Add(model.User{Login: "bob", Balance: decimal.NewFromInt(10)})
	approveID, _ := f.reqs.Create(ctx, &model.MoneyRequest{UserID: player, Amount: decimal.NewFromInt(100), Status: model.MoneyRequestPending})
	rejectID, _ := f.reqs.Create(ctx, &model.MoneyRequest{UserID: player, Amount: decimal.NewFromInt(7), Status: model.MoneyRequestPending})

	pending, err := f.serv.PendingRequests(ctx)
	if err != nil || len(pending) != 2 {
		t.Fatalf("expected 2 pending requests, got %d (%v)", len(pending), err)
	}

	if err := f.serv.HandleRequest(ctx, approveID, model.ActionApprove); err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if err := f.serv.HandleRequest(ctx, rejectID, model.ActionReject); err != nil {
		t.Fatalf("reject failed: %v", err)
	}

	if b, _ := f.users.GetBalance(ctx, player); !b.Equal(decimal.NewFromInt(110)) {
		t.Errorf("balance %s, want 110", b)
	}
	if r, _ := f.reqs.GetByID(ctx, rejectID); r.Status != model.MoneyRequestRejected {
		t.Errorf("status %s, want rejected", r.Status)
	}

	if err := f.serv.HandleRequest(ctx, approveID, model.ActionApprove); !errors.Is(err, model.ErrRequestHandled) {
		t.Errorf("expected ErrRequestHandled, got %v", err)
	}
	if err := f.serv.HandleRequest(ctx, 999, model.ActionApprove); !errors.Is(err, model.ErrMoneyRequestNotFound) {
		t.Errorf("expected ErrMoneyRequestNotFound, got %v", err)
	}
	if err := f.serv.HandleRequest(ctx, approveID, "maybe"); !errors.Is(err, model.ErrInvalidAction) {
		t.Errorf("expected ErrInvalidAction, got %v", err)
	}

	if pending, _ := f.serv.PendingRequests(ctx); len(pending) != 0 {
		t.Errorf("expected no pending requests, got %d", len(pending))
	}
}
