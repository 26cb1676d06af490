package admin

import (
	"context"
	"fmt"
	"roulette_backend/internal/model"

	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"
)

// Simulate Прогоняет одну и ту же ставку в честном и подкрученном режиме.
// С сидом оба прогона воспроизводимы.
func (s *serv) Simulate(_ context.Context, params model.SimulationParams) (*model.SimulationComparison, error) {
	const op = "service.admin.Simulate"

	if params.Runs == 0 {
		params.Runs = s.defaultRuns
	}
	if params.Runs > s.maxRuns {
		return nil, fmt.Errorf("%s: %w: %d > %d", op, model.ErrTooManyRuns, params.Runs, s.maxRuns)
	}

	var fair, tweaked *model.SimulationResult

	// Прогоны независимы, каждый со своим источником случайных чисел
	var g errgroup.Group
	g.Go(func() error {
		p := params
		p.UseTweaked = false
		res, err := s.engine.Simulate(p)
		fair = res
		return err
	})
	g.Go(func() error {
		p := params
		p.UseTweaked = true
		res, err := s.engine.Simulate(p)
		tweaked = res
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Debug("simulation done",
		slog.String("op", op),
		slog.Int("runs", params.Runs),
		slog.Float64("fair_edge", fair.HouseEdgePercent),
		slog.Float64("tweaked_edge", tweaked.HouseEdgePercent),
	)

	return &model.SimulationComparison{Fair: fair, Tweaked: tweaked}, nil
}
