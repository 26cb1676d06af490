package admin

import (
	"context"
	"fmt"
	"roulette_backend/internal/model"

	"golang.org/x/exp/slog"
)

// Dashboard Настройки колеса, статистика, игроки и заявки на пополнение
func (s *serv) Dashboard(ctx context.Context) (*model.Dashboard, error) {
	const op = "service.admin.Dashboard"

	players, err := s.userRepo.ListPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	pending, err := s.requestRepo.ListByStatus(ctx, model.MoneyRequestPending)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &model.Dashboard{
		Settings:        s.engine.Settings(),
		House:           s.houseStats.HouseState(),
		Players:         players,
		PendingRequests: pending,
	}, nil
}

// UpdateSettings Меняет режим и, если переданы, подкрученные веса.
// Неверный вектор весов отклоняется целиком, режим при этом не меняется.
func (s *serv) UpdateSettings(_ context.Context, weights model.Weights, useTweaked bool) error {
	const op = "service.admin.UpdateSettings"

	if err := s.engine.Apply(weights, useTweaked); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("roulette settings updated",
		slog.String("op", op),
		slog.Any("weights", s.engine.Settings().TweakedWeights),
		slog.Bool("use_tweaked", useTweaked),
	)

	return nil
}

// ResetGame Равные веса, честный режим, статистика с нуля
func (s *serv) ResetGame(_ context.Context) error {
	const op = "service.admin.ResetGame"

	s.engine.Reset()
	s.houseStats.Reset()

	s.log.Info("roulette reset", slog.String("op", op))

	return nil
}
