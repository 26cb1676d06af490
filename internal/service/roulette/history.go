package roulette

import (
	"context"
	"fmt"
	"roulette_backend/internal/middleware"
	"roulette_backend/internal/model"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// History Последние спины текущего игрока
func (s *serv) History(ctx context.Context, limit int) ([]model.GameResult, error) {
	const op = "service.roulette.History"

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, model.ErrUnauthorized)
	}

	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	results, err := s.gameRepo.ListByUser(ctx, userID, uint64(limit))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return results, nil
}
