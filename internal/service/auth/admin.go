package auth

import (
	"context"
	"errors"
	"fmt"
	"roulette_backend/internal/model"
	"roulette_backend/pkg/pass"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slog"
)

// EnsureAdmin Создает учетную запись администратора, если ее еще нет
func (s *serv) EnsureAdmin(ctx context.Context, login, password string) error {
	const op = "service.auth.EnsureAdmin"

	_, err := s.userRepo.GetUserByLogin(ctx, login)
	if err == nil {
		return nil
	}
	if !errors.Is(err, model.ErrUserNotFound) {
		return fmt.Errorf("%s: %w", op, err)
	}

	hash, err := pass.HashPassword(password)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	id, err := s.userRepo.CreateUser(ctx, &model.User{
		Login:    login,
		Password: hash,
		Balance:  decimal.Zero,
		IsAdmin:  true,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("default admin created", slog.String("op", op), slog.Int("user_id", id))

	return nil
}
