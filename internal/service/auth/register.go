package auth

import (
	"context"
	"fmt"
	"roulette_backend/internal/model"
	"roulette_backend/pkg/pass"

	"golang.org/x/exp/slog"
)

// Register Создает игрока со стартовым балансом и сразу открывает сессию
func (s *serv) Register(ctx context.Context, user *model.User) (*model.AuthData, error) {
	const op = "service.auth.Register"

	// Хэширование пароля пользователя
	passwordHash, err := pass.HashPassword(user.Password)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	user.Password = passwordHash
	user.Balance = s.startBalance
	user.IsAdmin = false

	var data *model.AuthData

	// Начало транзакции
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		// 1. Создать пользователя в бд
		user.ID, err = s.userRepo.CreateUser(ctx, user)
		if err != nil {
			return err
		}

		// 2. Сессия и токены
		data, err = s.openSession(ctx, user)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("user registered", slog.String("op", op), slog.Int("user_id", user.ID))

	return data, nil
}
