package auth

import (
	"context"
	"errors"
	"fmt"
	"roulette_backend/internal/model"
	"roulette_backend/pkg/pass"
)

// Login Вход игрока или администратора
func (s *serv) Login(ctx context.Context, login, password string) (*model.AuthData, error) {
	const op = "service.auth.Login"

	user, err := s.checkCredentials(ctx, login, password)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	data, err := s.openSession(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return data, nil
}

// AdminLogin Вход только для администраторов
func (s *serv) AdminLogin(ctx context.Context, login, password string) (*model.AuthData, error) {
	const op = "service.auth.AdminLogin"

	user, err := s.checkCredentials(ctx, login, password)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !user.IsAdmin {
		return nil, fmt.Errorf("%s: %w", op, model.ErrInvalidCredentials)
	}

	data, err := s.openSession(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return data, nil
}

func (s *serv) checkCredentials(ctx context.Context, login, password string) (*model.User, error) {
	// Получение пользователя из бд по логину
	user, err := s.userRepo.GetUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.ErrInvalidCredentials
		}
		return nil, err
	}

	// Верификация пароля
	if !pass.VerifyPassword(user.Password, password) {
		return nil, model.ErrInvalidCredentials
	}

	return user, nil
}
