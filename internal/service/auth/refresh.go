package auth

import (
	"context"
	"fmt"
	"roulette_backend/internal/model"
	"roulette_backend/pkg/token"
)

// Refresh Новый access токен по session ID и refresh токену
func (s *serv) Refresh(ctx context.Context, data *model.AuthData) (string, error) {
	const op = "service.auth.Refresh"

	// Получение хэша refresh токена из хранилища по sessionID
	refreshTokenHash, err := s.authRepo.GetRefreshTokenBySessionID(ctx, data.SessionID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	// Верификация переданного refresh токена с хэшем из хранилища
	if !token.VerifyRefreshToken(data.RefreshToken, refreshTokenHash) {
		return "", fmt.Errorf("%s: %w", op, model.ErrInvalidRefreshToken)
	}

	// Получение пользователя по sessionID
	user, err := s.authRepo.GetUserBySessionID(ctx, data.SessionID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	// Генерация нового access токена
	newAccessToken, err := token.GenerateAccessToken(
		user,
		s.jwtConfig.AccessTokenSecretKey(),
		s.jwtConfig.AccessTokenDuration())
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return newAccessToken, nil
}
