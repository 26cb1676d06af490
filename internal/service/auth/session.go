package auth

import (
	"context"
	"roulette_backend/internal/model"
	"roulette_backend/pkg/token"
	"time"

	"github.com/google/uuid"
)

func generateSessionID() string {
	return uuid.NewString()
}

// openSession Создает сессию и выдает пару токенов
func (s *serv) openSession(ctx context.Context, user *model.User) (*model.AuthData, error) {
	// Генерация sessionID
	sessionID := generateSessionID()

	// Генерация refresh токена
	refreshToken, refreshHash, err := token.NewRefreshToken()
	if err != nil {
		return nil, err
	}

	// Создать сессию, в БД хранится только хэш refresh токена
	err = s.authRepo.CreateSession(ctx,
		&model.Session{
			ID:           sessionID,
			UserID:       user.ID,
			RefreshToken: refreshHash,
			ExpiresAt:    time.Now().Add(s.jwtConfig.RefreshTokenDuration()),
		})
	if err != nil {
		return nil, err
	}

	// Создать access токен
	accessToken, err := token.GenerateAccessToken(
		user,
		s.jwtConfig.AccessTokenSecretKey(),
		s.jwtConfig.AccessTokenDuration())
	if err != nil {
		return nil, err
	}

	return &model.AuthData{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		SessionID:    sessionID,
	}, nil
}
