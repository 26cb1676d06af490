package env

import (
	"fmt"
	"os"
	"roulette_backend/internal/config"
	"time"
)

const (
	accessTokenKeyEnvName       = "ACCESS_TOKEN"
	accessTokenDurationEnvName  = "ACCESS_TOKEN_DURATION"
	refreshTokenDurationEnvName = "REFRESH_TOKEN_DURATION"

	defaultAccessTokenDuration  = 15 * time.Minute
	defaultRefreshTokenDuration = 30 * 24 * time.Hour
)

type jwtConfig struct {
	secretKey       []byte
	accessDuration  time.Duration
	refreshDuration time.Duration
}

// NewJWTConfig Секрет обязателен, время жизни токенов можно не задавать
func NewJWTConfig() (config.JWTConfig, error) {
	secret := os.Getenv(accessTokenKeyEnvName)
	if len(secret) == 0 {
		return nil, fmt.Errorf("access token secret key not found")
	}

	accessDuration, err := durationOrDefault(accessTokenDurationEnvName, defaultAccessTokenDuration)
	if err != nil {
		return nil, err
	}
	refreshDuration, err := durationOrDefault(refreshTokenDurationEnvName, defaultRefreshTokenDuration)
	if err != nil {
		return nil, err
	}
	if accessDuration <= 0 || refreshDuration <= 0 {
		return nil, fmt.Errorf("token durations must be positive")
	}

	return &jwtConfig{
		secretKey:       []byte(secret),
		accessDuration:  accessDuration,
		refreshDuration: refreshDuration,
	}, nil
}

func (j *jwtConfig) AccessTokenSecretKey() []byte {
	return j.secretKey
}

func (j *jwtConfig) AccessTokenDuration() time.Duration {
	return j.accessDuration
}

func (j *jwtConfig) RefreshTokenDuration() time.Duration {
	return j.refreshDuration
}
