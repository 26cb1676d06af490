package auth

import (
	"roulette_backend/internal/config"
	"roulette_backend/internal/repository"
	"roulette_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slog"
)

type serv struct {
	log          *slog.Logger
	txManager    trm.Manager
	userRepo     repository.UserRepository
	authRepo     repository.AuthRepository
	jwtConfig    config.JWTConfig
	startBalance decimal.Decimal
}

func NewAuthService(
	log *slog.Logger,
	txManager trm.Manager,
	userRepo repository.UserRepository,
	authRepo repository.AuthRepository,
	jwtConfig config.JWTConfig,
	startBalance float64,
) service.AuthService {
	return &serv{
		log:          log,
		txManager:    txManager,
		userRepo:     userRepo,
		authRepo:     authRepo,
		jwtConfig:    jwtConfig,
		startBalance: decimal.NewFromFloat(startBalance),
	}
}
