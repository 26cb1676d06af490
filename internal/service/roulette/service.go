package roulette

import (
	"roulette_backend/internal/repository"
	"roulette_backend/internal/service"
	"roulette_backend/internal/wheel"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"golang.org/x/exp/slog"
)

// SpinObserver Получает каждый сыгранный спин (метрики)
type SpinObserver interface {
	ObserveSpin(tweaked bool, bet, payout float64)
}

type serv struct {
	log        *slog.Logger
	engine     *wheel.Engine
	userRepo   repository.UserRepository
	gameRepo   repository.GameResultRepository
	houseStats repository.HouseStatsRepository
	txManager  trm.Manager
	observer   SpinObserver
}

// NewRouletteService Игровой сервис: спин со списанием ставки и история игрока
func NewRouletteService(
	log *slog.Logger,
	engine *wheel.Engine,
	userRepo repository.UserRepository,
	gameRepo repository.GameResultRepository,
	houseStats repository.HouseStatsRepository,
	txManager trm.Manager,
	observer SpinObserver,
) service.RouletteService {
	return &serv{
		log:        log,
		engine:     engine,
		userRepo:   userRepo,
		gameRepo:   gameRepo,
		houseStats: houseStats,
		txManager:  txManager,
		observer:   observer,
	}
}
