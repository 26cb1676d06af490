package admin

import (
	"roulette_backend/internal/repository"
	"roulette_backend/internal/service"
	"roulette_backend/internal/wheel"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"golang.org/x/exp/slog"
)

type serv struct {
	log         *slog.Logger
	engine      *wheel.Engine
	userRepo    repository.UserRepository
	requestRepo repository.MoneyRequestRepository
	houseStats  repository.HouseStatsRepository
	txManager   trm.Manager

	defaultRuns int
	maxRuns     int
}

// NewAdminService Инструменты администратора: настройки колеса, симуляции, балансы и заявки
func NewAdminService(
	log *slog.Logger,
	engine *wheel.Engine,
	userRepo repository.UserRepository,
	requestRepo repository.MoneyRequestRepository,
	houseStats repository.HouseStatsRepository,
	txManager trm.Manager,
	defaultRuns, maxRuns int,
) service.AdminService {
	return &serv{
		log:         log,
		engine:      engine,
		userRepo:    userRepo,
		requestRepo: requestRepo,
		houseStats:  houseStats,
		txManager:   txManager,
		defaultRuns: defaultRuns,
		maxRuns:     maxRuns,
	}
}
