package repository

import (
	"context"
	"roulette_backend/internal/model"

	"github.com/shopspring/decimal"
)

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (refreshToken string, err error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id int, err error)
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)
	GetUserByID(ctx context.Context, id int) (*model.User, error)
	ListPlayers(ctx context.Context) ([]model.User, error)
	DeleteUser(ctx context.Context, id int) error

	GetBalance(ctx context.Context, id int) (decimal.Decimal, error)
	UpdateBalance(ctx context.Context, id int, balance decimal.Decimal) error
}

type GameResultRepository interface {
	Create(ctx context.Context, res *model.GameResult) (id int, err error)
	ListByUser(ctx context.Context, userID int, limit uint64) ([]model.GameResult, error)
}

type MoneyRequestRepository interface {
	Create(ctx context.Context, req *model.MoneyRequest) (id int, err error)
	GetByID(ctx context.Context, id int) (*model.MoneyRequest, error)
	ListByStatus(ctx context.Context, status model.MoneyRequestStatus) ([]model.MoneyRequest, error)
	UpdateStatus(ctx context.Context, id int, status model.MoneyRequestStatus) error
}

// HouseStatsRepository Статистика по реальным спинам, хранится в памяти процесса
type HouseStatsRepository interface {
	HouseState() model.HouseState
	UpdateState(bet, payout float64)
	Reset()
}
