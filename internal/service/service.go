package service

import (
	"context"
	"roulette_backend/internal/model"

	"github.com/shopspring/decimal"
)

type RouletteService interface {
	Spin(ctx context.Context, req model.SpinRequest) (*model.SpinResult, error)
	History(ctx context.Context, limit int) ([]model.GameResult, error)
}

type AdminService interface {
	Dashboard(ctx context.Context) (*model.Dashboard, error)
	UpdateSettings(ctx context.Context, weights model.Weights, useTweaked bool) error
	ResetGame(ctx context.Context) error
	Simulate(ctx context.Context, params model.SimulationParams) (*model.SimulationComparison, error)

	UpdateBalance(ctx context.Context, userID int, balance decimal.Decimal) error
	DeleteUser(ctx context.Context, userID int) error

	PendingRequests(ctx context.Context) ([]model.MoneyRequest, error)
	HandleRequest(ctx context.Context, requestID int, action model.RequestAction) error
}

type AuthService interface {
	Register(ctx context.Context, user *model.User) (*model.AuthData, error)
	Login(ctx context.Context, login, password string) (*model.AuthData, error)
	AdminLogin(ctx context.Context, login, password string) (*model.AuthData, error)
	Refresh(ctx context.Context, data *model.AuthData) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
	EnsureAdmin(ctx context.Context, login, password string) error
}

type PaymentService interface {
	RequestMoney(ctx context.Context, amount decimal.Decimal) (requestID int, err error)
	GetBalance(ctx context.Context) (decimal.Decimal, error)
}
