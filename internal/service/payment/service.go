package payment

import (
	"context"
	"fmt"
	"roulette_backend/internal/middleware"
	"roulette_backend/internal/model"
	"roulette_backend/internal/repository"
	"roulette_backend/internal/service"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slog"
)

type serv struct {
	log         *slog.Logger
	userRepo    repository.UserRepository
	requestRepo repository.MoneyRequestRepository
}

func NewPaymentService(
	log *slog.Logger,
	userRepo repository.UserRepository,
	requestRepo repository.MoneyRequestRepository,
) service.PaymentService {
	return &serv{
		log:         log,
		userRepo:    userRepo,
		requestRepo: requestRepo,
	}
}

// RequestMoney Игрок просит администратора пополнить баланс
func (s *serv) RequestMoney(ctx context.Context, amount decimal.Decimal) (int, error) {
	const op = "service.payment.RequestMoney"

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return 0, fmt.Errorf("%s: %w", op, model.ErrUnauthorized)
	}
	if !amount.IsPositive() || !model.IsWholeCents(amount) {
		return 0, fmt.Errorf("%s: %w", op, model.ErrInvalidAmount)
	}

	id, err := s.requestRepo.Create(ctx, &model.MoneyRequest{
		UserID: userID,
		Amount: amount,
		Status: model.MoneyRequestPending,
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("money requested",
		slog.String("op", op),
		slog.Int("user_id", userID),
		slog.Int("request_id", id),
		slog.String("amount", amount.String()),
	)

	return id, nil
}

// GetBalance Баланс текущего игрока
func (s *serv) GetBalance(ctx context.Context) (decimal.Decimal, error) {
	const op = "service.payment.GetBalance"

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return decimal.Zero, fmt.Errorf("%s: %w", op, model.ErrUnauthorized)
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", op, err)
	}

	return user.Balance, nil
}
