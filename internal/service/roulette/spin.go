package roulette

import (
	"context"
	"fmt"
	"roulette_backend/internal/lib/logger/sl"
	"roulette_backend/internal/middleware"
	"roulette_backend/internal/model"
	"roulette_backend/internal/wheel"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slog"
)

// Spin выполняет спин: списывает ставку, крутит колесо и начисляет выплату.
// Неизвестный тип ставки не ошибка, а проигрыш.
func (s *serv) Spin(ctx context.Context, req model.SpinRequest) (*model.SpinResult, error) {
	const op = "service.roulette.Spin"

	// Получаем ID пользователя
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, model.ErrUnauthorized)
	}

	// Ставка больше нуля и без долей копейки
	amount := decimal.NewFromFloat(req.Bet.Amount)
	if !amount.IsPositive() || !model.IsWholeCents(amount) {
		return nil, fmt.Errorf("%s: %w", op, model.ErrInvalidBet)
	}

	log := s.log.With(
		slog.String("op", op),
		slog.Int("user_id", userID),
	)

	var (
		res    *model.SpinResult
		payout float64
	)

	// Начало транзакции, где выполняется процесс спина
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		balance, err := s.userRepo.GetBalance(txCtx, userID)
		if err != nil {
			return err
		}
		if amount.GreaterThan(balance) {
			return model.ErrInsufficientBalance
		}

		// Режим и веса берутся из одного снимка настроек администратора
		settings := s.engine.Settings()
		useTweaked := settings.UseTweaked
		outcome, err := s.engine.Spin(useTweaked, settings.TweakedWeights)
		if err != nil {
			return err
		}

		payoutDec := decimal.Zero
		if wheel.Wins(req.Bet, outcome) {
			payoutDec = amount.Mul(decimal.NewFromInt(wheel.Multiplier(req.Bet.Type)))
		}
		payout = payoutDec.InexactFloat64()

		// Баланс меняется на payout - ставка
		balance = balance.Sub(amount).Add(payoutDec).Round(model.MoneyScale)
		if err := s.userRepo.UpdateBalance(txCtx, userID, balance); err != nil {
			return err
		}

		color := wheel.ColorOf(outcome)
		_, err = s.gameRepo.Create(txCtx, &model.GameResult{
			UserID:        userID,
			BetType:       req.Bet.Type,
			BetValue:      req.Bet.Value,
			BetAmount:     amount,
			OutcomeNumber: outcome,
			OutcomeColor:  color,
			Payout:        payoutDec,
			IsTweaked:     useTweaked,
		})
		if err != nil {
			return err
		}

		res = &model.SpinResult{
			Outcome: outcome,
			Color:   color,
			Parity:  wheel.ParityOf(outcome),
			Payout:  payoutDec,
			Balance: balance,
			Tweaked: useTweaked,
		}
		return nil
	})
	if err != nil {
		log.Error("spin failed", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	bet := amount.InexactFloat64()
	s.houseStats.UpdateState(bet, payout)
	s.observer.ObserveSpin(res.Tweaked, bet, payout)

	log.Debug("spin done",
		slog.Int("outcome", int(res.Outcome)),
		slog.String("bet_type", string(req.Bet.Type)),
		slog.String("payout", res.Payout.String()),
	)

	return res, nil
}
