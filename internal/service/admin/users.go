package admin

import (
	"context"
	"fmt"
	"roulette_backend/internal/model"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slog"
)

// UpdateBalance Администратор выставляет игроку баланс
func (s *serv) UpdateBalance(ctx context.Context, userID int, balance decimal.Decimal) error {
	const op = "service.admin.UpdateBalance"

	if balance.IsNegative() || !model.IsWholeCents(balance) {
		return fmt.Errorf("%s: %w", op, model.ErrInvalidBalance)
	}

	if err := s.userRepo.UpdateBalance(ctx, userID, balance); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("balance updated",
		slog.String("op", op),
		slog.Int("user_id", userID),
		slog.String("balance", balance.String()),
	)

	return nil
}

// DeleteUser Удаляет игрока. Администраторов удалить нельзя
func (s *serv) DeleteUser(ctx context.Context, userID int) error {
	const op = "service.admin.DeleteUser"

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		user, err := s.userRepo.GetUserByID(txCtx, userID)
		if err != nil {
			return err
		}
		if user.IsAdmin {
			return model.ErrCannotDeleteUser
		}
		return s.userRepo.DeleteUser(txCtx, userID)
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("user deleted", slog.String("op", op), slog.Int("user_id", userID))

	return nil
}
