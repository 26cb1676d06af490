package admin

import (
	"context"
	"fmt"
	"roulette_backend/internal/model"

	"golang.org/x/exp/slog"
)

// PendingRequests Заявки, которые ждут решения
func (s *serv) PendingRequests(ctx context.Context) ([]model.MoneyRequest, error) {
	const op = "service.admin.PendingRequests"

	reqs, err := s.requestRepo.ListByStatus(ctx, model.MoneyRequestPending)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return reqs, nil
}

// HandleRequest Одобряет или отклоняет заявку.
// При одобрении сумма зачисляется на баланс в той же транзакции.
func (s *serv) HandleRequest(ctx context.Context, requestID int, action model.RequestAction) error {
	const op = "service.admin.HandleRequest"

	var status model.MoneyRequestStatus
	switch action {
	case model.ActionApprove:
		status = model.MoneyRequestApproved
	case model.ActionReject:
		status = model.MoneyRequestRejected
	default:
		return fmt.Errorf("%s: %w: %q", op, model.ErrInvalidAction, action)
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		req, err := s.requestRepo.GetByID(txCtx, requestID)
		if err != nil {
			return err
		}
		if req.Status != model.MoneyRequestPending {
			return model.ErrRequestHandled
		}

		if err := s.requestRepo.UpdateStatus(txCtx, requestID, status); err != nil {
			return err
		}

		if status != model.MoneyRequestApproved {
			return nil
		}

		balance, err := s.userRepo.GetBalance(txCtx, req.UserID)
		if err != nil {
			return err
		}
		return s.userRepo.UpdateBalance(txCtx, req.UserID, balance.Add(req.Amount))
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("money request handled",
		slog.String("op", op),
		slog.Int("request_id", requestID),
		slog.String("status", string(status)),
	)

	return nil
}
