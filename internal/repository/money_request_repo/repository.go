package money_request_repo

import (
	"context"
	"errors"
	"roulette_backend/internal/model"
	"roulette_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table        = "money_requests"
	colID        = "id"
	colUserID    = "user_id"
	colAmount    = "amount"
	colStatus    = "status"
	colCreatedAt = "created_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewMoneyRequestRepository(dbc *pgxpool.Pool) repository.MoneyRequestRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// Create - создает заявку на пополнение. Возвращает ID заявки
func (r *repo) Create(ctx context.Context, req *model.MoneyRequest) (int, error) {
	query := sq.Insert(table).
		Columns(colUserID, colAmount, colStatus).
		Values(req.UserID, req.Amount, string(req.Status)).
		Suffix("RETURNING " + colID).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var id int
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// GetByID - заявка по ID, строка блокируется до конца транзакции
func (r *repo) GetByID(ctx context.Context, id int) (*model.MoneyRequest, error) {
	query := sq.Select(colID, colUserID, colAmount, colStatus, colCreatedAt).
		From(table).
		Where(sq.Eq{colID: id}).
		Suffix("FOR UPDATE").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var (
		req    model.MoneyRequest
		status string
	)
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&req.ID, &req.UserID, &req.Amount, &status, &req.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrMoneyRequestNotFound
		}
		return nil, err
	}
	req.Status = model.MoneyRequestStatus(status)

	return &req, nil
}

// ListByStatus - заявки с указанным статусом вместе с логином игрока
func (r *repo) ListByStatus(ctx context.Context, status model.MoneyRequestStatus) ([]model.MoneyRequest, error) {
	query := sq.Select("m.id", "m.user_id", "u.login", "m.amount", "m.status", "m.created_at").
		From(table + " m").
		Join("users u ON m." + colUserID + " = u.id").
		Where(sq.Eq{"m." + colStatus: string(status)}).
		OrderBy("m." + colID).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []model.MoneyRequest
	for rows.Next() {
		var (
			req model.MoneyRequest
			st  string
		)
		if err := rows.Scan(&req.ID, &req.UserID, &req.Login, &req.Amount, &st, &req.CreatedAt); err != nil {
			return nil, err
		}
		req.Status = model.MoneyRequestStatus(st)
		reqs = append(reqs, req)
	}

	return reqs, rows.Err()
}

// UpdateStatus - меняет статус заявки
func (r *repo) UpdateStatus(ctx context.Context, id int, status model.MoneyRequestStatus) error {
	query := sq.Update(table).
		Set(colStatus, string(status)).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return model.ErrMoneyRequestNotFound
	}

	return nil
}
