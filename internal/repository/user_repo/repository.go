package user_repo

import (
	"context"
	"errors"
	"roulette_backend/internal/model"
	"roulette_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const (
	table           = "users"
	colID           = "id"
	colLogin        = "login"
	colPasswordHash = "password_hash"
	colBalance      = "balance"
	colIsAdmin      = "is_admin"
	colCreatedAt    = "created_at"

	uniqueViolation = "23505"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewUserRepository(dbc *pgxpool.Pool) repository.UserRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// CreateUser - создает нового пользователя в БД.
// Возвращает ID созданного пользователя
func (r *repo) CreateUser(ctx context.Context, user *model.User) (int, error) {
	query := sq.Insert(table).
		Columns(colLogin, colPasswordHash, colBalance, colIsAdmin).
		Values(user.Login, user.Password, user.Balance, user.IsAdmin).
		Suffix("RETURNING " + colID).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var id int
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, model.ErrUserExists
		}
		return 0, err
	}

	return id, nil
}

// GetUserByLogin - возвращает пользователя по логину
func (r *repo) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	return r.getOne(ctx, sq.Eq{colLogin: login})
}

// GetUserByID - возвращает пользователя по ID
func (r *repo) GetUserByID(ctx context.Context, id int) (*model.User, error) {
	return r.getOne(ctx, sq.Eq{colID: id})
}

func (r *repo) getOne(ctx context.Context, where sq.Eq) (*model.User, error) {
	query := sq.Select(colID, colLogin, colPasswordHash, colBalance, colIsAdmin, colCreatedAt).
		From(table).
		Where(where).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var user model.User
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&user.ID, &user.Login, &user.Password, &user.Balance, &user.IsAdmin, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// ListPlayers - все пользователи, кроме администраторов
func (r *repo) ListPlayers(ctx context.Context) ([]model.User, error) {
	query := sq.Select(colID, colLogin, colBalance, colCreatedAt).
		From(table).
		Where(sq.Eq{colIsAdmin: false}).
		OrderBy(colID).
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

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Login, &u.Balance, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

// DeleteUser - удаляет пользователя вместе с его сессиями, спинами и заявками
func (r *repo) DeleteUser(ctx context.Context, id int) error {
	query := sq.Delete(table).
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
		return model.ErrUserNotFound
	}

	return nil
}

// GetBalance - получение баланса пользователя по его ID
func (r *repo) GetBalance(ctx context.Context, id int) (decimal.Decimal, error) {
	// Строка блокируется до конца транзакции
	query := sq.Select(colBalance).
		From(table).
		Where(sq.Eq{colID: id}).
		Suffix("FOR UPDATE").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return decimal.Zero, err
	}

	var balance decimal.Decimal
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, model.ErrUserNotFound
		}
		return decimal.Zero, err
	}

	return balance, nil
}

// UpdateBalance - записывает новый баланс пользователя
func (r *repo) UpdateBalance(ctx context.Context, id int, balance decimal.Decimal) error {
	query := sq.Update(table).
		Set(colBalance, balance).
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
		return model.ErrUserNotFound
	}

	return nil
}
