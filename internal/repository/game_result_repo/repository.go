package game_result_repo

import (
	"context"
	"roulette_backend/internal/model"
	"roulette_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table            = "game_results"
	colID            = "id"
	colUserID        = "user_id"
	colBetType       = "bet_type"
	colBetValue      = "bet_value"
	colBetAmount     = "bet_amount"
	colOutcomeNumber = "outcome_number"
	colOutcomeColor  = "outcome_color"
	colPayout        = "payout"
	colIsTweaked     = "is_tweaked"
	colCreatedAt     = "created_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewGameResultRepository(dbc *pgxpool.Pool) repository.GameResultRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// Create - сохраняет результат спина. Возвращает ID записи
func (r *repo) Create(ctx context.Context, res *model.GameResult) (int, error) {
	query := sq.Insert(table).
		Columns(colUserID, colBetType, colBetValue, colBetAmount, colOutcomeNumber, colOutcomeColor, colPayout, colIsTweaked).
		Values(res.UserID, string(res.BetType), res.BetValue, res.BetAmount, int(res.OutcomeNumber), string(res.OutcomeColor), res.Payout, res.IsTweaked).
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

// ListByUser - последние спины пользователя, новые первыми
func (r *repo) ListByUser(ctx context.Context, userID int, limit uint64) ([]model.GameResult, error) {
	query := sq.Select(colID, colUserID, colBetType, colBetValue, colBetAmount, colOutcomeNumber, colOutcomeColor, colPayout, colIsTweaked, colCreatedAt).
		From(table).
		Where(sq.Eq{colUserID: userID}).
		OrderBy(colID + " DESC").
		Limit(limit).
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

	var results []model.GameResult
	for rows.Next() {
		var (
			g       model.GameResult
			betType string
			outcome int
			color   string
		)
		err := rows.Scan(&g.ID, &g.UserID, &betType, &g.BetValue, &g.BetAmount, &outcome, &color, &g.Payout, &g.IsTweaked, &g.CreatedAt)
		if err != nil {
			return nil, err
		}
		g.BetType = model.BetType(betType)
		g.OutcomeNumber = model.Outcome(outcome)
		g.OutcomeColor = model.Color(color)
		results = append(results, g)
	}

	return results, rows.Err()
}
