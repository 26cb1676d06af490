// Package servicetest - in-memory реализации репозиториев и менеджера
// транзакций для тестов сервисов.
package servicetest

import (
	"context"
	"sort"
	"sync"
	"time"

	"roulette_backend/internal/model"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/shopspring/decimal"
)

// TxManager Выполняет функцию без настоящей транзакции
type TxManager struct {
	Calls int
}

func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Calls++
	return fn(ctx)
}

func (m *TxManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}

type UserRepo struct {
	mtx    sync.Mutex
	nextID int
	Users  map[int]*model.User
}

func NewUserRepo() *UserRepo {
	return &UserRepo{Users: map[int]*model.User{}}
}

// Add Добавляет пользователя и возвращает его ID
func (r *UserRepo) Add(u model.User) int {
	id, _ := r.CreateUser(context.Background(), &u)
	return id
}

func (r *UserRepo) CreateUser(_ context.Context, user *model.User) (int, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	for _, u := range r.Users {
		if u.Login == user.Login {
			return 0, model.ErrUserExists
		}
	}
	r.nextID++
	u := *user
	u.ID = r.nextID
	u.CreatedAt = time.Now()
	r.Users[u.ID] = &u
	return u.ID, nil
}

func (r *UserRepo) GetUserByLogin(_ context.Context, login string) (*model.User, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	for _, u := range r.Users {
		if u.Login == login {
			c := *u
			return &c, nil
		}
	}
	return nil, model.ErrUserNotFound
}

func (r *UserRepo) GetUserByID(_ context.Context, id int) (*model.User, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	u, ok := r.Users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	c := *u
	return &c, nil
}

func (r *UserRepo) ListPlayers(_ context.Context) ([]model.User, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	var users []model.User
	for _, u := range r.Users {
		if !u.IsAdmin {
			users = append(users, *u)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *UserRepo) DeleteUser(_ context.Context, id int) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	if _, ok := r.Users[id]; !ok {
		return model.ErrUserNotFound
	}
	delete(r.Users, id)
	return nil
}

func (r *UserRepo) GetBalance(_ context.Context, id int) (decimal.Decimal, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	u, ok := r.Users[id]
	if !ok {
		return decimal.Zero, model.ErrUserNotFound
	}
	return u.Balance, nil
}

func (r *UserRepo) UpdateBalance(_ context.Context, id int, balance decimal.Decimal) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	u, ok := r.Users[id]
	if !ok {
		return model.ErrUserNotFound
	}
	u.Balance = balance
	return nil
}

type GameResultRepo struct {
	mtx     sync.Mutex
	Results []model.GameResult
}

func (r *GameResultRepo) Create(_ context.Context, res *model.GameResult) (int, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	g := *res
	g.ID = len(r.Results) + 1
	g.CreatedAt = time.Now()
	r.Results = append(r.Results, g)
	return g.ID, nil
}

func (r *GameResultRepo) ListByUser(_ context.Context, userID int, limit uint64) ([]model.GameResult, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	var out []model.GameResult
	for i := len(r.Results) - 1; i >= 0 && uint64(len(out)) < limit; i-- {
		if r.Results[i].UserID == userID {
			out = append(out, r.Results[i])
		}
	}
	return out, nil
}

type MoneyRequestRepo struct {
	mtx      sync.Mutex
	Requests []*model.MoneyRequest
}

func (r *MoneyRequestRepo) Create(_ context.Context, req *model.MoneyRequest) (int, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	c := *req
	c.ID = len(r.Requests) + 1
	c.CreatedAt = time.Now()
	r.Requests = append(r.Requests, &c)
	return c.ID, nil
}

func (r *MoneyRequestRepo) GetByID(_ context.Context, id int) (*model.MoneyRequest, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	for _, req := range r.Requests {
		if req.ID == id {
			c := *req
			return &c, nil
		}
	}
	return nil, model.ErrMoneyRequestNotFound
}

func (r *MoneyRequestRepo) ListByStatus(_ context.Context, status model.MoneyRequestStatus) ([]model.MoneyRequest, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	var out []model.MoneyRequest
	for _, req := range r.Requests {
		if req.Status == status {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (r *MoneyRequestRepo) UpdateStatus(_ context.Context, id int, status model.MoneyRequestStatus) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	for _, req := range r.Requests {
		if req.ID == id {
			req.Status = status
			return nil
		}
	}
	return model.ErrMoneyRequestNotFound
}

type AuthRepo struct {
	mtx      sync.Mutex
	Users    *UserRepo
	Sessions map[string]model.Session
}

func NewAuthRepo(users *UserRepo) *AuthRepo {
	return &AuthRepo{Users: users, Sessions: map[string]model.Session{}}
}

func (r *AuthRepo) CreateSession(_ context.Context, session *model.Session) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.Sessions[session.ID] = *session
	return nil
}

func (r *AuthRepo) GetRefreshTokenBySessionID(_ context.Context, sessionID string) (string, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	s, ok := r.Sessions[sessionID]
	if !ok || s.ExpiresAt.Before(time.Now()) {
		return "", model.ErrSessionNotFound
	}
	return s.RefreshToken, nil
}

func (r *AuthRepo) DeleteSession(_ context.Context, sessionID string) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	delete(r.Sessions, sessionID)
	return nil
}

func (r *AuthRepo) GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error) {
	r.mtx.Lock()
	s, ok := r.Sessions[sessionID]
	r.mtx.Unlock()
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return r.Users.GetUserByID(ctx, s.UserID)
}
