package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type MoneyRequestStatus string

const (
	MoneyRequestPending  MoneyRequestStatus = "pending"
	MoneyRequestApproved MoneyRequestStatus = "approved"
	MoneyRequestRejected MoneyRequestStatus = "rejected"
)

// MoneyRequest Заявка игрока на пополнение баланса
type MoneyRequest struct {
	ID        int
	UserID    int
	Login     string
	Amount    decimal.Decimal
	Status    MoneyRequestStatus
	CreatedAt time.Time
}

// RequestAction Решение администратора по заявке
type RequestAction string

const (
	ActionApprove RequestAction = "approve"
	ActionReject  RequestAction = "reject"
)
