package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
)

type User struct {
	ID        int
	Login     string
	Password  string
	Balance   decimal.Decimal
	IsAdmin   bool
	CreatedAt time.Time
}

type UserClaims struct {
	jwt.RegisteredClaims
	Admin bool `json:"adm,omitempty"`
}
