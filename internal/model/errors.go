package model

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrUserExists           = errors.New("user already exists")
	ErrSessionNotFound      = errors.New("session not found")
	ErrMoneyRequestNotFound = errors.New("money request not found")

	ErrInvalidCredentials  = errors.New("invalid login or password")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrUnauthorized        = errors.New("user id not found in context")
	ErrForbidden           = errors.New("admin rights required")

	ErrInvalidBet          = errors.New("bet must be a positive amount in whole cents")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidAmount       = errors.New("amount must be positive, in whole cents")
	ErrInvalidBalance      = errors.New("balance must be non-negative, in whole cents")
	ErrInvalidAction       = errors.New("invalid action")
	ErrRequestHandled      = errors.New("money request already handled")
	ErrCannotDeleteUser    = errors.New("cannot delete this user")
	ErrTooManyRuns         = errors.New("too many simulation runs")
)
