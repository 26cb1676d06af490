package wheel

import (
	"strconv"
	"strings"

	"roulette_backend/internal/model"
)

const (
	// Ставка на число платит 12 к 1, вместе со ставкой - 13
	numberMultiplier = 13
	// Цвет и четность платят 1 к 1
	evenMoneyMultiplier = 2
)

// Payout Сколько получает игрок за ставку при выпадении outcome (ставка включена).
// Неизвестный тип ставки считается проигрышем.
// Изменение баланса (payout - amount) считает вызывающий код.
func Payout(bet model.Bet, outcome model.Outcome) float64 {
	if Wins(bet, outcome) {
		return bet.Amount * float64(Multiplier(bet.Type))
	}
	return 0
}

// Wins Выиграла ли ставка
func Wins(bet model.Bet, outcome model.Outcome) bool {
	switch bet.Type {
	case model.BetNumber:
		n, err := strconv.Atoi(strings.TrimSpace(bet.Value))
		if err != nil {
			return false
		}
		return model.Outcome(n) == outcome
	case model.BetColor:
		return model.Color(bet.Value) == ColorOf(outcome)
	case model.BetParity:
		return model.Parity(bet.Value) == ParityOf(outcome)
	default:
		return false
	}
}

// Multiplier Во сколько раз выплата больше ставки при выигрыше, 0 для неизвестного типа
func Multiplier(t model.BetType) int64 {
	switch t {
	case model.BetNumber:
		return numberMultiplier
	case model.BetColor, model.BetParity:
		return evenMoneyMultiplier
	default:
		return 0
	}
}
