package model

import "github.com/shopspring/decimal"

// MoneyScale Деньги хранятся в NUMERIC(18,2)
const MoneyScale = 2

// IsWholeCents Сумма без долей копейки
func IsWholeCents(d decimal.Decimal) bool {
	return d.Equal(d.Round(MoneyScale))
}
