package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OutcomeCount Количество ячеек колеса (0..12)
const OutcomeCount = 13

// Outcome Число, выпавшее на колесе
type Outcome int

type Color string

const (
	ColorGreen Color = "green"
	ColorRed   Color = "red"
	ColorBlack Color = "black"
)

type Parity string

const (
	ParityNone Parity = "none"
	ParityOdd  Parity = "odd"
	ParityEven Parity = "even"
)

type BetType string

const (
	BetNumber BetType = "number"
	BetColor  BetType = "color"
	BetParity BetType = "parity"
)

// Weights Относительные веса выпадения для каждой ячейки колеса
type Weights []int

// Bet Ставка на один спин
type Bet struct {
	Type   BetType
	Value  string
	Amount float64
}

// RouletteSettings Настройки колеса, которые меняет администратор
type RouletteSettings struct {
	TweakedWeights Weights
	UseTweaked     bool
}

// SimulationParams Параметры прогона симуляции
type SimulationParams struct {
	Runs       int
	Bet        Bet
	UseTweaked bool
	Weights    Weights // nil - используются сохраненные веса
	Seed       *int64  // nil - результат меняется от запуска к запуску
}

// SimulationResult Агрегированная статистика по прогону симуляции
type SimulationResult struct {
	Runs        int
	Bet         Bet
	TotalBet    float64
	TotalPayout float64

	HouseProfit      float64
	HouseEdgePercent float64

	Wins     int
	Losses   int
	WinRate  float64
	LossRate float64

	NetProfit           float64
	ROI                 float64
	ProfitPerBet        float64
	ExpectedValuePerBet float64

	CumulativeProfits   []float64
	OutcomeDistribution map[Outcome]int
}

// SimulationComparison Результаты честного и подкрученного прогона
type SimulationComparison struct {
	Fair    *SimulationResult
	Tweaked *SimulationResult
}

type SpinRequest struct {
	Bet Bet
}

type SpinResult struct {
	Outcome Outcome
	Color   Color
	Parity  Parity
	Payout  decimal.Decimal
	Balance decimal.Decimal
	Tweaked bool
}

// GameResult Запись о сыгранном спине
type GameResult struct {
	ID            int
	UserID        int
	BetType       BetType
	BetValue      string
	BetAmount     decimal.Decimal
	OutcomeNumber Outcome
	OutcomeColor  Color
	Payout        decimal.Decimal
	IsTweaked     bool
	CreatedAt     time.Time
}
