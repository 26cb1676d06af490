// Package wheel - колесо на 13 ячеек (0..12): выбор исхода по весам,
// расчет выплат и симуляция серий ставок.
package wheel

import (
	"errors"
	"fmt"
	"sort"

	"roulette_backend/internal/model"
)

// ErrInvalidConfiguration Неверный вектор весов
var ErrInvalidConfiguration = errors.New("invalid wheel configuration")

// Цвета не зависят от четности
var (
	redNumbers   = map[model.Outcome]struct{}{1: {}, 2: {}, 5: {}, 6: {}, 9: {}, 10: {}}
	blackNumbers = map[model.Outcome]struct{}{3: {}, 4: {}, 7: {}, 8: {}, 11: {}, 12: {}}
)

// Outcomes Все ячейки колеса по порядку
func Outcomes() []model.Outcome {
	out := make([]model.Outcome, model.OutcomeCount)
	for i := range out {
		out[i] = model.Outcome(i)
	}
	return out
}

// ColorOf Цвет ячейки: 0 - зеленый, остальные красные или черные
func ColorOf(o model.Outcome) model.Color {
	if o == 0 {
		return model.ColorGreen
	}
	if _, ok := redNumbers[o]; ok {
		return model.ColorRed
	}
	return model.ColorBlack
}

// ParityOf Четность ячейки, у нуля четности нет
func ParityOf(o model.Outcome) model.Parity {
	if o == 0 {
		return model.ParityNone
	}
	if o%2 != 0 {
		return model.ParityOdd
	}
	return model.ParityEven
}

// FairWeights Равные веса для всех ячеек
func FairWeights() model.Weights {
	w := make(model.Weights, model.OutcomeCount)
	for i := range w {
		w[i] = 1
	}
	return w
}

// DefaultTweakedWeights Ноль выпадает в три раза чаще остальных
func DefaultTweakedWeights() model.Weights {
	w := FairWeights()
	w[0] = 3
	return w
}

// ValidateWeights Проверяет длину вектора, отсутствие отрицательных весов
// и то, что хотя бы один вес больше нуля
func ValidateWeights(w model.Weights) error {
	if len(w) != model.OutcomeCount {
		return fmt.Errorf("%w: expected %d weights, got %d", ErrInvalidConfiguration, model.OutcomeCount, len(w))
	}
	total := 0
	for i, v := range w {
		if v < 0 {
			return fmt.Errorf("%w: weight %d is negative", ErrInvalidConfiguration, i)
		}
		total += v
	}
	if total == 0 {
		return fmt.Errorf("%w: all weights are zero", ErrInvalidConfiguration)
	}
	return nil
}

// cumulative Накопленные суммы весов для выбора бинарным поиском
type cumulative []int

func newCumulative(w model.Weights) (cumulative, error) {
	if err := ValidateWeights(w); err != nil {
		return nil, err
	}
	c := make(cumulative, len(w))
	sum := 0
	for i, v := range w {
		sum += v
		c[i] = sum
	}
	return c, nil
}

func (c cumulative) total() int {
	return c[len(c)-1]
}

// pick Выбирает ячейку по числу r из [0, total).
// Ячейки с нулевым весом никогда не выбираются.
func (c cumulative) pick(r int) model.Outcome {
	return model.Outcome(sort.Search(len(c), func(i int) bool { return c[i] > r }))
}
