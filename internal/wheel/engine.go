package wheel

import (
	"math/rand"
	"sync"
	"time"

	"roulette_backend/internal/model"
)

// Engine Колесо с настройками администратора.
// Настройки защищены RWMutex: администратор пишет, игроки читают.
type Engine struct {
	mtx        sync.RWMutex
	tweaked    model.Weights
	useTweaked bool

	rndMtx sync.Mutex
	rnd    *rand.Rand
}

type Option func(*Engine)

// WithSeed Фиксирует общий источник случайных чисел (для тестов)
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rnd = rand.New(rand.NewSource(seed))
	}
}

// WithTweakedWeights Начальные подкрученные веса. Неверный вектор игнорируется.
func WithTweakedWeights(w model.Weights) Option {
	return func(e *Engine) {
		if ValidateWeights(w) == nil {
			e.tweaked = append(model.Weights(nil), w...)
		}
	}
}

func WithUseTweaked(on bool) Option {
	return func(e *Engine) {
		e.useTweaked = on
	}
}

// NewEngine Создает колесо с весами по умолчанию ([3,1,...,1]) в честном режиме
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		tweaked: DefaultTweakedWeights(),
		rnd:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Settings Копия текущих настроек
func (e *Engine) Settings() model.RouletteSettings {
	e.mtx.RLock()
	defer e.mtx.RUnlock()
	return model.RouletteSettings{
		TweakedWeights: append(model.Weights(nil), e.tweaked...),
		UseTweaked:     e.useTweaked,
	}
}

// SetTweakedWeights Сохраняет новые подкрученные веса после проверки
func (e *Engine) SetTweakedWeights(w model.Weights) error {
	if err := ValidateWeights(w); err != nil {
		return err
	}
	e.mtx.Lock()
	defer e.mtx.Unlock()
	e.tweaked = append(model.Weights(nil), w...)
	return nil
}

func (e *Engine) SetUseTweaked(on bool) {
	e.mtx.Lock()
	defer e.mtx.Unlock()
	e.useTweaked = on
}

// Apply Меняет веса и режим одной записью, спин видит либо старые настройки, либо новые.
// При w == nil сохраненные веса не меняются. Неверный вектор отклоняется целиком.
func (e *Engine) Apply(w model.Weights, useTweaked bool) error {
	if w != nil {
		if err := ValidateWeights(w); err != nil {
			return err
		}
		w = append(model.Weights(nil), w...)
	}
	e.mtx.Lock()
	defer e.mtx.Unlock()
	if w != nil {
		e.tweaked = w
	}
	e.useTweaked = useTweaked
	return nil
}

// Reset Сбрасывает колесо: равные веса, честный режим
func (e *Engine) Reset() {
	e.mtx.Lock()
	defer e.mtx.Unlock()
	e.tweaked = FairWeights()
	e.useTweaked = false
}

// Spin Один спин колеса.
// В честном режиме всегда используются равные веса, override игнорируется.
// В подкрученном - override, если он передан, иначе сохраненные веса.
func (e *Engine) Spin(useTweaked bool, override model.Weights) (model.Outcome, error) {
	c, err := e.cumulativeFor(useTweaked, override)
	if err != nil {
		return 0, err
	}

	e.rndMtx.Lock()
	r := e.rnd.Intn(c.total())
	e.rndMtx.Unlock()

	return c.pick(r), nil
}

func (e *Engine) cumulativeFor(useTweaked bool, override model.Weights) (cumulative, error) {
	if !useTweaked {
		return newCumulative(FairWeights())
	}
	if override != nil {
		return newCumulative(override)
	}
	e.mtx.RLock()
	defer e.mtx.RUnlock()
	return newCumulative(e.tweaked)
}

// nextSeed Сид для симуляции без явного сида
func (e *Engine) nextSeed() int64 {
	e.rndMtx.Lock()
	defer e.rndMtx.Unlock()
	return e.rnd.Int63()
}
