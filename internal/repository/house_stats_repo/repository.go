package house_stats_repo

import (
	"roulette_backend/internal/model"
	"sync"
)

// defaultWindowSize Размер окна последних спинов для расчета RTP
const defaultWindowSize = 500

// spinRecord Результат спина для окна
type spinRecord struct {
	bet    float64
	payout float64
}

// StatsRepo Живая статистика казино по реальным спинам игроков
type StatsRepo struct {
	mtx    sync.RWMutex
	state  model.HouseState
	window []spinRecord
}

// NewHouseStatsRepository Конструктор с пустым состоянием
func NewHouseStatsRepository() *StatsRepo {
	return &StatsRepo{
		state: model.HouseState{WindowSize: defaultWindowSize},
	}
}

// HouseState Возвращает копию текущего состояния
func (r *StatsRepo) HouseState() model.HouseState {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return r.state
}

// UpdateState Обновление статистики после спина
func (r *StatsRepo) UpdateState(bet, payout float64) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.TotalSpins++
	r.state.TotalBet += bet
	r.state.TotalPayout += payout
	r.state.HouseProfit = r.state.TotalBet - r.state.TotalPayout
	if r.state.TotalBet > 0 {
		r.state.CurrentRTP = r.state.TotalPayout / r.state.TotalBet * 100
		r.state.HouseEdgePercent = r.state.HouseProfit / r.state.TotalBet * 100
	}

	// Добавляем спин в окно и поддерживаем его размер
	r.window = append(r.window, spinRecord{bet: bet, payout: payout})
	if len(r.window) > r.state.WindowSize {
		r.window = r.window[1:]
	}

	var windowBet, windowPayout float64
	for _, s := range r.window {
		windowBet += s.bet
		windowPayout += s.payout
	}
	if windowBet > 0 {
		r.state.WindowRTP = windowPayout / windowBet * 100
	} else {
		r.state.WindowRTP = 0
	}
}

// Reset Обнуляет статистику (после сброса игры администратором)
func (r *StatsRepo) Reset() {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.state = model.HouseState{WindowSize: r.state.WindowSize}
	r.window = nil
}
