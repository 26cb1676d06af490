package env

import (
	"fmt"
	"os"
	"roulette_backend/internal/config"
	"roulette_backend/internal/model"
	"roulette_backend/internal/wheel"

	"gopkg.in/yaml.v3"
)

const (
	rouletteConfigEnvName = "ROULETTE_CONFIG"
	defaultRouletteConfig = "config.yaml"

	defaultStartBalance = 1000
	defaultRuns         = 1000
	defaultMaxRuns      = 1_000_000
)

type rouletteFile struct {
	Roulette struct {
		TweakedWeights []int   `yaml:"tweaked_weights"`
		UseTweaked     bool    `yaml:"use_tweaked"`
		StartBalance   float64 `yaml:"start_balance"`
		Simulation     struct {
			DefaultRuns int `yaml:"default_runs"`
			MaxRuns     int `yaml:"max_runs"`
		} `yaml:"simulation"`
	} `yaml:"roulette"`
}

type rouletteConfig struct {
	tweakedWeights []int
	useTweaked     bool
	startBalance   float64
	defaultRuns    int
	maxRuns        int
}

// RouletteConfigPath Путь к yaml с настройками колеса
func RouletteConfigPath() string {
	if p := os.Getenv(rouletteConfigEnvName); len(p) != 0 {
		return p
	}
	return defaultRouletteConfig
}

// NewRouletteConfigFromYAML Настройки колеса из yaml файла
func NewRouletteConfigFromYAML(path string) (config.RouletteConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roulette config: %w", err)
	}

	var f rouletteFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse roulette config: %w", err)
	}
	rc := f.Roulette

	if err := wheel.ValidateWeights(model.Weights(rc.TweakedWeights)); err != nil {
		return nil, fmt.Errorf("tweaked_weights: %w", err)
	}

	cfg := &rouletteConfig{
		tweakedWeights: rc.TweakedWeights,
		useTweaked:     rc.UseTweaked,
		startBalance:   rc.StartBalance,
		defaultRuns:    rc.Simulation.DefaultRuns,
		maxRuns:        rc.Simulation.MaxRuns,
	}
	if cfg.startBalance <= 0 {
		cfg.startBalance = defaultStartBalance
	}
	if cfg.defaultRuns <= 0 {
		cfg.defaultRuns = defaultRuns
	}
	if cfg.maxRuns <= 0 {
		cfg.maxRuns = defaultMaxRuns
	}
	if cfg.defaultRuns > cfg.maxRuns {
		return nil, fmt.Errorf("default_runs %d exceeds max_runs %d", cfg.defaultRuns, cfg.maxRuns)
	}

	return cfg, nil
}

func (cfg *rouletteConfig) TweakedWeights() []int {
	return append([]int(nil), cfg.tweakedWeights...)
}

func (cfg *rouletteConfig) UseTweaked() bool {
	return cfg.useTweaked
}

func (cfg *rouletteConfig) StartBalance() float64 {
	return cfg.startBalance
}

func (cfg *rouletteConfig) DefaultSimulationRuns() int {
	return cfg.defaultRuns
}

func (cfg *rouletteConfig) MaxSimulationRuns() int {
	return cfg.maxRuns
}
