package config

import (
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type RouletteConfig interface {
	TweakedWeights() []int
	UseTweaked() bool
	StartBalance() float64
	DefaultSimulationRuns() int
	MaxSimulationRuns() int
}

type HTTPConfig interface {
	Address() string
	Timeout() time.Duration
	IdleTimeout() time.Duration
}

type PGConfig interface {
	DSN() string
	MaxConns() int32
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}

type LoggerConfig interface {
	Env() string
}

type AdminConfig interface {
	Login() string
	Password() string
}
