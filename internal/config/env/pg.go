package env

import (
	"errors"
	"fmt"
	"os"
	"roulette_backend/internal/config"
	"strconv"
)

const (
	pgDSNEnvName      = "PG_DSN"
	pgMaxConnsEnvName = "PG_MAX_CONNS"
)

type pgConfig struct {
	dsn      string
	maxConns int32
}

func NewPGConfig() (config.PGConfig, error) {
	dsn := os.Getenv(pgDSNEnvName)
	if len(dsn) == 0 {
		return nil, errors.New("pg dsn not found")
	}

	cfg := &pgConfig{dsn: dsn}

	// 0 - размер пула по умолчанию из pgxpool
	if v := os.Getenv(pgMaxConnsEnvName); len(v) != 0 {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid %s: %q", pgMaxConnsEnvName, v)
		}
		cfg.maxConns = int32(n)
	}

	return cfg, nil
}

func (cfg *pgConfig) DSN() string {
	return cfg.dsn
}

func (cfg *pgConfig) MaxConns() int32 {
	return cfg.maxConns
}
