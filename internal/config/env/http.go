package env

import (
	"fmt"
	"net"
	"os"
	"roulette_backend/internal/config"
	"time"
)

const (
	httpHostEnvName        = "HTTP_HOST"
	httpPortEnvName        = "HTTP_PORT"
	httpTimeoutEnvName     = "HTTP_TIMEOUT"
	httpIdleTimeoutEnvName = "HTTP_IDLE_TIMEOUT"

	defaultTimeout     = 4 * time.Second
	defaultIdleTimeout = 60 * time.Second
)

type httpConfig struct {
	host        string
	port        string
	timeout     time.Duration
	idleTimeout time.Duration
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	port := os.Getenv(httpPortEnvName)
	if len(port) == 0 {
		return nil, fmt.Errorf("http port not found")
	}

	timeout, err := durationOrDefault(httpTimeoutEnvName, defaultTimeout)
	if err != nil {
		return nil, err
	}
	idleTimeout, err := durationOrDefault(httpIdleTimeoutEnvName, defaultIdleTimeout)
	if err != nil {
		return nil, err
	}

	return &httpConfig{
		host:        os.Getenv(httpHostEnvName),
		port:        port,
		timeout:     timeout,
		idleTimeout: idleTimeout,
	}, nil
}

func (cfg *httpConfig) Address() string {
	return net.JoinHostPort(cfg.host, cfg.port)
}

func (cfg *httpConfig) Timeout() time.Duration {
	return cfg.timeout
}

func (cfg *httpConfig) IdleTimeout() time.Duration {
	return cfg.idleTimeout
}

func durationOrDefault(name string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(name)
	if len(v) == 0 {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	return d, nil
}
