package env

import (
	"errors"
	"os"
	"roulette_backend/internal/config"
)

const (
	adminLoginEnvName    = "ADMIN_LOGIN"
	adminPasswordEnvName = "ADMIN_PASSWORD"

	defaultAdminLogin = "admin"
)

type adminConfig struct {
	login    string
	password string
}

// NewAdminConfig Учетная запись администратора, которая создается при старте
func NewAdminConfig() (config.AdminConfig, error) {
	login := os.Getenv(adminLoginEnvName)
	if len(login) == 0 {
		login = defaultAdminLogin
	}

	password := os.Getenv(adminPasswordEnvName)
	if len(password) == 0 {
		return nil, errors.New("admin password not found")
	}

	return &adminConfig{
		login:    login,
		password: password,
	}, nil
}

func (cfg *adminConfig) Login() string {
	return cfg.login
}

func (cfg *adminConfig) Password() string {
	return cfg.password
}
