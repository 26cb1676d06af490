package app

import (
	"context"
	adminAPI "roulette_backend/internal/api/admin"
	authAPI "roulette_backend/internal/api/auth"
	rouletteAPI "roulette_backend/internal/api/roulette"
	walletAPI "roulette_backend/internal/api/wallet"
	"roulette_backend/internal/config"
	"roulette_backend/internal/config/env"
	"roulette_backend/internal/metrics"
	"roulette_backend/internal/middleware"
	"roulette_backend/internal/model"
	"roulette_backend/internal/repository"
	"roulette_backend/internal/repository/auth_repo"
	"roulette_backend/internal/repository/game_result_repo"
	"roulette_backend/internal/repository/house_stats_repo"
	"roulette_backend/internal/repository/money_request_repo"
	"roulette_backend/internal/repository/user_repo"
	"roulette_backend/internal/service"
	"roulette_backend/internal/service/admin"
	"roulette_backend/internal/service/auth"
	"roulette_backend/internal/service/payment"
	"roulette_backend/internal/service/roulette"
	"roulette_backend/internal/wheel"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"
)

type ServiceProvider struct {
	log *slog.Logger

	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Auth bits
	jwtCfg   config.JWTConfig
	adminCfg config.AdminConfig
	authRepo repository.AuthRepository
	authServ service.AuthService
	authHand *authAPI.Handler

	// User bits
	userRepo    repository.UserRepository
	paymentServ service.PaymentService
	walletHand  *walletAPI.Handler

	// Roulette bits
	rouletteCfg    config.RouletteConfig
	engine         *wheel.Engine
	gameResultRepo repository.GameResultRepository
	houseStatsRepo repository.HouseStatsRepository
	rouletteServ   service.RouletteService
	rouletteHand   *rouletteAPI.Handler

	// Admin bits
	moneyRequestRepo repository.MoneyRequestRepository
	adminServ        service.AdminService
	adminHand        *adminAPI.Handler

	metrics *metrics.Metrics

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider(log *slog.Logger) *ServiceProvider {
	return &ServiceProvider{log: log}
}

// Close Закрывает пул соединений с БД
func (sp *ServiceProvider) Close() {
	if sp.dbClient != nil {
		sp.dbClient.Close()
	}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		poolCfg, err := pgxpool.ParseConfig(sp.PgConfig().DSN())
		if err != nil {
			panic("failed to parse db dsn: " + err.Error())
		}
		if n := sp.PgConfig().MaxConns(); n > 0 {
			poolCfg.MaxConns = n
		}

		dbc, err := pgxpool.NewWithConfig(ctx, poolCfg)
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) AdminCfg() config.AdminConfig {
	if sp.adminCfg == nil {
		cfg, err := env.NewAdminConfig()
		if err != nil {
			panic("failed to get admin config: " + err.Error())
		}
		sp.adminCfg = cfg
	}
	return sp.adminCfg
}

func (sp *ServiceProvider) AuthRepo(ctx context.Context) repository.AuthRepository {
	if sp.authRepo == nil {
		sp.authRepo = auth_repo.NewAuthRepository(sp.DBClient(ctx))
	}
	return sp.authRepo
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx))
	}
	return sp.userRepo
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewAuthService(
			sp.log,
			sp.TXManager(ctx),
			sp.UserRepo(ctx),
			sp.AuthRepo(ctx),
			sp.JWTCfg(),
			sp.RouletteCfg().StartBalance(),
		)
	}
	return sp.authServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{
			Log:             sp.log,
			Serv:            sp.AuthService(ctx),
			RefreshDuration: sp.JWTCfg().RefreshTokenDuration(),
		})
	}
	return sp.authHand
}

func (sp *ServiceProvider) PaymentService(ctx context.Context) service.PaymentService {
	if sp.paymentServ == nil {
		sp.paymentServ = payment.NewPaymentService(sp.log, sp.UserRepo(ctx), sp.MoneyRequestRepo(ctx))
	}
	return sp.paymentServ
}

func (sp *ServiceProvider) WalletHandler(ctx context.Context) *walletAPI.Handler {
	if sp.walletHand == nil {
		sp.walletHand = walletAPI.NewHandler(walletAPI.HandlerDeps{
			Log:  sp.log,
			Serv: sp.PaymentService(ctx),
		})
	}
	return sp.walletHand
}

func (sp *ServiceProvider) RouletteCfg() config.RouletteConfig {
	if sp.rouletteCfg == nil {
		cfg, err := env.NewRouletteConfigFromYAML(env.RouletteConfigPath())
		if err != nil {
			panic("failed to get roulette config: " + err.Error())
		}
		sp.rouletteCfg = cfg
	}
	return sp.rouletteCfg
}

// Engine Колесо одно на весь процесс, его настройки общие для всех игроков
func (sp *ServiceProvider) Engine() *wheel.Engine {
	if sp.engine == nil {
		cfg := sp.RouletteCfg()
		sp.engine = wheel.NewEngine(
			wheel.WithTweakedWeights(model.Weights(cfg.TweakedWeights())),
			wheel.WithUseTweaked(cfg.UseTweaked()),
		)
	}
	return sp.engine
}

func (sp *ServiceProvider) GameResultRepo(ctx context.Context) repository.GameResultRepository {
	if sp.gameResultRepo == nil {
		sp.gameResultRepo = game_result_repo.NewGameResultRepository(sp.DBClient(ctx))
	}
	return sp.gameResultRepo
}

func (sp *ServiceProvider) HouseStatsRepo() repository.HouseStatsRepository {
	if sp.houseStatsRepo == nil {
		sp.houseStatsRepo = house_stats_repo.NewHouseStatsRepository()
	}
	return sp.houseStatsRepo
}

func (sp *ServiceProvider) RouletteService(ctx context.Context) service.RouletteService {
	if sp.rouletteServ == nil {
		sp.rouletteServ = roulette.NewRouletteService(
			sp.log,
			sp.Engine(),
			sp.UserRepo(ctx),
			sp.GameResultRepo(ctx),
			sp.HouseStatsRepo(),
			sp.TXManager(ctx),
			sp.Metrics(),
		)
	}
	return sp.rouletteServ
}

func (sp *ServiceProvider) RouletteHandler(ctx context.Context) *rouletteAPI.Handler {
	if sp.rouletteHand == nil {
		sp.rouletteHand = rouletteAPI.NewHandler(rouletteAPI.HandlerDeps{
			Log:  sp.log,
			Serv: sp.RouletteService(ctx),
		})
	}
	return sp.rouletteHand
}

func (sp *ServiceProvider) MoneyRequestRepo(ctx context.Context) repository.MoneyRequestRepository {
	if sp.moneyRequestRepo == nil {
		sp.moneyRequestRepo = money_request_repo.NewMoneyRequestRepository(sp.DBClient(ctx))
	}
	return sp.moneyRequestRepo
}

func (sp *ServiceProvider) AdminService(ctx context.Context) service.AdminService {
	if sp.adminServ == nil {
		cfg := sp.RouletteCfg()
		sp.adminServ = admin.NewAdminService(
			sp.log,
			sp.Engine(),
			sp.UserRepo(ctx),
			sp.MoneyRequestRepo(ctx),
			sp.HouseStatsRepo(),
			sp.TXManager(ctx),
			cfg.DefaultSimulationRuns(),
			cfg.MaxSimulationRuns(),
		)
	}
	return sp.adminServ
}

func (sp *ServiceProvider) AdminHandler(ctx context.Context) *adminAPI.Handler {
	if sp.adminHand == nil {
		sp.adminHand = adminAPI.NewHandler(adminAPI.HandlerDeps{
			Log:  sp.log,
			Serv: sp.AdminService(ctx),
		})
	}
	return sp.adminHand
}

func (sp *ServiceProvider) Metrics() *metrics.Metrics {
	if sp.metrics == nil {
		m := metrics.New()
		m.WatchHouse(sp.HouseStatsRepo().HouseState)
		sp.metrics = m
	}
	return sp.metrics
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(chimw.RequestID)
		r.Use(chimw.RealIP)
		r.Use(middleware.Logger(sp.log))
		r.Use(sp.Metrics().Middleware)
		r.Use(chimw.Recoverer)

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		r.Handle("/metrics", sp.Metrics().Handler())

		// Auth endpoints
		authHandler := sp.AuthHandler(ctx)
		r.Route("/auth", func(rr chi.Router) {
			rr.Post("/register", authHandler.Register)
			rr.Post("/login", authHandler.Login)
			rr.Post("/admin-login", authHandler.AdminLogin)
			rr.Post("/refresh", authHandler.Refresh)
			rr.Post("/logout", authHandler.Logout)
		})

		secret := sp.JWTCfg().AccessTokenSecretKey()

		// Player endpoints
		rouletteHandler := sp.RouletteHandler(ctx)
		walletHandler := sp.WalletHandler(ctx)
		r.Group(func(rr chi.Router) {
			rr.Use(middleware.Auth(secret))

			rr.Post("/roulette/spin", rouletteHandler.Spin)
			rr.Get("/roulette/history", rouletteHandler.History)

			rr.Get("/wallet/balance", walletHandler.Balance)
			rr.Post("/wallet/request-money", walletHandler.RequestMoney)
		})

		// Admin endpoints
		adminHandler := sp.AdminHandler(ctx)
		r.Route("/admin", func(rr chi.Router) {
			rr.Use(middleware.Auth(secret))
			rr.Use(middleware.RequireAdmin)

			rr.Get("/dashboard", adminHandler.Dashboard)
			rr.Post("/settings", adminHandler.UpdateSettings)
			rr.Post("/reset", adminHandler.Reset)
			rr.Post("/simulate", adminHandler.Simulate)
			rr.Post("/balance", adminHandler.UpdateBalance)
			rr.Post("/users/{id}/delete", adminHandler.DeleteUser)
			rr.Get("/requests", adminHandler.Requests)
			rr.Post("/requests/{id}/{action}", adminHandler.HandleRequest)
		})

		sp.router = r
	}

	return sp.router
}
