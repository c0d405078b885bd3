package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/redmonkez12/go-auth-api/docs" // Swagger docs (generated)
	"github.com/redmonkez12/go-auth-api/internal/auth"
	"github.com/redmonkez12/go-auth-api/internal/config"
	"github.com/redmonkez12/go-auth-api/internal/database"
	httpServer "github.com/redmonkez12/go-auth-api/internal/http"
	"github.com/redmonkez12/go-auth-api/internal/logging"
	"github.com/redmonkez12/go-auth-api/internal/user"
)

// @title           Go Auth API
// @version         1.0
// @description     Email and password authentication with short-lived bearer tokens.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.

func main() {
	if err := run(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.NewLoggerWithLevel(cfg.Server.IsDevelopment(), slog.Level(cfg.LogLevel))
	logger.Info("starting application",
		"env", cfg.Server.Env,
		"port", cfg.Server.Port,
		"db_driver", cfg.Database.Driver,
		"token_format", cfg.Auth.TokenFormat,
	)

	if cfg.Auth.JWTSecret == "" {
		logger.Warn("JWT_SECRET is not set; signup and signin will fail until it is configured")
	}

	ctx := context.Background()

	users, closeStore, err := initUserStore(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize user store: %w", err)
	}
	defer closeStore()

	tokenService, err := auth.NewTokenService(cfg.Auth)
	if err != nil {
		return fmt.Errorf("failed to initialize token service: %w", err)
	}

	hasher := auth.NewArgon2Hasher(
		auth.WithArgon2Time(cfg.Auth.Argon2.Time),
		auth.WithArgon2Memory(cfg.Auth.Argon2.Memory),
		auth.WithArgon2Threads(cfg.Auth.Argon2.Threads),
	)

	authService := auth.NewService(users, hasher, tokenService, logger, cfg.Auth.AccessTokenDuration)
	authHandler := auth.NewHandler(authService)
	authMiddleware := auth.NewMiddleware(tokenService, users)
	userHandler := user.NewHandler()

	router := httpServer.NewRouter(cfg, authHandler, userHandler, authMiddleware, logger)

	server := httpServer.NewServer(
		":"+cfg.Server.Port,
		router,
		cfg.Server.ReadTimeout,
		cfg.Server.WriteTimeout,
		logger,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.Start()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		logger.Info("received signal", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// initUserStore returns the configured user store and a function releasing it.
func initUserStore(ctx context.Context, cfg config.DatabaseConfig, logger *logging.Logger) (auth.UserStore, func(), error) {
	if cfg.Driver == config.DriverMemory {
		logger.Warn("using in-memory user store; accounts are lost on restart")
		return user.NewMemoryRepository(), func() {}, nil
	}

	sqlDB, err := database.Open(ctx, cfg.ConnectionString())
	if err != nil {
		return nil, nil, err
	}

	if cfg.AutoMigrate {
		if err := database.Migrate(ctx, sqlDB); err != nil {
			sqlDB.Close()
			return nil, nil, err
		}
		logger.Info("database migrations applied")
	}

	db := database.NewBunDB(sqlDB)
	return user.NewRepository(db), func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "error", err.Error())
		}
	}, nil
}
