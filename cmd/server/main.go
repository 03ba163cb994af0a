package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"eatzaSearch/internal/config"
	authtransport "eatzaSearch/internal/modules/auth/interface"
	menuport "eatzaSearch/internal/modules/menus/application/port"
	menuusecase "eatzaSearch/internal/modules/menus/application/usecase"
	menuinfra "eatzaSearch/internal/modules/menus/infrastructure"
	menutransport "eatzaSearch/internal/modules/menus/interface"
	"eatzaSearch/internal/modules/restaurants/application/port"
	"eatzaSearch/internal/modules/restaurants/application/usecase"
	"eatzaSearch/internal/modules/restaurants/infrastructure"
	transport "eatzaSearch/internal/modules/restaurants/interface"
	"eatzaSearch/internal/platform/broker"
	"eatzaSearch/internal/platform/cache"
	"eatzaSearch/internal/platform/ratelimit"
	"eatzaSearch/internal/shared/auth"
	"eatzaSearch/internal/shared/logging"
)

func main() {
	// Attempt to load variables from .env so local runs honour configuration tweaks.
	if err := godotenv.Overload(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, ".env load warning: %v\n", err)
		}
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load error: %v\n", err)
		os.Exit(1)
	}

	logFile, logger, err := setupLogging(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging setup error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	slog.SetDefault(logger)
	slog.Info("logging initialized", slog.String("directory", cfg.Logging.Directory), slog.String("level", cfg.Logging.Level), slog.String("format", cfg.Logging.Format))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		slog.Error("database pool setup failed", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		slog.Error("database unreachable", slog.String("host", cfg.Database.Host), slog.Any("error", err))
		os.Exit(1)
	}
	slog.Info("database connected", slog.String("host", cfg.Database.Host), slog.String("name", cfg.Database.Name))

	var searchCache port.SearchCache
	if cfg.Redis.Enabled() {
		client := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		if err := client.Ping(ctx).Err(); err != nil {
			slog.Warn("redis unreachable, running without search cache", slog.String("addr", cfg.Redis.Addr), slog.Any("error", err))
		} else {
			searchCache = cache.NewSearchCache(client, cfg.Redis.TTL)
			defer client.Close()
			slog.Info("search cache enabled", slog.String("addr", cfg.Redis.Addr))
		}
	}

	var restaurantEvents port.ChangePublisher
	var menuEvents menuport.ChangePublisher
	if cfg.Kafka.Enabled() {
		publisher := broker.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer publisher.Close()
		restaurantEvents = publisher
		menuEvents = publisher
		slog.Info("event publishing enabled", slog.Any("brokers", cfg.Kafka.Brokers), slog.String("topic", cfg.Kafka.Topic))
	}

	// Repositories
	restaurantRepo := infrastructure.NewRestaurantPostgres(pool)
	menuRepo := menuinfra.NewMenuPostgres(pool)
	itemRepo := menuinfra.NewMenuItemPostgres(pool)

	// Use cases
	resolver := menuusecase.NewResolver(menuRepo, itemRepo, menuEvents)
	searchUC := usecase.NewSearchUseCase(restaurantRepo, searchCache)
	createUC := usecase.NewCreateRestaurantUseCase(restaurantRepo, resolver, restaurantEvents, searchCache)
	deleteUC := usecase.NewDeleteRestaurantUseCase(restaurantRepo, restaurantEvents, searchCache)

	tokens := auth.NewTokenService(auth.Config{
		Secret:   cfg.Security.JWTSecret,
		TokenTTL: cfg.Security.TokenTTL,
		Username: cfg.Security.Username,
		Password: cfg.Security.Password,
	})

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetOutput(log.Writer())
	e.Use(ratelimit.New(cfg.RateLimit.RPS, cfg.RateLimit.Burst).Middleware())

	e.POST("/authenticate", authtransport.NewLoginHandler(tokens))

	protected := e.Group("", authtransport.RequireToken(tokens))
	transport.NewHandler(searchUC, createUC, deleteUC).Register(protected)
	menutransport.NewHandler(resolver).Register(protected)

	go func() {
		if err := e.Start(":" + cfg.Server.Port); err != nil {
			slog.Error("http server stopped", slog.Any("error", err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	slog.Info("shutting down")
	e.Close()
}

func setupLogging(cfg config.LoggingConfig) (*os.File, *slog.Logger, error) {
	dir := cfg.Directory
	if dir == "" {
		dir = "./logs"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	fileName := filepath.Join(dir, time.Now().UTC().Format("2006-01-02")+".log")
	file, err := os.OpenFile(fileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	writer := io.MultiWriter(os.Stdout, file)
	logger := logging.New(writer, logging.Config{
		Level:     cfg.Level,
		Format:    cfg.Format,
		AddSource: true,
	})
	log.SetOutput(writer)
	log.SetFlags(0)
	log.SetPrefix("")

	return file, logger, nil
}
