package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/backend"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/config"
	apphttp "github.com/Ainkaran01/Thusha-Shop-sub001/internal/http"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/http/handlers"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/http/middleware"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/http/sessioncookie"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/cart"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/catalog"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/checkout"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/orders"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/sessions"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	if err := run(logger); err != nil {
		logger.Error("server_exit", "err", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cfg.JWTSecret == "" {
		logger.Warn("jwt_secret_unset", "msg", "access tokens are decoded without signature checks; routes without a backend call are closed to staff")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	api := backend.New(cfg.BackendURL, cfg.BackendTimeout, logger)

	cache, closeCache, err := catalogCache(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeCache()

	var repo cart.Repo
	if cfg.DBDSN != "" {
		db, err := gorm.Open(mysql.Open(cfg.DBDSN), &gorm.Config{})
		if err != nil {
			return err
		}
		repo = cart.NewGormRepo(db)
		logger.Info("cart_persistence", "driver", "mysql")
	}

	pricing := checkout.Calculator{
		FreeShippingThreshold: cfg.FreeShippingThreshold,
		ShippingFee:           cfg.ShippingFee,
		TaxRate:               cfg.TaxRate,
	}

	reg := sessions.NewRegistry(sessions.Options{
		Repo: repo,
		Idle: cfg.SessionIdle,
		FlowOptions: []checkout.Option{
			checkout.WithCalculator(pricing),
			checkout.WithOrderCreator(api),
		},
		Staff:  api,
		Logger: logger,
	})
	go reg.Run(ctx, time.Minute)

	r := apphttp.NewRouter(logger, apphttp.Deps{
		Catalog:   catalog.NewService(api, cache, logger),
		History:   orders.NewHistory(api, api, logger),
		Profiles:  api,
		Sessions:  reg,
		Cookies:   sessioncookie.New([]byte(cfg.SessionSecret), sessioncookie.DefaultName, cfg.CookieSecure, cfg.SessionIdle),
		Presenter: handlers.NewPresenter(cfg.Currency, pricing),
		Auth:      middleware.AuthCfg{Secret: []byte(cfg.JWTSecret)},
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("server_start", "addr", cfg.HTTPAddr, "backend", cfg.BackendURL)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	logger.Info("server_shutdown")
	return srv.Shutdown(shutdownCtx)
}

func catalogCache(ctx context.Context, cfg config.Config) (catalog.Cache, func(), error) {
	if cfg.CatalogCache != "redis" {
		return catalog.NewMemoryCache(cfg.CatalogTTL), func() {}, nil
	}
	rdb, err := catalog.ConnectRedis(ctx, cfg.RedisURL)
	if err != nil {
		return nil, nil, err
	}
	return catalog.NewRedisCache(rdb, cfg.CatalogTTL), func() { _ = rdb.Close() }, nil
}
