package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"arihant/internal/config"
	"arihant/internal/http/handlers"
	applog "arihant/internal/log"
	"arihant/internal/repos"
	"arihant/internal/services"
)

func main() {
	// arihant hash-admin-key <secret> prints a value for ADMIN_API_KEY_BCRYPT.
	if len(os.Args) == 3 && os.Args[1] == "hash-admin-key" {
		h, err := services.HashAdminKey(os.Args[2])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(h)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	logger, err := applog.Init(cfg.LogMode, cfg.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	applog.Info(nil, "config.loaded", map[string]any{
		"port":           cfg.Port,
		"database_url":   cfg.DatabaseURL != "",
		"database_name":  cfg.DatabaseName,
		"db_dsn":         cfg.DBDSN,
		"list_limit_max": cfg.MaxListLimit,
		"rate_limit":     cfg.RateLimit,
		"log_file":       cfg.LogFile,
	})
	if cfg.AdminGateOpen() {
		applog.Security(nil, "admin.gate.open", map[string]any{
			"hint": "set ADMIN_API_KEY or ADMIN_API_KEY_BCRYPT; ADMIN_REQUIRE_KEY=true refuses to start without one",
		})
	}

	store := openStore(cfg)
	if store != nil {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = store.Close(ctx)
		}()
		if cfg.SeedDemo {
			n, err := repos.SeedDemo(context.Background(), store.Products())
			if err != nil {
				applog.Error(nil, "seed.fail", err, nil)
			} else if n > 0 {
				applog.Info(nil, "seed.done", map[string]any{"products": n})
			}
		}
	}

	deps := handlers.NewDeps(store, cfg)
	app := handlers.NewApp(cfg, deps)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		applog.Info(nil, "server.shutdown", nil)
		_ = app.ShutdownWithTimeout(10 * time.Second)
	}()

	if err := app.Listen(":" + cfg.Port); err != nil {
		applog.Error(nil, "server.listen", err, nil)
		os.Exit(1)
	}
}

// openStore picks Mongo when DATABASE_URL is set, else the sqlite file. A
// store that cannot be opened is logged and left nil so the API still
// starts and reports "Database not configured".
func openStore(cfg config.Config) repos.Store {
	if cfg.DatabaseURL != "" {
		s, err := repos.OpenMongo(context.Background(), cfg.DatabaseURL, cfg.DatabaseName)
		if err != nil {
			applog.Error(nil, "store.mongo.open", err, nil)
			return nil
		}
		applog.Info(nil, "store.mongo.open", map[string]any{"database": s.Name()})
		return s
	}
	if cfg.DBDSN != "" {
		s, err := repos.OpenDB(cfg.DBDSN)
		if err != nil {
			applog.Error(nil, "store.sqlite.open", err, map[string]any{"dsn": cfg.DBDSN})
			return nil
		}
		applog.Info(nil, "store.sqlite.open", map[string]any{"dsn": cfg.DBDSN})
		return s
	}
	applog.Security(nil, "store.none", nil)
	return nil
}
