package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/flick/internal/favorites"
	"github.com/desertthunder/flick/internal/repositories"
	"github.com/desertthunder/flick/internal/services"
	"github.com/desertthunder/flick/internal/session"
	"github.com/desertthunder/flick/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		} else {
			logger.Warnf("failed to load config, using defaults: %v", err)
		}
	}

	if level, err := log.ParseLevel(config.Log.Level); err == nil {
		shared.SetLogLevel(logger, level)
	}

	db, err := shared.NewDatabase(config.Database.Path)
	if err != nil {
		logger.Fatalf("failed to open session database: %v", err)
	}
	defer db.Close()

	shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)

	if err := shared.RunMigrations(db); err != nil {
		logger.Fatalf("failed to migrate session database: %v", err)
	}

	ctx := context.Background()

	store := session.NewStore(repositories.NewSessionRepository(db), logger)
	if err := store.Load(ctx); err != nil {
		logger.Fatalf("failed to load session: %v", err)
	}

	var runner *Runner
	policy := session.NewPolicy(store, func() {
		if runner != nil {
			runner.writePlainln("Signed out. Run 'flick login' to start a new session.")
		}
	}, logger)

	base := &http.Client{Timeout: time.Duration(config.API.TimeoutSeconds) * time.Second}
	api := services.NewAPIService(config.API.BaseURL, policy.Client(base), logger)
	api.SetRateLimit(config.API.RequestsPerSecond, 1)

	catalog := services.NewCatalogService(api, policy)
	account := services.NewAccountService(api, policy, store, logger)
	favs := favorites.NewSynchronizer(store, policy, api, catalog, logger)

	runner = NewRunner(RunnerOpts{
		Config:  config,
		Store:   store,
		Policy:  policy,
		API:     api,
		Catalog: catalog,
		Account: account,
		Favs:    favs,
		Logger:  logger,
	})

	app := &cli.Command{
		Name:     "flick",
		Usage:    "Browse a movie catalog & manage favorites from the terminal",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(ctx, os.Args); err != nil {
		if errors.Is(err, shared.ErrNotLoggedIn) {
			os.Exit(1)
		}
		logger.Fatalf("application error: %v", err)
	}
}
