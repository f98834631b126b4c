package main

import (
	"context"
	"fmt"
	"os"

	"github.com/desertthunder/flick/internal/shared"
	"github.com/urfave/cli/v3"
)

// SetupConfig writes a starter config.toml for editing.
func (r *Runner) SetupConfig(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	if err := shared.CreateConfigFile(configPath); err != nil {
		return err
	}

	r.writePlainln("✓ Created %s", configPath)
	r.writePlain("Edit it to point at your backend, then run: flick setup database\n")

	return nil
}

// SetupDatabase initializes the session database and runs migrations.
func (r *Runner) SetupDatabase(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	config := r.config
	if _, err := os.Stat(configPath); err == nil {
		if config, err = shared.LoadConfig(configPath); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}

	db, err := shared.NewDatabase(config.Database.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)

	if err := shared.RunMigrations(db); err != nil {
		return err
	}

	r.writePlainln("✓ Session database ready at %s", config.Database.Path)
	return nil
}
