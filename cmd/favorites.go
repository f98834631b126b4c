package main

import (
	"context"
	"fmt"
	"os"

	"github.com/desertthunder/flick/internal/formatter"
	"github.com/desertthunder/flick/internal/shared"
	"github.com/urfave/cli/v3"
)

// FavoritesList prints the favorites list cross-referenced with the catalog.
func (r *Runner) FavoritesList(ctx context.Context, cmd *cli.Command) error {
	format := cmd.String("format")
	outputFile := cmd.String("output")

	movies, err := r.favs.List(ctx)
	if err != nil {
		return err
	}

	if len(movies) == 0 {
		r.writePlainln("No favorites yet. Use: flick favorites add <title>")
		return nil
	}

	var data []byte
	switch format {
	case "json":
		return r.writeJSON(movies, true)
	case "csv":
		if data, err = formatter.ExportToCSV(movies); err != nil {
			return err
		}
	case "markdown", "md":
		if data, err = formatter.ExportToMarkdown("Favorite Movies", movies); err != nil {
			return err
		}
	case "text":
		if data, err = formatter.ExportToText("Favorite Movies", movies); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: unknown format %q", shared.ErrInvalidArgument, format)
	}

	if outputFile != "" {
		if err := os.WriteFile(outputFile, data, 0644); err != nil {
			return fmt.Errorf("failed to write file: %w", err)
		}
		r.writePlainln("✓ Favorites written to %s", outputFile)
		return nil
	}

	return r.writePlain("%s", data)
}

// FavoritesAdd marks a movie as a favorite.
func (r *Runner) FavoritesAdd(ctx context.Context, cmd *cli.Command) error {
	title := cmd.StringArg("title")
	if title == "" {
		return fmt.Errorf("%w: title", shared.ErrMissingArgument)
	}

	if err := r.favs.Add(ctx, title); err != nil {
		return err
	}

	r.writePlainln("✓ Added %q to favorites", title)
	return nil
}

// FavoritesRemove unmarks a movie as a favorite.
func (r *Runner) FavoritesRemove(ctx context.Context, cmd *cli.Command) error {
	title := cmd.StringArg("title")
	if title == "" {
		return fmt.Errorf("%w: title", shared.ErrMissingArgument)
	}

	if err := r.favs.Remove(ctx, title); err != nil {
		return err
	}

	r.writePlainln("✓ Removed %q from favorites", title)
	return nil
}
