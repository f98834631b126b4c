package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/flick/internal/shared"
	"github.com/urfave/cli/v3"
)

// MoviesList prints the full catalog.
func (r *Runner) MoviesList(ctx context.Context, cmd *cli.Command) error {
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	r.logger.Debug("listing catalog")

	movies, err := r.catalog.ListAll(ctx)
	if err != nil {
		return err
	}

	if useJSON {
		return r.writeJSON(movies, pretty)
	}

	r.writePlain("Found %d movies:\n\n", len(movies))
	for i, movie := range movies {
		marker := " "
		if r.favs.IsFavorite(movie.Title) {
			marker = "★"
		}
		r.writePlain("%s %d. %s\n", marker, i+1, movie.Title)
		if movie.Genre.Name != "" {
			r.writePlain("     Genre: %s\n", movie.Genre.Name)
		}
		if movie.Director.Name != "" {
			r.writePlain("     Director: %s\n", movie.Director.Name)
		}
	}

	return nil
}

// MoviesGet prints one movie by exact title.
func (r *Runner) MoviesGet(ctx context.Context, cmd *cli.Command) error {
	title := cmd.StringArg("title")
	if title == "" {
		return fmt.Errorf("%w: title", shared.ErrMissingArgument)
	}

	movie, err := r.catalog.ByTitle(ctx, title)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(movie, true)
	}

	r.writePlain("%s\n\n", movie.Title)
	r.writePlain("Genre: %s\n", movie.Genre.Name)
	r.writePlain("Director: %s\n", movie.Director.Name)
	if movie.Description != "" {
		r.writePlain("\n%s\n", movie.Description)
	}
	if r.favs.IsFavorite(movie.Title) {
		r.writePlain("\n★ In your favorites\n")
	}

	return nil
}

// MoviesGenre prints a genre's description.
func (r *Runner) MoviesGenre(ctx context.Context, cmd *cli.Command) error {
	name := cmd.StringArg("name")
	if name == "" {
		return fmt.Errorf("%w: genre name", shared.ErrMissingArgument)
	}

	genre, err := r.catalog.ByGenre(ctx, name)
	if err != nil {
		return err
	}

	r.writePlain("%s\n\n%s\n", genre.Name, genre.Description)
	return nil
}

// MoviesDirector prints a director's biography.
func (r *Runner) MoviesDirector(ctx context.Context, cmd *cli.Command) error {
	name := cmd.StringArg("name")
	if name == "" {
		return fmt.Errorf("%w: director name", shared.ErrMissingArgument)
	}

	director, err := r.catalog.ByDirector(ctx, name)
	if err != nil {
		return err
	}

	r.writePlain("%s\n", director.Name)
	if director.BirthYear > 0 {
		if director.DeathYear > 0 {
			r.writePlain("(%d–%d)\n", director.BirthYear, director.DeathYear)
		} else {
			r.writePlain("(b. %d)\n", director.BirthYear)
		}
	}
	if director.Bio != "" {
		r.writePlain("\n%s\n", director.Bio)
	}

	return nil
}
