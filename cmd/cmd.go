// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

// setupCommand handles setup operations for configuration and database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:   "config",
				Usage:  "Create a starter config.toml",
				Flags:  []cli.Flag{configFlag()},
				Action: r.SetupConfig,
			},
			{
				Name:   "database",
				Usage:  "Initialize the session database and run migrations",
				Flags:  []cli.Flag{configFlag()},
				Action: r.SetupDatabase,
			},
		},
	}
}

// registerCommand creates a new account on the backend
func registerCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "register",
		Usage: "Create a new account",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "email",
				Usage: "Account email address",
			},
			&cli.StringFlag{
				Name:  "username",
				Usage: "Display name",
			},
			&cli.StringFlag{
				Name:  "birthday",
				Usage: "Birthday (YYYY-MM-DD, optional)",
			},
		},
		Action: r.Register,
	}
}

// loginCommand establishes a session
func loginCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "Log in and persist the session locally",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "email",
				Usage: "Account email address",
			},
		},
		Action: r.Login,
	}
}

// logoutCommand destroys the local session
func logoutCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "logout",
		Usage:  "Log out and clear the local session",
		Action: r.Logout,
	}
}

// whoamiCommand shows the current session
func whoamiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "whoami",
		Usage: "Show the logged-in user",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
		},
		Action: r.Whoami,
	}
}

// moviesCommand handles catalog browsing
func moviesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "movies",
		Aliases: []string{"m"},
		Usage:   "Browse the movie catalog",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List the full catalog",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.MoviesList,
			},
			{
				Name:  "get",
				Usage: "Show one movie by exact title",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "title"},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.MoviesGet,
			},
			{
				Name:  "genre",
				Usage: "Show a genre's description",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "name"},
				},
				Action: r.MoviesGenre,
			},
			{
				Name:  "director",
				Usage: "Show a director's biography",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "name"},
				},
				Action: r.MoviesDirector,
			},
		},
	}
}

// favoritesCommand handles the favorites list
func favoritesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "favorites",
		Aliases: []string{"fav"},
		Usage:   "Manage your favorite movies",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List favorite movies with catalog metadata",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Usage: "Output format: text, json, csv, markdown",
						Value: "text",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Write output to file instead of stdout",
					},
				},
				Action: r.FavoritesList,
			},
			{
				Name:  "add",
				Usage: "Add a movie to favorites by exact title",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "title"},
				},
				Action: r.FavoritesAdd,
			},
			{
				Name:  "remove",
				Usage: "Remove a movie from favorites by exact title",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "title"},
				},
				Action: r.FavoritesRemove,
			},
		},
	}
}

// accountCommand handles profile edits and account deletion
func accountCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "account",
		Usage: "Manage your account",
		Commands: []*cli.Command{
			{
				Name:  "update",
				Usage: "Update profile fields",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "username",
						Usage: "New display name",
					},
					&cli.StringFlag{
						Name:  "birthday",
						Usage: "New birthday (YYYY-MM-DD)",
					},
					&cli.BoolFlag{
						Name:  "password",
						Usage: "Prompt for a new password",
					},
				},
				Action: r.AccountUpdate,
			},
			{
				Name:  "delete",
				Usage: "Delete the account and clear the local session",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "yes",
						Usage: "Skip the confirmation prompt",
					},
				},
				Action: r.AccountDelete,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for interactive browsing.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch interactive catalog browser",
		Action:  r.TUI,
	}
}
