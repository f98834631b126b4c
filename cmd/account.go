package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/flick/internal/models"
	"github.com/desertthunder/flick/internal/shared"
	"github.com/urfave/cli/v3"
)

// Register creates a new account, prompting for any detail not given as a flag.
func (r *Runner) Register(ctx context.Context, cmd *cli.Command) error {
	email := cmd.String("email")
	username := cmd.String("username")

	var err error
	if email == "" {
		if email, err = r.promptLine("Email"); err != nil {
			return err
		}
	}
	if username == "" {
		if username, err = r.promptLine("Username"); err != nil {
			return err
		}
	}

	password, err := r.promptPassword("Password")
	if err != nil {
		return err
	}

	reg := models.Registration{
		Email:    email,
		Username: username,
		Password: password,
		Birthday: cmd.String("birthday"),
	}

	user, err := r.account.Register(ctx, reg)
	if err != nil {
		return err
	}

	r.writePlainln("✓ Account created for %s", user.Email)
	r.writePlain("You can now use: flick login --email %s\n", user.Email)

	return nil
}

// Login establishes and persists a session.
func (r *Runner) Login(ctx context.Context, cmd *cli.Command) error {
	email := cmd.String("email")

	var err error
	if email == "" {
		if email, err = r.promptLine("Email"); err != nil {
			return err
		}
	}

	password, err := r.promptPassword("Password")
	if err != nil {
		return err
	}

	user, err := r.account.Login(ctx, models.Credentials{Email: email, Password: password})
	if err != nil {
		return err
	}

	r.writePlainln("✓ Logged in as %s", user.Username)
	r.writePlain("  Favorites: %d\n", len(user.FavoriteTitles))

	return nil
}

// Logout clears the local session.
func (r *Runner) Logout(ctx context.Context, cmd *cli.Command) error {
	if err := r.account.Logout(ctx); err != nil {
		return err
	}

	r.writePlainln("✓ Logged out")
	return nil
}

// Whoami shows the current session state.
func (r *Runner) Whoami(ctx context.Context, cmd *cli.Command) error {
	_, user := r.store.Current()
	if user == nil {
		r.writePlainln("Not logged in")
		return nil
	}

	if cmd.Bool("json") {
		return r.writeJSON(user, true)
	}

	r.writePlain("Email: %s\n", user.Email)
	r.writePlain("Username: %s\n", user.Username)
	r.writePlain("Favorites: %d\n", len(user.FavoriteTitles))

	return nil
}

// AccountUpdate edits profile fields.
func (r *Runner) AccountUpdate(ctx context.Context, cmd *cli.Command) error {
	update := models.UserUpdate{
		Username: cmd.String("username"),
		Birthday: cmd.String("birthday"),
	}

	if cmd.Bool("password") {
		password, err := r.promptPassword("New password")
		if err != nil {
			return err
		}
		update.Password = password
	}

	if update.Username == "" && update.Birthday == "" && update.Password == "" {
		return fmt.Errorf("%w: nothing to update", shared.ErrMissingArgument)
	}

	user, err := r.account.Update(ctx, update)
	if err != nil {
		return err
	}

	r.writePlainln("✓ Profile updated for %s", user.Email)
	return nil
}

// AccountDelete removes the account after confirmation.
func (r *Runner) AccountDelete(ctx context.Context, cmd *cli.Command) error {
	_, user := r.store.Current()
	if user == nil {
		return shared.ErrNotLoggedIn
	}

	if !cmd.Bool("yes") {
		answer, err := r.promptLine(fmt.Sprintf("Delete account %s? This cannot be undone [y/N]", user.Email))
		if err != nil {
			return err
		}
		if answer != "y" && answer != "Y" {
			r.writePlainln("Aborted")
			return nil
		}
	}

	if err := r.account.Delete(ctx); err != nil {
		return err
	}

	r.writePlainln("✓ Account deleted")
	return nil
}
