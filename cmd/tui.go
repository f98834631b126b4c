package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/flick/internal/shared"
	"github.com/desertthunder/flick/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive catalog browser.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	if !r.store.Authenticated() {
		return fmt.Errorf("%w: run 'flick login' first", shared.ErrNotLoggedIn)
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/flick-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	model := ui.NewModel(ctx, r.catalog, r.favs)
	p := tea.NewProgram(model)

	// Route forced sign-outs to the TUI's anonymous entry view instead of
	// the CLI's plain message.
	r.policy.SetSignedOutHook(func() {
		p.Send(ui.SignedOutMsg{})
	})

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
