package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/flick/internal/favorites"
	"github.com/desertthunder/flick/internal/services"
	"github.com/desertthunder/flick/internal/session"
	"github.com/desertthunder/flick/internal/shared"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config  *shared.Config
	store   *session.Store
	policy  *session.Policy
	api     *services.APIService
	catalog *services.CatalogService
	account *services.AccountService
	favs    *favorites.Synchronizer
	logger  *log.Logger
	output  io.Writer
	input   io.Reader
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config  *shared.Config
	Store   *session.Store
	Policy  *session.Policy
	API     *services.APIService
	Catalog *services.CatalogService
	Account *services.AccountService
	Favs    *favorites.Synchronizer
	Logger  *log.Logger
	Output  io.Writer
	Input   io.Reader
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Input == nil {
		opts.Input = os.Stdin
	}

	return &Runner{
		config:  opts.Config,
		store:   opts.Store,
		policy:  opts.Policy,
		api:     opts.API,
		catalog: opts.Catalog,
		account: opts.Account,
		favs:    opts.Favs,
		logger:  opts.Logger,
		output:  opts.Output,
		input:   opts.Input,
	}
}

// SetLogger replaces the runner's logger, e.g. with a file logger while the
// TUI owns the terminal.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, registerCommand, loginCommand, logoutCommand, whoamiCommand,
		moviesCommand, favoritesCommand, accountCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
