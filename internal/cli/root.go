// Package cli implements the montyhall command tree with cobra. Each
// subcommand lives in its own file; this file holds the root command,
// the shared flags and the error to exit code mapping.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"montyhall/internal/config"
	"montyhall/internal/core"
)

// Version, Commit and Date are injected from the main package.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Exit codes.
const (
	ExitOK           = 0
	ExitGeneralError = 1
	ExitUsage        = 2
	ExitUnknownScene = 3
)

// CLIError carries an exit code alongside the message.
type CLIError struct {
	Code    int
	Message string
	Err     error
}

func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CLIError) Unwrap() error { return e.Err }

func wrapCLIError(code int, msg string, err error) error {
	return &CLIError{Code: code, Message: msg, Err: err}
}

// globals holds the persistent flags and the state derived from them.
type globals struct {
	verbose    bool
	configPath string
	seed       int64
	statsPath  string

	logger   *log.Logger
	settings config.File
}

// VerboseLog prints to the logger only when --verbose is set.
func (g *globals) VerboseLog(format string, args ...any) {
	if g.verbose {
		g.logger.Printf(format, args...)
	}
}

// load reads the settings file and applies flag overrides.
func (g *globals) load(cmd *cobra.Command) error {
	g.logger = log.New(cmd.ErrOrStderr(), "montyhall: ", log.LstdFlags)
	g.settings = config.Default()
	if g.configPath != "" {
		f, err := config.Load(g.configPath)
		if err != nil {
			return wrapCLIError(ExitUsage, "invalid config", err)
		}
		g.settings = f
		g.VerboseLog("loaded settings from %s", g.configPath)
	}
	if cmd.Flags().Changed("seed") {
		g.settings.Seed = g.seed
	}
	if g.statsPath != "" {
		g.settings.Stats.Path = g.statsPath
	}
	return nil
}

// lookupScene builds the named scene with its configured parameters.
func (g *globals) lookupScene(name string) (core.Scene, error) {
	sc, err := core.Lookup(name, g.settings.SceneParams(name))
	if err != nil {
		return nil, wrapCLIError(ExitUnknownScene, "cannot load scene", err)
	}
	return sc, nil
}

// NewRootCommand creates the command tree.
func NewRootCommand() *cobra.Command {
	g := &globals{logger: log.New(io.Discard, "", 0)}

	root := &cobra.Command{
		Use:   "montyhall",
		Short: "Monty Hall explainer scenes, game and simulations",
		Long: `montyhall renders the Monty Hall explainer scenes (GIF, PNG, WAV cue
tracks or live in the terminal), plays the game interactively and runs
Monte Carlo simulations of the switch and stay strategies.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.load(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&g.verbose, "verbose", "v", false, "Enable verbose output")
	pf.StringVarP(&g.configPath, "config", "c", "", "Settings file (yaml or jsonc)")
	pf.Int64Var(&g.seed, "seed", 1, "Seed for door contents and simulations")
	pf.StringVar(&g.statsPath, "stats-file", "", "History log path (default from config)")

	root.AddCommand(
		newScenesCommand(g),
		newRenderCommand(g),
		newAudioCommand(g),
		newPlayCommand(g),
		newGameCommand(g),
		newMenuCommand(g),
		newSimulateCommand(g),
		newSweepCommand(g),
		newCurveCommand(g),
		newStatsCommand(g),
	)
	return root
}

// Execute runs the root command until it returns or the process is
// interrupted, and exits with the mapped code on error.
func Execute(root *cobra.Command) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := root.ExecuteContext(ctx)
	stop()
	if err != nil {
		var cliErr *CLIError
		if errors.As(err, &cliErr) {
			printError(root.ErrOrStderr(), cliErr.Message, cliErr.Err)
			os.Exit(cliErr.Code)
		}
		printError(root.ErrOrStderr(), err.Error(), nil)
		os.Exit(ExitGeneralError)
	}
}

func printError(w io.Writer, message string, underlying error) {
	if underlying != nil {
		fmt.Fprintf(w, "Error: %s: %v\n", message, underlying)
		return
	}
	fmt.Fprintf(w, "Error: %s\n", message)
}
