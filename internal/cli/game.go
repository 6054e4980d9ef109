package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"montyhall/internal/console"
	"montyhall/internal/monty"
	"montyhall/internal/stats"
	"montyhall/pkg/core"
)

func (g *globals) newConsole(cmd *cobra.Command) *console.Console {
	rng := core.NewRNG(g.settings.Seed).Source()
	return console.New(cmd.InOrStdin(), cmd.OutOrStdout(), rng, stats.NewLog(g.settings.Stats.Path))
}

func newGameCommand(g *globals) *cobra.Command {
	var doors int
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Play one interactive round in the console",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkDoors(doors); err != nil {
				return err
			}
			round, err := g.newConsole(cmd).Play(doors)
			if errors.Is(err, io.EOF) {
				return wrapCLIError(ExitGeneralError, "input ended before the round finished", nil)
			}
			if err != nil {
				return wrapCLIError(ExitGeneralError, "play", err)
			}
			g.VerboseLog("round: prize %d, pick %d, final %d, won %t", round.Prize+1, round.Pick+1, round.Final+1, round.Won())
			return nil
		},
	}
	cmd.Flags().IntVarP(&doors, "doors", "n", monty.MinDoors, "Number of doors")
	return cmd
}

func newMenuCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Open the interactive console menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.newConsole(cmd).Menu()
		},
	}
}

func newStatsCommand(g *globals) *cobra.Command {
	var (
		summary bool
		reset   bool
	)
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show the history of played rounds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			history := stats.NewLog(g.settings.Stats.Path)
			out := cmd.OutOrStdout()
			if reset {
				if err := history.Clear(); err != nil {
					return wrapCLIError(ExitGeneralError, "clear statistics", err)
				}
				fmt.Fprintf(out, "Cleared %s\n", history.Path)
				return nil
			}
			if !summary {
				if err := history.History(out); err != nil {
					return wrapCLIError(ExitGeneralError, "read statistics", err)
				}
				return nil
			}
			records, skipped, err := history.Load()
			if errors.Is(err, stats.ErrNoStats) {
				fmt.Fprintln(out, "No statistics recorded yet.")
				return nil
			}
			if err != nil {
				return wrapCLIError(ExitGeneralError, "read statistics", err)
			}
			if skipped > 0 {
				g.VerboseLog("skipped %d malformed lines in %s", skipped, history.Path)
			}
			stats.Summarize(records).Print(out)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&summary, "summary", "s", false, "Print win rates per strategy instead of the raw log")
	cmd.Flags().BoolVar(&reset, "clear", false, "Delete the history log")
	return cmd
}
