package cli

import (
	"context"
	"errors"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"montyhall/internal/term"
)

// newScreen is swapped in tests for a simulation screen.
var newScreen = tcell.NewScreen

func newPlayCommand(g *globals) *cobra.Command {
	var fps int
	cmd := &cobra.Command{
		Use:   "play <scene>",
		Short: "Play a scene in the terminal",
		Long: `Play a scene in the terminal using half-block cells.

Keys: space pause, left/right seek, r restart, q or esc quit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := g.lookupScene(args[0])
			if err != nil {
				return err
			}
			tl, err := sc.Build(g.settings.Seed)
			if err != nil {
				return wrapCLIError(ExitGeneralError, "build scene "+args[0], err)
			}
			screen, err := newScreen()
			if err != nil {
				return wrapCLIError(ExitGeneralError, "open terminal", err)
			}
			if err := screen.Init(); err != nil {
				return wrapCLIError(ExitGeneralError, "initialise terminal", err)
			}
			defer screen.Fini()

			g.VerboseLog("playing %s (%.1fs)", args[0], tl.Duration())
			err = term.NewPlayer(screen, tl, fps).Run(cmd.Context())
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().IntVar(&fps, "fps", 30, "Playback ticks per second")
	return cmd
}
