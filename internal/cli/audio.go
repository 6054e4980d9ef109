package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"montyhall/internal/audio"
)

func newAudioCommand(g *globals) *cobra.Command {
	var (
		out    string
		cue    time.Duration
		volume float64
	)
	cmd := &cobra.Command{
		Use:   "audio <scene>",
		Short: "Write the cue track of a scene as a WAV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := g.lookupScene(args[0])
			if err != nil {
				return err
			}
			tl, err := sc.Build(g.settings.Seed)
			if err != nil {
				return wrapCLIError(ExitGeneralError, "build scene "+args[0], err)
			}
			opts := g.settings.AudioOptions()
			if cmd.Flags().Changed("cue") {
				opts.Cue = cue
			}
			if cmd.Flags().Changed("volume") {
				opts.Volume = volume
			}
			if out == "" {
				out = args[0] + ".wav"
			}
			file, err := os.Create(out)
			if err != nil {
				return wrapCLIError(ExitGeneralError, "create output", err)
			}
			if err := audio.WriteWAV(file, tl, opts); err != nil {
				file.Close()
				return wrapCLIError(ExitGeneralError, "render audio", err)
			}
			if err := file.Close(); err != nil {
				return wrapCLIError(ExitGeneralError, "write output", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%.1fs, %d cues)\n", out, tl.Duration(), audio.Cues(tl))
			return nil
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&out, "out", "o", "", "Output path (default <scene>.wav)")
	fs.DurationVar(&cue, "cue", 250*time.Millisecond, "Longest tone per step")
	fs.Float64Var(&volume, "volume", 0.5, "Cue volume in [0, 1]")
	return cmd
}
