package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"montyhall/internal/render"
	"montyhall/internal/scenes"
)

type renderFlags struct {
	out    string
	width  int
	height int
	fps    int
	at     float64
}

func (f *renderFlags) bind(cmd *cobra.Command, def string) {
	fs := cmd.Flags()
	fs.StringVarP(&f.out, "out", "o", def, "Output path")
	fs.IntVar(&f.width, "width", 0, "Frame width in pixels (default from config)")
	fs.IntVar(&f.height, "height", 0, "Frame height in pixels (default from config)")
	fs.IntVar(&f.fps, "fps", 0, "Frames per second (default from config)")
}

// options merges the flags over the configured render settings.
func (f *renderFlags) options(g *globals) render.Options {
	opts := g.settings.RenderOptions()
	if f.width > 0 {
		opts.Width = f.width
	}
	if f.height > 0 {
		opts.Height = f.height
	}
	if f.fps > 0 {
		opts.FPS = f.fps
	}
	return opts
}

func newRenderCommand(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Export scenes as animated GIFs or still PNGs",
	}
	cmd.AddCommand(newRenderGIFCommand(g), newRenderPNGCommand(g), newRenderAllCommand(g))
	return cmd
}

func newRenderGIFCommand(g *globals) *cobra.Command {
	var f renderFlags
	cmd := &cobra.Command{
		Use:   "gif <scene>",
		Short: "Render a scene to an animated GIF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := f.out
			if out == "" {
				out = args[0] + ".gif"
			}
			return g.renderGIF(cmd, args[0], out, f.options(g))
		},
	}
	f.bind(cmd, "")
	return cmd
}

func newRenderPNGCommand(g *globals) *cobra.Command {
	var f renderFlags
	cmd := &cobra.Command{
		Use:   "png <scene>",
		Short: "Render one frame of a scene to a PNG",
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
			at := f.at
			if at < 0 {
				at = tl.Duration()
			}
			out := f.out
			if out == "" {
				out = args[0] + ".png"
			}
			file, err := os.Create(out)
			if err != nil {
				return wrapCLIError(ExitGeneralError, "create output", err)
			}
			if err := render.WritePNG(file, tl, at, f.options(g)); err != nil {
				file.Close()
				return wrapCLIError(ExitGeneralError, "render png", err)
			}
			if err := file.Close(); err != nil {
				return wrapCLIError(ExitGeneralError, "write output", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (t=%.2fs)\n", out, at)
			return nil
		},
	}
	f.bind(cmd, "")
	cmd.Flags().Float64Var(&f.at, "at", -1, "Time in seconds (default: final frame)")
	return cmd
}

func newRenderAllCommand(g *globals) *cobra.Command {
	var f renderFlags
	var dir string
	cmd := &cobra.Command{
		Use:   "all",
		Short: "Render every scene in running order to GIFs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return wrapCLIError(ExitGeneralError, "create output directory", err)
			}
			opts := f.options(g)
			for i, name := range scenes.Order {
				out := filepath.Join(dir, fmt.Sprintf("%02d-%s.gif", i+1, name))
				if err := g.renderGIF(cmd, name, out, opts); err != nil {
					return err
				}
			}
			return nil
		},
	}
	f.bind(cmd, "")
	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "Output directory")
	return cmd
}

func (g *globals) renderGIF(cmd *cobra.Command, name, out string, opts render.Options) error {
	sc, err := g.lookupScene(name)
	if err != nil {
		return err
	}
	tl, err := sc.Build(g.settings.Seed)
	if err != nil {
		return wrapCLIError(ExitGeneralError, "build scene "+name, err)
	}
	file, err := os.Create(out)
	if err != nil {
		return wrapCLIError(ExitGeneralError, "create output", err)
	}
	progress := func(done, total int) {
		if done%opts.FPS == 0 || done == total {
			g.VerboseLog("%s: frame %d/%d", name, done, total)
		}
	}
	if err := render.WriteGIF(cmd.Context(), file, tl, opts, progress); err != nil {
		file.Close()
		return wrapCLIError(ExitGeneralError, "render "+name, err)
	}
	if err := file.Close(); err != nil {
		return wrapCLIError(ExitGeneralError, "write output", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%.1fs at %d fps)\n", out, tl.Duration(), opts.FPS)
	return nil
}
