package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"montyhall/internal/core"
	"montyhall/internal/scenes"
)

func newScenesCommand(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenes",
		Short: "List and inspect the explainer scenes",
	}
	cmd.AddCommand(newScenesListCommand(g), newScenesShowCommand(g))
	return cmd
}

func newScenesListCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List scenes in running order with their length",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "SCENE\tSTEPS\tDURATION")
			for _, name := range scenes.Order {
				sc, err := g.lookupScene(name)
				if err != nil {
					return err
				}
				tl, err := sc.Build(g.settings.Seed)
				if err != nil {
					return wrapCLIError(ExitGeneralError, "build scene "+name, err)
				}
				fmt.Fprintf(tw, "%s\t%d\t%.1fs\n", name, len(tl.Steps()), tl.Duration())
			}
			return tw.Flush()
		},
	}
}

func newScenesShowCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "show <scene>",
		Short: "Print the parameters and step script of a scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := g.lookupScene(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if p, ok := sc.(core.ParameterProvider); ok {
				for _, group := range p.Parameters().Groups {
					fmt.Fprintf(out, "[%s]\n", group.Name)
					for _, param := range group.Params {
						if param.Description == "" {
							fmt.Fprintf(out, "  %s = %s\n", param.Key, param.Value)
							continue
						}
						fmt.Fprintf(out, "  %s = %s  # %s\n", param.Key, param.Value, param.Description)
					}
				}
			}
			tl, err := sc.Build(g.settings.Seed)
			if err != nil {
				return wrapCLIError(ExitGeneralError, "build scene "+args[0], err)
			}
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "STEP\tSTART\tRUN\tLEAD")
			for i, st := range tl.Steps() {
				fmt.Fprintf(tw, "%d\t%.2f\t%.2f\t%s\n", i, st.Start, st.RunTime, st.Lead())
			}
			return tw.Flush()
		},
	}
}
