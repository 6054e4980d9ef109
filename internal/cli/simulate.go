package cli

import (
	"flag"
	"fmt"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"montyhall/internal/console"
	"montyhall/internal/monty"
	"montyhall/internal/stats"
	"montyhall/internal/sweep"
	"montyhall/pkg/core"
)

func newSimulateCommand(g *globals) *cobra.Command {
	var (
		doors   int
		trials  int
		variant = monty.RevealAll
		record  bool
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Compare the stay and switch strategies by simulation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkDoors(doors); err != nil {
				return err
			}
			if trials <= 0 {
				return wrapCLIError(ExitUsage, "trials must be positive", nil)
			}
			game := monty.NewGame(doors, variant, core.NewRNG(g.settings.Seed).Source())
			switched := monty.Tally{Strategy: monty.Switch}
			stayed := monty.Tally{Strategy: monty.Stay}
			var records []stats.Record
			for _, t := range []*monty.Tally{&switched, &stayed} {
				for i := 0; i < trials; i++ {
					round := game.Play(t.Strategy)
					t.Trials++
					if round.Won() {
						t.Wins++
					}
					if record {
						records = append(records, stats.Record{Mode: stats.ModeSimulation, Doors: doors, Switched: round.Switched, Won: round.Won()})
					}
				}
			}
			console.PrintSimulation(cmd.OutOrStdout(), doors, variant, switched, stayed)
			if !record {
				return nil
			}
			if err := stats.NewLog(g.settings.Stats.Path).Append(records...); err != nil {
				return wrapCLIError(ExitGeneralError, "record statistics", err)
			}
			g.VerboseLog("appended %d rounds to %s", switched.Trials+stayed.Trials, g.settings.Stats.Path)
			return nil
		},
	}
	fs := cmd.Flags()
	fs.IntVarP(&doors, "doors", "n", monty.MinDoors, "Number of doors")
	fs.IntVarP(&trials, "trials", "t", 10000, "Games per strategy")
	fs.Var(&variantValue{&variant}, "variant", "Host behaviour: all or one")
	fs.BoolVar(&record, "record", false, "Append every simulated round to the history log")
	return cmd
}

func checkDoors(doors int) error {
	if doors < monty.MinDoors || doors > monty.MaxDoors {
		return wrapCLIError(ExitUsage, fmt.Sprintf("doors must be between %d and %d", monty.MinDoors, monty.MaxDoors), nil)
	}
	return nil
}

// variantValue adapts monty.Variant to pflag.Value.
type variantValue struct{ v *monty.Variant }

func (v *variantValue) String() string     { return v.v.String() }
func (v *variantValue) Set(s string) error { return v.v.Set(s) }
func (v *variantValue) Type() string       { return "variant" }

func newSweepCommand(g *globals) *cobra.Command {
	opts := sweep.DefaultOptions()
	var top int
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Simulate every door count in a range on a worker pool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Seed = g.settings.Seed
			g.VerboseLog("sweeping N=%d..%d on %d workers", opts.From, opts.To, opts.Workers)
			start := time.Now()
			results, err := sweep.Run(cmd.Context(), opts)
			if err != nil {
				return wrapCLIError(ExitGeneralError, "sweep", err)
			}
			out := cmd.OutOrStdout()
			for _, res := range results {
				fmt.Fprintln(out, res)
			}
			if top <= 0 {
				return nil
			}
			worst := append([]sweep.Result(nil), results...)
			sort.Slice(worst, func(i, j int) bool { return worst[i].Error() > worst[j].Error() })
			fmt.Fprintf(out, "\nLargest deviations (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
			for i := 0; i < len(worst) && i < top; i++ {
				fmt.Fprintf(out, "%2d) %s err=%.4f\n", i+1, worst[i], worst[i].Error())
			}
			return nil
		},
	}
	gfs := flag.NewFlagSet("sweep", flag.ContinueOnError)
	opts.Bind(gfs)
	cmd.Flags().AddGoFlagSet(gfs)
	cmd.Flags().IntVar(&top, "top", 5, "Show the N largest deviations from the closed form")
	return cmd
}

func newCurveCommand(g *globals) *cobra.Command {
	var (
		from, to int
		variant  = monty.RevealAll
	)
	cmd := &cobra.Command{
		Use:   "curve",
		Short: "Print the closed-form win probabilities per door count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if from < monty.MinDoors || to < from || to > monty.MaxDoors {
				return wrapCLIError(ExitUsage, fmt.Sprintf("invalid range %d..%d", from, to), nil)
			}
			switched := monty.Curve(from, to, monty.Switch, variant)
			stayed := monty.Curve(from, to, monty.Stay, variant)
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(tw, "N\tP(switch)\tP(stay)\t")
			for i := range switched {
				fmt.Fprintf(tw, "%d\t%.4f\t%.4f\t\n", switched[i].N, switched[i].P, stayed[i].P)
			}
			return tw.Flush()
		},
	}
	fs := cmd.Flags()
	fs.IntVar(&from, "from", monty.MinDoors, "Smallest door count")
	fs.IntVar(&to, "to", 100, "Largest door count")
	fs.Var(&variantValue{&variant}, "variant", "Host behaviour: all or one")
	return cmd
}
