// Package sweep runs the Monte Carlo game for a range of door counts on a
// pool of workers and sets the empirical win rates beside the closed form.
package sweep

import (
	"context"
	"flag"
	"fmt"
	"math"
	"runtime"
	"sort"
	"sync"

	"montyhall/internal/monty"
	"montyhall/pkg/core"
)

// Options configures a sweep.
type Options struct {
	From, To int
	Trials   int
	Workers  int
	Seed     int64
	Variant  monty.Variant
}

// DefaultOptions sweeps N = 3..100 with RevealAll.
func DefaultOptions() Options {
	return Options{From: monty.MinDoors, To: 100, Trials: 10000, Workers: runtime.NumCPU(), Seed: 1}
}

// Result is the outcome for one door count.
type Result struct {
	N        int
	Switched monty.Tally
	Stayed   monty.Tally
	// Analytic switch and stay probabilities.
	SwitchP, StayP float64
}

// Error returns the largest gap between empirical and analytic rates.
func (r Result) Error() float64 {
	return math.Max(math.Abs(r.Switched.Rate()-r.SwitchP), math.Abs(r.Stayed.Rate()-r.StayP))
}

func (r Result) String() string {
	return fmt.Sprintf("N=%3d switch=%.4f (%.4f) stay=%.4f (%.4f)",
		r.N, r.Switched.Rate(), r.SwitchP, r.Stayed.Rate(), r.StayP)
}

// Bind registers the options on fs, using the current values as defaults.
func (o *Options) Bind(fs *flag.FlagSet) {
	fs.IntVar(&o.From, "from", o.From, "smallest door count")
	fs.IntVar(&o.To, "to", o.To, "largest door count")
	fs.IntVar(&o.Trials, "trials", o.Trials, "games per strategy and door count")
	fs.IntVar(&o.Workers, "workers", o.Workers, "number of worker goroutines")
	fs.Var(&o.Variant, "variant", "host behaviour: all or one")
}

func (o Options) validate() error {
	if o.From < monty.MinDoors {
		return fmt.Errorf("sweep: from %d is below %d doors", o.From, monty.MinDoors)
	}
	if o.To > monty.MaxDoors {
		return fmt.Errorf("sweep: to %d is above %d doors", o.To, monty.MaxDoors)
	}
	if o.To < o.From {
		return fmt.Errorf("sweep: empty range %d..%d", o.From, o.To)
	}
	if o.Trials <= 0 {
		return fmt.Errorf("sweep: trials must be positive, got %d", o.Trials)
	}
	return nil
}

// Evaluate simulates one door count. The game is seeded from seed and n so
// results do not depend on scheduling.
func Evaluate(n, trials int, seed int64, variant monty.Variant) Result {
	g := monty.NewGame(n, variant, core.Derive(seed, n).Source())
	switched, stayed := g.Compare(trials)
	return Result{
		N:        n,
		Switched: switched,
		Stayed:   stayed,
		SwitchP:  monty.WinProbability(n, monty.Switch, variant),
		StayP:    monty.WinProbability(n, monty.Stay, variant),
	}
}

// Run evaluates every N in [From, To] and returns the results sorted by N.
// Cancelling ctx stops handing out work and returns ctx.Err().
func Run(ctx context.Context, opts Options) ([]Result, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}

	jobs := make(chan int)
	results := make(chan Result)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := range jobs {
				results <- Evaluate(n, opts.Trials, opts.Seed, opts.Variant)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		defer close(jobs)
		for n := opts.From; n <= opts.To; n++ {
			select {
			case jobs <- n:
			case <-ctx.Done():
				return
			}
		}
	}()

	all := make([]Result, 0, opts.To-opts.From+1)
	for res := range results {
		all = append(all, res)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sort.Slice(all, func(i, j int) bool { return all[i].N < all[j].N })
	return all, nil
}
