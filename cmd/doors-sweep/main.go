package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"
	"time"

	"montyhall/internal/sweep"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("doors-sweep: ")

	opts := sweep.DefaultOptions()
	opts.Bind(flag.CommandLine)
	flag.Int64Var(&opts.Seed, "seed", opts.Seed, "base seed")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Sweeping N=%d..%d (%d workers, %d trials, host opens %s)\n", opts.From, opts.To, opts.Workers, opts.Trials, opts.Variant)

	start := time.Now()
	results, err := sweep.Run(ctx, opts)
	if err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)

	for _, res := range results {
		fmt.Println(res)
	}

	worst := append([]sweep.Result(nil), results...)
	sort.Slice(worst, func(i, j int) bool { return worst[i].Error() > worst[j].Error() })
	fmt.Printf("\nLargest deviations (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(worst) && i < 5; i++ {
		fmt.Printf("%2d) %s err=%.4f\n", i+1, worst[i], worst[i].Error())
	}
}
