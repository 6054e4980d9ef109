// Package console is the interactive text version of the game: a menu,
// single rounds against the host and quick simulations.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"

	"montyhall/internal/monty"
	"montyhall/internal/stats"
)

// Console reads answers from in and writes the game to out.
type Console struct {
	in    *bufio.Scanner
	out   io.Writer
	rng   *rand.Rand
	stats *stats.Log
}

// New returns a console. A nil log disables history.
func New(in io.Reader, out io.Writer, rng *rand.Rand, log *stats.Log) *Console {
	return &Console{in: bufio.NewScanner(in), out: out, rng: rng, stats: log}
}

func (c *Console) ask(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		fmt.Fprintln(c.out)
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// askInt re-prompts until the answer is an integer in [lo, hi]. hi <= 0
// means no upper bound.
func (c *Console) askInt(prompt string, lo, hi int) (int, error) {
	for {
		answer, err := c.ask(prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(answer)
		if err == nil && v >= lo && (hi <= 0 || v <= hi) {
			return v, nil
		}
		fmt.Fprintln(c.out, "Invalid input. Try again.")
	}
}

func (c *Console) askDoors() (int, error) {
	prompt := fmt.Sprintf("Enter number of doors (%d to %d): ", monty.MinDoors, monty.MaxDoors)
	return c.askInt(prompt, monty.MinDoors, monty.MaxDoors)
}

func (c *Console) askYesNo(prompt string) (bool, error) {
	for {
		answer, err := c.ask(prompt)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(c.out, "Please answer y or n.")
	}
}

// Play runs one interactive round with the given number of doors and logs
// the result.
func (c *Console) Play(doors int) (monty.Round, error) {
	g := monty.NewGame(doors, monty.RevealAll, c.rng)
	n := g.Doors()
	prize := g.Deal()

	IntroDiagram(c.out, n)
	choice, err := c.askInt(fmt.Sprintf("Pick a door (1 to %d): ", n), 1, n)
	if err != nil {
		return monty.Round{}, err
	}
	pick := choice - 1

	opened := g.HostOpens(prize, pick)
	fmt.Fprintf(c.out, "\nMonty opens %d goat doors:\n", len(opened))
	DisplayDoors(c.out, n, opened, prize, false)

	switched, err := c.askYesNo("Do you want to switch your choice? (y/n): ")
	if err != nil {
		return monty.Round{}, err
	}
	final := pick
	if switched {
		final = g.SwitchFrom(pick, opened)
	}
	round := monty.Round{Doors: n, Prize: prize, Pick: pick, Opened: opened, Final: final, Switched: switched}

	fmt.Fprintf(c.out, "\nFinal Reveal:\n")
	DisplayDoors(c.out, n, nil, prize, true)
	if round.Won() {
		fmt.Fprintf(c.out, ":) You WON the car!\n")
	} else {
		fmt.Fprintf(c.out, ":( You got a goat. The car was behind door %d.\n", prize+1)
	}

	if c.stats != nil {
		rec := stats.Record{Mode: stats.ModeInteractive, Doors: n, Switched: switched, Won: round.Won()}
		if err := c.stats.Append(rec); err != nil {
			return round, err
		}
	}
	return round, nil
}

// Simulate plays trials rounds per strategy and prints the comparison.
func (c *Console) Simulate(doors, trials int, variant monty.Variant) (switched, stayed monty.Tally) {
	g := monty.NewGame(doors, variant, c.rng)
	switched, stayed = g.Compare(trials)
	PrintSimulation(c.out, g.Doors(), variant, switched, stayed)
	return switched, stayed
}

// PrintSimulation writes the result block of a simulation.
func PrintSimulation(w io.Writer, doors int, variant monty.Variant, switched, stayed monty.Tally) {
	opened := 1
	if variant == monty.RevealAll {
		opened = doors - 2
	}
	fmt.Fprintf(w, "\n=== Monty Hall Simulation Results ===\n")
	fmt.Fprintf(w, "Number of Doors: %d\n", doors)
	fmt.Fprintf(w, "Doors Opened by Monty: %d\n", opened)
	fmt.Fprintf(w, "Simulations per Strategy: %d\n\n", switched.Trials)
	fmt.Fprintf(w, "Switched  -> Wins: %d, Losses: %d\n", switched.Wins, switched.Losses())
	fmt.Fprintf(w, "Stayed    -> Wins: %d, Losses: %d\n", stayed.Wins, stayed.Losses())
	fmt.Fprintf(w, "Expected  -> Switch: %.1f%%, Stay: %.1f%%\n",
		monty.WinProbability(doors, monty.Switch, variant)*100,
		monty.WinProbability(doors, monty.Stay, variant)*100)
}

func (c *Console) showMenu() {
	fmt.Fprintf(c.out, "\n========= Monty Hall Menu =========\n")
	fmt.Fprintf(c.out, "1. Play interactive game (3 doors)\n")
	fmt.Fprintf(c.out, "2. Play interactive game (n doors)\n")
	fmt.Fprintf(c.out, "3. Run simulation (3 doors)\n")
	fmt.Fprintf(c.out, "4. Run simulation (n doors)\n")
	fmt.Fprintf(c.out, "5. View past statistics\n")
	fmt.Fprintf(c.out, "6. Exit\n")
	fmt.Fprintf(c.out, "====================================\n")
}

// Menu loops over the main menu until the user exits or input ends.
func (c *Console) Menu() error {
	err := c.menu()
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (c *Console) menu() error {
	for {
		c.showMenu()
		answer, err := c.ask("Choose an option (1-6): ")
		if err != nil {
			return err
		}
		switch answer {
		case "1":
			if _, err := c.Play(monty.MinDoors); err != nil {
				return err
			}
		case "2":
			doors, err := c.askDoors()
			if err != nil {
				return err
			}
			if _, err := c.Play(doors); err != nil {
				return err
			}
		case "3":
			trials, err := c.askInt("Enter number of simulations: ", 1, 0)
			if err != nil {
				return err
			}
			c.Simulate(monty.MinDoors, trials, monty.RevealOne)
		case "4":
			doors, err := c.askDoors()
			if err != nil {
				return err
			}
			trials, err := c.askInt("Enter number of simulations: ", 1, 0)
			if err != nil {
				return err
			}
			all, err := c.askYesNo("Should Monty open every other goat door? (y/n): ")
			if err != nil {
				return err
			}
			variant := monty.RevealOne
			if all {
				variant = monty.RevealAll
			}
			c.Simulate(doors, trials, variant)
		case "5":
			if c.stats == nil {
				fmt.Fprintf(c.out, "\nNo statistics recorded yet.\n")
				continue
			}
			if err := c.stats.History(c.out); err != nil {
				return err
			}
			if records, _, err := c.stats.Load(); err == nil && len(records) > 0 {
				stats.Summarize(records).Print(c.out)
			}
		case "6":
			fmt.Fprintln(c.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(c.out, "Invalid choice. Try again.")
		}
	}
}
