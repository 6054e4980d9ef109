// Package stats keeps the history of played rounds as a plain text log, one
// line per round:
//
//	[Mon Jan  2 15:04:05 2006] Mode: Interactive, Doors: 3, Switched: Yes, Result: Win
package stats

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"montyhall/internal/monty"
)

// DefaultPath is where the log lives unless configured otherwise.
const DefaultPath = "game_stats.txt"

// Modes recorded in the log.
const (
	ModeInteractive = "Interactive"
	ModeSimulation  = "Simulation"
)

// ErrNoStats is returned when no history has been recorded yet.
var ErrNoStats = errors.New("no statistics recorded yet")

// Record is one played round.
type Record struct {
	Time     time.Time
	Mode     string
	Doors    int
	Switched bool
	Won      bool
}

// Strategy returns the strategy the round was played with.
func (r Record) Strategy() monty.Strategy {
	if r.Switched {
		return monty.Switch
	}
	return monty.Stay
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// String formats the record as a log line without the newline.
func (r Record) String() string {
	result := "Loss"
	if r.Won {
		result = "Win"
	}
	return fmt.Sprintf("[%s] Mode: %s, Doors: %d, Switched: %s, Result: %s",
		r.Time.Format(time.ANSIC), r.Mode, r.Doors, yesNo(r.Switched), result)
}

// Parse reads a log line written by Record.String.
func Parse(line string) (Record, error) {
	var r Record
	end := strings.IndexByte(line, ']')
	if !strings.HasPrefix(line, "[") || end < 0 {
		return r, fmt.Errorf("parse stats line %q: missing timestamp", line)
	}
	t, err := time.ParseInLocation(time.ANSIC, line[1:end], time.Local)
	if err != nil {
		return r, fmt.Errorf("parse stats line %q: %w", line, err)
	}
	r.Time = t

	fields := strings.Split(strings.TrimSpace(line[end+1:]), ", ")
	seen := 0
	for _, f := range fields {
		key, value, ok := strings.Cut(f, ": ")
		if !ok {
			return r, fmt.Errorf("parse stats line %q: bad field %q", line, f)
		}
		switch key {
		case "Mode":
			r.Mode = value
		case "Doors":
			if _, err := fmt.Sscanf(value, "%d", &r.Doors); err != nil {
				return r, fmt.Errorf("parse stats line %q: doors: %w", line, err)
			}
		case "Switched":
			r.Switched = value == "Yes"
		case "Result":
			r.Won = value == "Win"
		default:
			continue
		}
		seen++
	}
	if seen != 4 {
		return r, fmt.Errorf("parse stats line %q: expected 4 fields, got %d", line, seen)
	}
	return r, nil
}

// Log is an append-only history file.
type Log struct {
	Path string
	now  func() time.Time
}

// NewLog returns a log stored at path.
func NewLog(path string) *Log {
	if path == "" {
		path = DefaultPath
	}
	return &Log{Path: path, now: time.Now}
}

// Append writes rounds in order, stamping each with the current time when its
// Time is zero.
func (l *Log) Append(records ...Record) error {
	f, err := os.OpenFile(l.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open stats log: %w", err)
	}
	w := bufio.NewWriter(f)
	for _, r := range records {
		if r.Time.IsZero() {
			r.Time = l.now()
		}
		fmt.Fprintln(w, r.String())
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write stats log: %w", err)
	}
	return f.Close()
}

// Clear removes the log file. A missing file is not an error.
func (l *Log) Clear() error {
	if err := os.Remove(l.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove stats log: %w", err)
	}
	return nil
}

// Lines returns the raw log lines. A missing file yields ErrNoStats.
func (l *Log) Lines() ([]string, error) {
	f, err := os.Open(l.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoStats
	}
	if err != nil {
		return nil, fmt.Errorf("open stats log: %w", err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read stats log: %w", err)
	}
	return lines, nil
}

// Load parses every line of the log. Lines that do not parse are skipped
// and counted.
func (l *Log) Load() (records []Record, skipped int, err error) {
	lines, err := l.Lines()
	if err != nil {
		return nil, 0, err
	}
	for _, line := range lines {
		r, err := Parse(line)
		if err != nil {
			skipped++
			continue
		}
		records = append(records, r)
	}
	return records, skipped, nil
}

// History prints the log under a heading, or the no-stats message.
func (l *Log) History(w io.Writer) error {
	lines, err := l.Lines()
	if errors.Is(err, ErrNoStats) {
		_, err = fmt.Fprintf(w, "\nNo statistics recorded yet.\n")
		return err
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\n=== Game History ===\n")
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
	return nil
}

// Summary aggregates records per strategy.
type Summary struct {
	Switched monty.Tally
	Stayed   monty.Tally
}

// Summarize tallies wins by strategy.
func Summarize(records []Record) Summary {
	s := Summary{Switched: monty.Tally{Strategy: monty.Switch}, Stayed: monty.Tally{Strategy: monty.Stay}}
	for _, r := range records {
		t := &s.Stayed
		if r.Switched {
			t = &s.Switched
		}
		t.Trials++
		if r.Won {
			t.Wins++
		}
	}
	return s
}

// Print writes the summary table.
func (s Summary) Print(w io.Writer) {
	fmt.Fprintf(w, "\n=== Summary ===\n")
	rows := []struct {
		label string
		t     monty.Tally
	}{{"Switched", s.Switched}, {"Stayed", s.Stayed}}
	for _, row := range rows {
		fmt.Fprintf(w, "%-9s -> Rounds: %d, Wins: %d, Losses: %d, Win rate: %.1f%%\n",
			row.label, row.t.Trials, row.t.Wins, row.t.Losses(), row.t.Rate()*100)
	}
}
