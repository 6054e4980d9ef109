package console

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

func doorRow(n int, cell func(i int) string) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteString(cell(i))
	}
	return sb.String()
}

func numbers(n int) string {
	return doorRow(n, func(i int) string { return fmt.Sprintf("[%d]     ", i+1) })
}

func frames(n int) string {
	return doorRow(n, func(int) string { return "+-----+ " })
}

// IntroDiagram prints the closed doors and the rules.
func IntroDiagram(w io.Writer, n int) {
	fmt.Fprintf(w, "\n   ============================\n")
	fmt.Fprintf(w, "       MONTY HALL - %d DOORS\n", n)
	fmt.Fprintf(w, "   ============================\n\n")
	fmt.Fprintf(w, "    %s\n", numbers(n))
	fmt.Fprintf(w, "   %s\n", frames(n))
	fmt.Fprintf(w, "   %s\n", doorRow(n, func(int) string { return "| ??? | " }))
	fmt.Fprintf(w, "   %s\n", frames(n))
	fmt.Fprintf(w, "\n   - One door hides a CAR\n")
	fmt.Fprintf(w, "   - The others hide GOATS\n")
	fmt.Fprintf(w, "   - Monty will reveal all goat doors except one\n")
}

// DisplayDoors prints the doors with the revealed goats, or every door's
// contents when final is set.
func DisplayDoors(w io.Writer, n int, revealed []int, prize int, final bool) {
	fmt.Fprintf(w, "\n   Doors:\n   %s\n", numbers(n))
	fmt.Fprintf(w, "   %s\n", frames(n))
	fmt.Fprintf(w, "   %s\n", doorRow(n, func(i int) string {
		switch {
		case final && i == prize:
			return "| CAR | "
		case final, slices.Contains(revealed, i):
			return "|GOAT | "
		}
		return "| ??? | "
	}))
	fmt.Fprintf(w, "   %s\n", frames(n))
}
