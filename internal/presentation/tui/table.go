package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/aretw0/decant/pkg/domain"
)

const tableRule = "+------+-----+-----+-----+"

// Summary returns the one-line human description of a solution.
func Summary(sol *domain.Solution) string {
	lims := sol.Capacities.Limits()
	return fmt.Sprintf("Measuring %d liters of water using %d, %d and %d vessels in %d steps.",
		sol.Target, lims[0], lims[1], lims[2], sol.Steps())
}

// RenderTable renders the solution as an ASCII table, one row per state,
// one column per vessel with its capacity as the header.
func RenderTable(sol *domain.Solution, color bool) string {
	lims := sol.Capacities.Limits()

	var b strings.Builder
	b.WriteString(Summary(sol))
	b.WriteByte('\n')
	b.WriteString(tableRule)
	b.WriteByte('\n')

	header := fmt.Sprintf("| Step | %3d | %3d | %3d |", lims[0], lims[1], lims[2])
	b.WriteString(colorize(header, "#38bdf8", color))
	b.WriteByte('\n')
	b.WriteString(tableRule)
	b.WriteByte('\n')

	for i, state := range sol.Path {
		vols := state.Volumes()
		row := fmt.Sprintf("| %3d. | %3d | %3d | %3d |", i, vols[0], vols[1], vols[2])
		if i == len(sol.Path)-1 {
			row = colorize(row, "#2dd4bf", color)
		}
		b.WriteString(row)
		b.WriteByte('\n')
	}

	b.WriteString(tableRule)
	b.WriteByte('\n')
	return b.String()
}

// MarkdownReport builds a markdown document describing the solution move by
// move, suitable for glamour rendering or plain-text output.
func MarkdownReport(sol *domain.Solution) (string, error) {
	moves, err := sol.Moves()
	if err != nil {
		return "", err
	}

	lims := sol.Capacities.Limits()

	var b strings.Builder
	fmt.Fprintf(&b, "# Measuring %d liters\n\n", sol.Target)
	fmt.Fprintf(&b, "Vessels of %d, %d and %d liters, all starting empty. %d steps.\n\n",
		lims[0], lims[1], lims[2], sol.Steps())

	b.WriteString("| Step | Action | Vessels |\n")
	b.WriteString("| --- | --- | --- |\n")
	fmt.Fprintf(&b, "| 0 | start | %v |\n", sol.Path[0])
	for i, m := range moves {
		fmt.Fprintf(&b, "| %d | %s | %v |\n", i+1, m, sol.Path[i+1])
	}
	return b.String(), nil
}

func colorize(s, hex string, enabled bool) string {
	if !enabled {
		return s
	}
	p := termenv.ColorProfile()
	return termenv.String(s).Foreground(p.Color(hex)).String()
}
