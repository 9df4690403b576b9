package tui

import (
	"strings"
	"testing"

	"github.com/aretw0/decant/pkg/domain"
)

func sample() *domain.Solution {
	return &domain.Solution{
		Capacities: domain.MustCapacities(3, 5, 8),
		Target:     5,
		Path: []domain.State{
			domain.MustState(0, 0, 0),
			domain.MustState(0, 5, 0),
		},
	}
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(sample(), false)

	for _, want := range []string{
		"Measuring 5 liters of water using 3, 5 and 8 vessels in 1 steps.",
		"+------+-----+-----+-----+",
		"| Step |   3 |   5 |   8 |",
		"|   0. |   0 |   0 |   0 |",
		"|   1. |   0 |   5 |   0 |",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestMarkdownReport(t *testing.T) {
	report, err := MarkdownReport(sample())
	if err != nil {
		t.Fatalf("MarkdownReport failed: %v", err)
	}

	if !strings.Contains(report, "# Measuring 5 liters") {
		t.Errorf("missing heading:\n%s", report)
	}
	if !strings.Contains(report, "fill vessel 2") {
		t.Errorf("missing move description:\n%s", report)
	}
}

func TestMarkdownReport_RejectsBrokenPath(t *testing.T) {
	sol := sample()
	sol.Path = append(sol.Path, domain.MustState(1, 1, 1))

	if _, err := MarkdownReport(sol); err == nil {
		t.Error("a disconnected path must not render")
	}
}
