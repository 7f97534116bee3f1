package ocr

import (
	"strings"
	"testing"
)

func TestHeuristicConfidence(t *testing.T) {
	structured := "1) Osmosis is the diffusion of water across a membrane. " +
		"2) Diffusion is the net movement of particles down a concentration gradient. " +
		strings.Repeat("The process continues until equilibrium is reached. ", 4)
	garbage := "@@## %% ++ 0011 ~~"

	hi := heuristicConfidence(structured)
	lo := heuristicConfidence(garbage)

	if hi <= lo {
		t.Fatalf("structured text (%v) should score above noise (%v)", hi, lo)
	}
	for name, v := range map[string]float64{"structured": hi, "garbage": lo} {
		if v < 0 || v > 1 {
			t.Errorf("%s confidence %v out of [0,1]", name, v)
		}
	}
}

func TestHeuristicConfidenceEmpty(t *testing.T) {
	got := heuristicConfidence("")
	if got != 0.2 {
		t.Fatalf("empty text = %v, want base score 0.2", got)
	}
}
