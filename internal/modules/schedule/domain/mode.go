package domain

import (
	"fmt"
	"strings"
)

// Mode picks the program subset a student builds a schedule from.
type Mode string

const (
	ModeFirstYear  Mode = "y1"
	ModeSecondYear Mode = "y2"
	ModeMixed      Mode = "mix"
)

// ParseMode accepts y1, y2 and mix; an empty value falls back to y1.
func ParseMode(raw string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(raw))) {
	case "", ModeFirstYear:
		return ModeFirstYear, nil
	case ModeSecondYear:
		return ModeSecondYear, nil
	case ModeMixed:
		return ModeMixed, nil
	default:
		return "", fmt.Errorf("unsupported mode %q", raw)
	}
}

// Title is the human label printed on exported documents.
func (m Mode) Title() string {
	switch m {
	case ModeSecondYear:
		return "2. Sınıf"
	case ModeMixed:
		return "1+2 (Karışık)"
	default:
		return "1. Sınıf"
	}
}

// Visible returns the programs visible in the mode, in catalog order.
// Missing programs are skipped rather than reported.
func (c Catalog) Visible(mode Mode) []Program {
	var picks []int
	switch mode {
	case ModeSecondYear:
		picks = []int{1}
	case ModeMixed:
		picks = []int{0, 1}
	default:
		picks = []int{0}
	}
	out := make([]Program, 0, len(picks))
	for _, idx := range picks {
		if idx < len(c.Programs) {
			out = append(out, c.Programs[idx])
		}
	}
	return out
}
