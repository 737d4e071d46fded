package domain

import "strings"

const ellipsis = "…"

// Measurer reports the rendered width of text at a font size.
type Measurer interface {
	Width(text string, size float64) float64
}

// WrapCell word-wraps text into lines no wider than limit and caps the result
// at two lines, ending the second in an ellipsis when text was cut.
func WrapCell(text string, limit, size float64, m Measurer) []string {
	lines := wrapWords(text, limit, size, m)
	if len(lines) <= 2 {
		return lines
	}
	rest := []rune(strings.Join(lines[1:], " "))
	for n := len(rest); n > 0; n-- {
		candidate := strings.TrimRight(string(rest[:n]), " ") + ellipsis
		if m.Width(candidate, size) <= limit {
			return []string{lines[0], candidate}
		}
	}
	if m.Width(ellipsis, size) <= limit {
		return []string{lines[0], ellipsis}
	}
	return []string{lines[0], ""}
}

func wrapWords(text string, limit, size float64, m Measurer) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}
	lines := []string{}
	line := ""
	for _, word := range words {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if m.Width(candidate, size) <= limit {
			line = candidate
			continue
		}
		if line != "" {
			lines = append(lines, line)
		}
		if m.Width(word, size) <= limit {
			line = word
			continue
		}
		pieces := breakRunes(word, limit, size, m)
		lines = append(lines, pieces[:len(pieces)-1]...)
		line = pieces[len(pieces)-1]
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// breakRunes splits a word wider than limit. A rune that does not fit on its
// own still gets a line, which is the best that can be done.
func breakRunes(word string, limit, size float64, m Measurer) []string {
	pieces := []string{}
	current := []rune{}
	for _, r := range word {
		next := append(current, r)
		if len(current) > 0 && m.Width(string(next), size) > limit {
			pieces = append(pieces, string(current))
			current = []rune{r}
			continue
		}
		current = next
	}
	return append(pieces, string(current))
}
