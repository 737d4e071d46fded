package domain

import "fmt"

const (
	warnAutoFixed     = "✅ Otomatik düzeltme:"
	warnStillConflict = "⚠️ Çakışma var (hala):"
	warnExportBlocked = "⚠️ Çakışma var: PDF üretilmedi."
	warnRemedy        = "Çözüm: İlgili dersin grubunu manuel değiştir veya dersi kaldır."
)

// Warnings renders the resolver outcome for the user: change notes first,
// then the remaining conflicts and a fixed hint. blocked selects the export
// wording for the conflict header.
func (r Resolution) Warnings(blocked bool) []string {
	lines := []string{}
	if len(r.Changes) > 0 {
		lines = append(lines, warnAutoFixed)
		for _, c := range r.Changes {
			lines = append(lines, " - "+c)
		}
	}
	if len(r.Conflicts) > 0 {
		if blocked {
			lines = append(lines, warnExportBlocked)
		} else {
			lines = append(lines, warnStillConflict)
		}
		for _, c := range r.Conflicts {
			lines = append(lines, c.Describe())
		}
		lines = append(lines, warnRemedy)
	}
	return lines
}

func (c Conflict) Describe() string {
	return fmt.Sprintf(" - %s: %q ↔ %q", c.Day, c.A.CourseName, c.B.CourseName)
}
