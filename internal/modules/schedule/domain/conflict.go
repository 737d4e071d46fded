package domain

// Conflict is an overlapping pair of sessions on one day.
type Conflict struct {
	Day string
	A   ResolvedSession
	B   ResolvedSession
}

// DetectConflicts reports every overlapping pair per day. Days are scanned in
// first-seen order and pairs in input order, so the result is deterministic.
func DetectConflicts(sessions []ResolvedSession) []Conflict {
	byDay := map[string][]ResolvedSession{}
	days := []string{}
	for _, s := range sessions {
		if _, ok := byDay[s.Day]; !ok {
			days = append(days, s.Day)
		}
		byDay[s.Day] = append(byDay[s.Day], s)
	}

	conflicts := []Conflict{}
	for _, day := range days {
		items := make([]ResolvedSession, 0, len(byDay[day]))
		spans := make([]Span, 0, len(byDay[day]))
		for _, s := range byDay[day] {
			if s.Start == OnlineToken {
				continue
			}
			items = append(items, s)
			spans = append(spans, s.Span())
		}
		for i := 0; i < len(items); i++ {
			for j := i + 1; j < len(items); j++ {
				if Overlaps(spans[i], spans[j]) {
					conflicts = append(conflicts, Conflict{Day: day, A: items[i], B: items[j]})
				}
			}
		}
	}
	return conflicts
}
