package domain

const heavyDayMinutes = 6 * 60

const (
	NoteFreeDay     = "Boş gün. Ödev/tekrar için kullan."
	NoteHeavyDay    = "Yoğun gün. Laptop + şarj + yemek planla."
	NoteLightDay    = "Hafif gün. Tek ders, tekrar için ideal."
	NoteModerateDay = "Orta yoğunluk. Araları verimli kullan."
)

// DayNote summarises the load of one day. Online sessions are ignored; a
// malformed time makes the day total unknown, which never counts as heavy.
func DayNote(day string, sessions []ResolvedSession) string {
	count := 0
	total := 0
	known := true
	for _, s := range sessions {
		if s.Day != day || s.Start == OnlineToken {
			continue
		}
		count++
		start, _, errS := ParseClock(s.Start)
		end, _, errE := ParseClock(s.End)
		if errS != nil || errE != nil {
			known = false
			continue
		}
		total += end - start
	}
	switch {
	case count == 0:
		return NoteFreeDay
	case known && total >= heavyDayMinutes:
		return NoteHeavyDay
	case count == 1:
		return NoteLightDay
	default:
		return NoteModerateDay
	}
}

type DayNoteLine struct {
	Day  string
	Note string
}

// DayNotes returns one note per day in DayOrder.
func DayNotes(sessions []ResolvedSession) []DayNoteLine {
	out := make([]DayNoteLine, 0, len(DayOrder))
	for _, day := range DayOrder {
		out = append(out, DayNoteLine{Day: day, Note: DayNote(day, sessions)})
	}
	return out
}
