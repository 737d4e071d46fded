package domain

import "sort"

// AgendaDay is one day of the rendered schedule.
type AgendaDay struct {
	Day      string
	Sessions []ResolvedSession
}

// Agenda groups sessions by DayOrder and sorts each day by start time, Online
// and unparsable starts last. Days without sessions are omitted; sessions on
// labels outside DayOrder are not rendered.
func Agenda(sessions []ResolvedSession) []AgendaDay {
	out := []AgendaDay{}
	for _, day := range DayOrder {
		items := []ResolvedSession{}
		for _, s := range sessions {
			if s.Day == day {
				items = append(items, s)
			}
		}
		if len(items) == 0 {
			continue
		}
		sort.SliceStable(items, func(i, j int) bool {
			return SortKey(items[i].Start) < SortKey(items[j].Start)
		})
		out = append(out, AgendaDay{Day: day, Sessions: items})
	}
	return out
}

// TimeRange is the "start – end" cell text.
func (s Session) TimeRange() string {
	return s.Start + " – " + s.End
}

// RoomOrDash substitutes "-" for an empty room.
func (s Session) RoomOrDash() string {
	if s.Room == "" {
		return "-"
	}
	return s.Room
}

func (s Session) TeacherOrDash() string {
	if s.Teacher == "" {
		return "-"
	}
	return s.Teacher
}
