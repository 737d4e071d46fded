package domain

// Choice is one course's entry in the selection store.
type Choice struct {
	Selected bool
	Group    int
}

// SelectionStore is the state behind the course picker. The core reads
// choices and may rewrite a group, but never toggles Selected.
type SelectionStore interface {
	Choice(id CourseID) Choice
	SetGroup(id CourseID, group int)
	GroupEnabled(id CourseID) bool
}

// Selection is the in-memory store used by every front end.
type Selection struct {
	choices map[CourseID]Choice
	enabled map[CourseID]bool
	order   []CourseID
}

// NewSelection registers every course of the given programs as unselected,
// pointing at its lowest group (or 0 when the course is ungrouped).
func NewSelection(programs []Program) *Selection {
	s := &Selection{choices: map[CourseID]Choice{}, enabled: map[CourseID]bool{}}
	for _, p := range programs {
		for _, c := range p.Courses {
			id := NewCourseID(p.ID, c.Key)
			group := 0
			if groups := c.Groups(); len(groups) > 0 {
				group = groups[0]
			}
			if _, exists := s.choices[id]; !exists {
				s.order = append(s.order, id)
			}
			s.choices[id] = Choice{Group: group}
			s.enabled[id] = c.HasGroups()
		}
	}
	return s
}

func (s *Selection) Choice(id CourseID) Choice {
	return s.choices[id]
}

func (s *Selection) SetGroup(id CourseID, group int) {
	c, ok := s.choices[id]
	if !ok {
		return
	}
	c.Group = group
	s.choices[id] = c
}

func (s *Selection) GroupEnabled(id CourseID) bool {
	return s.enabled[id]
}

// SetSelected is the user-facing toggle.
func (s *Selection) SetSelected(id CourseID, selected bool) bool {
	c, ok := s.choices[id]
	if !ok {
		return false
	}
	c.Selected = selected
	s.choices[id] = c
	return true
}

func (s *Selection) Known(id CourseID) bool {
	_, ok := s.choices[id]
	return ok
}

// Selected lists the selected courses in registration order.
func (s *Selection) Selected() []CourseID {
	out := []CourseID{}
	for _, id := range s.order {
		if s.choices[id].Selected {
			out = append(out, id)
		}
	}
	return out
}

// Try applies group to id, lets keep inspect the result and rolls the change
// back unless keep returns true. It reports whether the change was kept.
func Try(store SelectionStore, id CourseID, group int, keep func() bool) bool {
	previous := store.Choice(id).Group
	store.SetGroup(id, group)
	if keep() {
		return true
	}
	store.SetGroup(id, previous)
	return false
}
