package domain

// ResolvedSession is a session together with the course and program it
// belongs to.
type ResolvedSession struct {
	Session
	ProgramID   string
	ProgramName string
	CourseKey   string
	CourseName  string
}

func (r ResolvedSession) CourseID() CourseID {
	return NewCourseID(r.ProgramID, r.CourseKey)
}

// Project lists the sessions in effect for every selected course of the
// programs visible in mode.
func Project(catalog Catalog, mode Mode, store SelectionStore) []ResolvedSession {
	out := []ResolvedSession{}
	for _, p := range catalog.Visible(mode) {
		for _, c := range p.Courses {
			choice := store.Choice(NewCourseID(p.ID, c.Key))
			if !choice.Selected {
				continue
			}
			for _, s := range sessionsFor(c, choice.Group) {
				out = append(out, ResolvedSession{
					Session:     s,
					ProgramID:   p.ID,
					ProgramName: p.Name,
					CourseKey:   c.Key,
					CourseName:  c.Name,
				})
			}
		}
	}
	return out
}

// sessionsFor keeps the sessions of the chosen group. A filter that matches
// nothing falls back to every session of the course.
func sessionsFor(c Course, group int) []Session {
	picked := make([]Session, 0, len(c.Sessions))
	for _, s := range c.Sessions {
		if s.Group == group {
			picked = append(picked, s)
		}
	}
	if len(picked) == 0 {
		return c.Sessions
	}
	return picked
}
