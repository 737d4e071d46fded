package domain_test

import "github.com/mkarson1997/karatay-ders-program/internal/modules/schedule/domain"

func session(day, start, end string, group int) domain.Session {
	return domain.Session{Day: day, Start: start, End: end, Room: "D-101", Teacher: "Öğr. Gör.", Group: group}
}

func course(key, name string, sessions ...domain.Session) domain.Course {
	return domain.Course{Key: key, Name: name, Sessions: sessions}
}

func catalogOf(first []domain.Course, second ...domain.Course) domain.Catalog {
	c := domain.Catalog{Term: "2026-2027 Güz", Programs: []domain.Program{{ID: "bp1", Name: "1. Sınıf", Courses: first}}}
	if len(second) > 0 {
		c.Programs = append(c.Programs, domain.Program{ID: "bp2", Name: "2. Sınıf", Courses: second})
	}
	return c
}

// selectAll marks every course of the visible programs as selected.
func selectAll(c domain.Catalog, mode domain.Mode) *domain.Selection {
	store := domain.NewSelection(c.Programs)
	for _, p := range c.Visible(mode) {
		for _, course := range p.Courses {
			store.SetSelected(domain.NewCourseID(p.ID, course.Key), true)
		}
	}
	return store
}
