package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownCourse = errors.New("unknown course")
	ErrUnknownGroup  = errors.New("unknown group")
)

// Plan is a saved selection that can be replayed by any front end.
type Plan struct {
	Mode    Mode         `yaml:"mode"`
	Student string       `yaml:"student,omitempty"`
	Courses []PlanCourse `yaml:"courses"`
}

// PlanCourse selects one course; Group 0 keeps the course default.
type PlanCourse struct {
	ID    CourseID `yaml:"id"`
	Group int      `yaml:"group,omitempty"`
}

// Apply replays the plan courses onto store, validating each entry against
// the catalog.
func (p Plan) Apply(catalog Catalog, store *Selection) error {
	for _, pc := range p.Courses {
		_, course, ok := catalog.Course(pc.ID)
		if !ok || !store.Known(pc.ID) {
			return fmt.Errorf("%w: course %s", ErrUnknownCourse, pc.ID)
		}
		if pc.Group != 0 {
			if !course.OffersGroup(pc.Group) {
				return fmt.Errorf("%w: course %s has no group %d", ErrUnknownGroup, pc.ID, pc.Group)
			}
			store.SetGroup(pc.ID, pc.Group)
		}
		store.SetSelected(pc.ID, true)
	}
	return nil
}
