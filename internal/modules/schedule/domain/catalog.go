package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Day labels in display order. The last label covers the whole weekend.
const (
	Monday    = "Pazartesi"
	Tuesday   = "Salı"
	Wednesday = "Çarşamba"
	Thursday  = "Perşembe"
	Friday    = "Cuma"
	Weekend   = "Cumartesi/Pazar"
)

// DayOrder is the fixed row order of every rendered schedule.
var DayOrder = []string{Monday, Tuesday, Wednesday, Thursday, Friday, Weekend}

// OnlineToken marks a session without a fixed time slot.
const OnlineToken = "Online"

type Catalog struct {
	Term     string    `json:"term" yaml:"term"`
	Programs []Program `json:"programs" yaml:"programs"`
}

type Program struct {
	ID      string   `json:"id" yaml:"id"`
	Name    string   `json:"name" yaml:"name"`
	Courses []Course `json:"courses" yaml:"courses"`
}

type Course struct {
	Key      string    `json:"key" yaml:"key"`
	Name     string    `json:"name" yaml:"name"`
	Sessions []Session `json:"sessions" yaml:"sessions"`
}

type Session struct {
	Day     string `json:"day" yaml:"day"`
	Start   string `json:"start" yaml:"start"`
	End     string `json:"end" yaml:"end"`
	Room    string `json:"room" yaml:"room"`
	Teacher string `json:"teacher" yaml:"teacher"`
	Group   int    `json:"group" yaml:"group"`
}

// CourseID identifies a course across programs as "<program>:<course key>".
type CourseID string

func NewCourseID(programID, courseKey string) CourseID {
	return CourseID(programID + ":" + courseKey)
}

func (id CourseID) Split() (programID, courseKey string, ok bool) {
	programID, courseKey, ok = strings.Cut(string(id), ":")
	return programID, courseKey, ok && programID != "" && courseKey != ""
}

// Groups returns the distinct nonzero group numbers of the course, ascending.
func (c Course) Groups() []int {
	seen := map[int]bool{}
	groups := []int{}
	for _, s := range c.Sessions {
		if s.Group == 0 || seen[s.Group] {
			continue
		}
		seen[s.Group] = true
		groups = append(groups, s.Group)
	}
	sort.Ints(groups)
	return groups
}

// HasGroups reports whether the course offers a group selector at all.
func (c Course) HasGroups() bool {
	return len(c.Groups()) > 0
}

// HasAlternatives reports whether a student could switch to another group.
func (c Course) HasAlternatives() bool {
	return len(c.Groups()) >= 2
}

func (c Course) OffersGroup(group int) bool {
	for _, g := range c.Groups() {
		if g == group {
			return true
		}
	}
	return false
}

// Course looks a course up across all programs, ignoring the active mode.
func (c Catalog) Course(id CourseID) (Program, Course, bool) {
	programID, key, ok := id.Split()
	if !ok {
		return Program{}, Course{}, false
	}
	for _, p := range c.Programs {
		if p.ID != programID {
			continue
		}
		for _, course := range p.Courses {
			if course.Key == key {
				return p, course, true
			}
		}
	}
	return Program{}, Course{}, false
}

func (c Catalog) Validate() error {
	if len(c.Programs) == 0 {
		return fmt.Errorf("catalog has no programs")
	}
	programs := map[string]bool{}
	for _, p := range c.Programs {
		if strings.TrimSpace(p.ID) == "" {
			return fmt.Errorf("program id is required")
		}
		if programs[p.ID] {
			return fmt.Errorf("duplicate program id %q", p.ID)
		}
		programs[p.ID] = true
		keys := map[string]bool{}
		for _, course := range p.Courses {
			if strings.TrimSpace(course.Key) == "" {
				return fmt.Errorf("program %s: course key is required", p.ID)
			}
			if keys[course.Key] {
				return fmt.Errorf("program %s: duplicate course key %q", p.ID, course.Key)
			}
			keys[course.Key] = true
			for _, s := range course.Sessions {
				if s.Group < 0 {
					return fmt.Errorf("course %s: negative group %d", NewCourseID(p.ID, course.Key), s.Group)
				}
			}
		}
	}
	return nil
}

func IsDay(label string) bool {
	for _, d := range DayOrder {
		if d == label {
			return true
		}
	}
	return false
}
