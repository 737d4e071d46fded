package domain

import "fmt"

// MaxResolvePasses bounds the resolver regardless of catalog size.
const MaxResolvePasses = 8

type Resolution struct {
	Sessions  []ResolvedSession
	Conflicts []Conflict
	Changes   []string
	// Passes counts the passes that committed a group switch.
	Passes int
}

// Resolve hill-climbs towards fewer conflicts by moving one course at a time
// to its first alternate group. Only strictly better switches are kept, so
// the conflict count never grows; a local optimum is returned as is.
func Resolve(catalog Catalog, mode Mode, store SelectionStore) Resolution {
	sessions := Project(catalog, mode, store)
	conflicts := DetectConflicts(sessions)
	changes := []string{}
	passes := 0

	for pass := 0; pass < MaxResolvePasses && len(conflicts) > 0; pass++ {
		changed := false
	scan:
		for _, conflict := range conflicts {
			for _, item := range []ResolvedSession{conflict.A, conflict.B} {
				id := item.CourseID()
				_, course, ok := catalog.Course(id)
				if !ok || !course.HasAlternatives() || !store.GroupEnabled(id) {
					continue
				}
				alt, ok := alternateGroup(course.Groups(), store.Choice(id).Group)
				if !ok {
					continue
				}
				var trialSessions []ResolvedSession
				var trialConflicts []Conflict
				kept := Try(store, id, alt, func() bool {
					trialSessions = Project(catalog, mode, store)
					trialConflicts = DetectConflicts(trialSessions)
					return len(trialConflicts) < len(conflicts)
				})
				if !kept {
					continue
				}
				changes = append(changes, fmt.Sprintf("Otomatik grup değişti: %s → Grup %d", item.CourseName, alt))
				sessions = trialSessions
				conflicts = trialConflicts
				changed = true
				break scan
			}
		}
		if !changed {
			break
		}
		passes++
	}

	return Resolution{Sessions: sessions, Conflicts: conflicts, Changes: changes, Passes: passes}
}

func alternateGroup(groups []int, current int) (int, bool) {
	for _, g := range groups {
		if g != current {
			return g, true
		}
	}
	return 0, false
}
