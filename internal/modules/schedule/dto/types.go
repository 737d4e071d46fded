package dto

// CourseChoice is one selected course. Group 0 keeps the course default.
type CourseChoice struct {
	CourseID string
	Group    int
}

type ListCoursesInput struct {
	Mode string
}

type CatalogOutput struct {
	Term      string
	Mode      string
	ModeTitle string
	Programs  []ProgramOutput
}

type ProgramOutput struct {
	ID      string
	Name    string
	Courses []CourseOutput
}

type CourseOutput struct {
	ID   string
	Key  string
	Name string
	// GroupHint is "Grup seç (varsa)" or "Tek seçenek".
	GroupHint       string
	GroupSelectable bool
	Groups          []GroupOption
	DefaultGroup    int
	Sessions        []SessionOutput
}

type GroupOption struct {
	Value int
	Label string
}

type SessionOutput struct {
	CourseID    string
	ProgramName string
	CourseName  string
	Day         string
	Start       string
	End         string
	TimeRange   string
	Room        string
	Teacher     string
	Group       int
}

type PreviewInput struct {
	Mode       string
	Selections []CourseChoice
	// ForExport switches the conflict header to the export wording.
	ForExport bool
}

type ConflictOutput struct {
	Day         string
	A           SessionOutput
	B           SessionOutput
	Description string
}

type AgendaDayOutput struct {
	Day      string
	Sessions []SessionOutput
}

type DayNoteOutput struct {
	Day  string
	Note string
}

type PreviewOutput struct {
	Term      string
	Mode      string
	ModeTitle string
	Sessions  []SessionOutput
	Agenda    []AgendaDayOutput
	Notes     []DayNoteOutput
	Conflicts []ConflictOutput
	Changes   []string
	Warnings  []string
	Passes    int
	// Choices is the selection after resolving, to be applied back by the caller.
	Choices []CourseChoice
}

type PlanOutput struct {
	Path       string
	Mode       string
	Student    string
	Selections []CourseChoice
}

type SavePlanInput struct {
	Path       string
	Mode       string
	Student    string
	Selections []CourseChoice
}
