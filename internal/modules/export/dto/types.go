package dto

type CourseChoice struct {
	CourseID string
	Group    int
}

type ExportInput struct {
	Format     string
	Mode       string
	Student    string
	OutputDir  string
	Selections []CourseChoice
}

type ExportOutput struct {
	Path     string
	Format   string
	Pages    int
	Bytes    int64
	Warnings []string
	// Failure is set when the document could not be written.
	Failure  []string
	RecordID string
}

type HistoryInput struct {
	Limit int
}

type HistoryEntry struct {
	ID        string
	Format    string
	Path      string
	Mode      string
	Student   string
	Courses   int
	Sessions  int
	Pages     int
	CreatedAt string
}

type InspectOutput struct {
	Path  string
	Pages int
	Lines []string
}
