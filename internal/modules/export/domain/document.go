package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/mkarson1997/karatay-ders-program/internal/platform/slug"
)

type Format string

const (
	FormatPDF      Format = "pdf"
	FormatXLSX     Format = "xlsx"
	FormatICS      Format = "ics"
	FormatMarkdown Format = "md"
)

func ParseFormat(raw string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(raw))); f {
	case "":
		return FormatPDF, nil
	case FormatPDF, FormatXLSX, FormatICS, FormatMarkdown:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format %q", raw)
	}
}

// Entry is one session row of the exported table.
type Entry struct {
	Day        string
	CourseID   string
	CourseName string
	Start      string
	End        string
	Room       string
	Teacher    string
	Group      int
}

func (e Entry) TimeRange() string {
	return e.Start + " – " + e.End
}

func (e Entry) RoomOrDash() string {
	if strings.TrimSpace(e.Room) == "" {
		return "-"
	}
	return e.Room
}

type NoteLine struct {
	Day  string
	Note string
}

func (n NoteLine) String() string {
	return n.Day + ": " + n.Note
}

// Schedule is the resolved selection handed over for export.
type Schedule struct {
	Term      string
	Mode      string
	ModeTitle string
	Entries   []Entry
	Notes     []NoteLine
	Conflicts int
	Warnings  []string
	Courses   []string
}

// Document carries everything a renderer needs besides the drawing surface.
type Document struct {
	Title       string
	Subtitle    string
	Student     string
	Institution string
	Department  string
	Schedule    Schedule
	CreatedAt   time.Time
}

func NewDocument(schedule Schedule, institution, department, student string, now time.Time) Document {
	student = strings.TrimSpace(student)
	return Document{
		Title:       fmt.Sprintf("Haftalık Ders Programı – %s (%s)", department, schedule.ModeTitle),
		Subtitle:    schedule.Term + " • " + institution,
		Student:     student,
		Institution: institution,
		Department:  department,
		Schedule:    schedule,
		CreatedAt:   now,
	}
}

// StudentLine is empty when no student name was given.
func (d Document) StudentLine() string {
	if d.Student == "" {
		return ""
	}
	return "Öğrenci: " + d.Student
}

// FileName is ders_programi.<ext>, or ders_programi-<slug>.<ext> with a student.
func FileName(format Format, student string) string {
	base := "ders_programi"
	if s := strings.TrimSpace(student); s != "" {
		base += "-" + slug.Make(s)
	}
	return base + "." + string(format)
}

// Record is one entry of the local export history.
type Record struct {
	ID        string
	Format    Format
	Path      string
	Mode      string
	Student   string
	Courses   int
	Sessions  int
	Pages     int
	CreatedAt time.Time
}

// Output is what a renderer wrote.
type Output struct {
	Path  string
	Pages int
	Bytes int64
}

// Choice is a selected course as the schedule side understands it.
type Choice struct {
	CourseID string
	Group    int
}

// Inspection is the text read back from an exported PDF.
type Inspection struct {
	Path  string
	Pages int
	Lines []string
}
