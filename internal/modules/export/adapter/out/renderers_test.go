package out_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	exportout "github.com/mkarson1997/karatay-ders-program/internal/modules/export/adapter/out"
	"github.com/mkarson1997/karatay-ders-program/internal/modules/export/domain"
	apperrors "github.com/mkarson1997/karatay-ders-program/internal/platform/errors"
	"github.com/mkarson1997/karatay-ders-program/internal/platform/markdown"
)

var created = time.Date(2026, 9, 23, 12, 0, 0, 0, time.UTC)

func sampleDocument() domain.Document {
	schedule := domain.Schedule{
		Term:      "2026-2027 Guz",
		Mode:      "y1",
		ModeTitle: "1. Sinif",
		Entries: []domain.Entry{
			{Day: "Cuma", CourseID: "bp1:WEB", CourseName: "Web Programlama", Start: "13:00", End: "15:00", Room: "Lab-2"},
			{Day: "Pazartesi", CourseID: "bp1:MAT", CourseName: "Matematik", Start: "09:00", End: "10:30", Room: "A-101", Teacher: "Dr. Ada", Group: 2},
			{Day: "Salı", CourseID: "bp1:UZK", CourseName: "Uzaktan Egitim", Start: "Online", End: "Online"},
		},
		Notes: []domain.NoteLine{
			{Day: "Pazartesi", Note: "Orta yogunluk."},
			{Day: "Cuma", Note: "Hafif gun."},
		},
	}
	return domain.NewDocument(schedule, "KTO Karatay", "Bilgisayar Programciligi", "Ali Veli", created)
}

func TestPDFRendererCoreFontAndInspector(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "ders_programi.pdf")
	out, err := exportout.NewPDFRenderer("").Render(context.Background(), sampleDocument(), path)
	if err != nil {
		t.Fatalf("render pdf: %v", err)
	}
	if out.Pages != 1 || out.Bytes == 0 {
		t.Fatalf("unexpected output %+v", out)
	}

	inspection, err := exportout.NewInspector().Inspect(context.Background(), path)
	if err != nil {
		t.Fatalf("inspect pdf: %v", err)
	}
	if inspection.Pages != 1 {
		t.Fatalf("expected one page, got %d", inspection.Pages)
	}
	text := strings.Join(inspection.Lines, "\n")
	for _, want := range []string{"Notlar:", "Matematik", "Ali Veli", "Lab-2"} {
		if !strings.Contains(text, want) {
			t.Fatalf("missing %q in:\n%s", want, text)
		}
	}
	if strings.Index(text, "Matematik") > strings.Index(text, "Web Programlama") {
		t.Fatalf("Monday rows must come before Friday rows:\n%s", text)
	}
}

func TestPDFRendererMissingFontIsAssetError(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	_, err := exportout.NewPDFRenderer(filepath.Join(dir, "missing.ttf")).Render(context.Background(), sampleDocument(), filepath.Join(dir, "x.pdf"))
	if !errors.Is(err, apperrors.ErrAssetUnavailable) {
		t.Fatalf("expected asset error, got %v", err)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "x.pdf")); !os.IsNotExist(statErr) {
		t.Fatalf("no file should be written when the font is missing")
	}
}

func TestXLSXRenderer(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "ders_programi.xlsx")
	if _, err := exportout.NewXLSXRenderer().Render(context.Background(), sampleDocument(), path); err != nil {
		t.Fatalf("render xlsx: %v", err)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open xlsx: %v", err)
	}
	defer f.Close()
	rows, err := f.GetRows("Program")
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	header := -1
	for i, row := range rows {
		if len(row) > 0 && row[0] == "Gün" {
			header = i
		}
	}
	if header < 0 || len(rows) != header+4 {
		t.Fatalf("expected a header and 3 sessions, got %v", rows)
	}
	body := rows[header+1:]
	if body[0][0] != "Pazartesi" || body[0][2] != "09:00 – 10:30" || body[1][0] != "Salı" || body[2][3] != "Lab-2" {
		t.Fatalf("unexpected rows %v", body)
	}
	notes, err := f.GetRows("Notlar")
	if err != nil || len(notes) != 3 {
		t.Fatalf("unexpected notes %v %v", notes, err)
	}
}

func TestICSRendererWeeklyEvents(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "ders_programi.ics")
	renderer := exportout.NewICSRenderer(exportout.ICSSettings{TermStart: "2026-09-23", TermWeeks: 14, Timezone: "Europe/Istanbul"})
	if _, err := renderer.Render(context.Background(), sampleDocument(), path); err != nil {
		t.Fatalf("render ics: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read ics: %v", err)
	}
	text := string(raw)
	if strings.Count(text, "BEGIN:VEVENT") != 2 {
		t.Fatalf("online session must be skipped:\n%s", text)
	}
	if !strings.Contains(text, "RRULE:FREQ=WEEKLY;COUNT=14") {
		t.Fatalf("missing weekly rule:\n%s", text)
	}
	// Monday of the term week, 09:00 Istanbul is 06:00 UTC.
	if !strings.Contains(text, "DTSTART:20260921T060000Z") {
		t.Fatalf("unexpected Monday start:\n%s", text)
	}
	if !strings.Contains(text, "SUMMARY:Web Programlama") {
		t.Fatalf("missing Friday event:\n%s", text)
	}
}

func TestICSRendererRejectsBadTermStart(t *testing.T) {
	t.Parallel()
	renderer := exportout.NewICSRenderer(exportout.ICSSettings{TermStart: "23.09.2026", Timezone: "UTC"})
	_, err := renderer.Render(context.Background(), sampleDocument(), filepath.Join(t.TempDir(), "x.ics"))
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestMarkdownRenderer(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "ders_programi.md")
	if _, err := exportout.NewMarkdownRenderer().Render(context.Background(), sampleDocument(), path); err != nil {
		t.Fatalf("render md: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read md: %v", err)
	}
	meta := struct {
		Title   string `yaml:"title"`
		Student string `yaml:"student"`
	}{}
	body, err := markdown.SplitFrontmatter(string(raw), &meta)
	if err != nil {
		t.Fatalf("split frontmatter: %v", err)
	}
	if meta.Student != "Ali Veli" || !strings.HasPrefix(meta.Title, "Haftalık Ders Programı") {
		t.Fatalf("unexpected meta %+v", meta)
	}
	if !strings.Contains(body, "| Pazartesi | Matematik | 09:00 – 10:30 | A-101 |") || !strings.Contains(body, "- Cuma: Hafif gun.") {
		t.Fatalf("unexpected body:\n%s", body)
	}
}

func TestInspectorReadsMarkdownExport(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "ders_programi-ali-veli.md")
	if _, err := exportout.NewMarkdownRenderer().Render(context.Background(), sampleDocument(), path); err != nil {
		t.Fatalf("render md: %v", err)
	}
	inspection, err := exportout.NewInspector().Inspect(context.Background(), path)
	if err != nil {
		t.Fatalf("inspect md: %v", err)
	}
	if inspection.Pages != 1 {
		t.Fatalf("expected a single page, got %d", inspection.Pages)
	}
	joined := strings.Join(inspection.Lines, "\n")
	for _, want := range []string{"student: Ali Veli", "mode: y1", "| Pazartesi | Matematik | 09:00 – 10:30 | A-101 |", "## Notlar"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("inspection missing %q:\n%s", want, joined)
		}
	}
}

func TestInspectorRejectsUnknownExtension(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "program.xlsx")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := exportout.NewInspector().Inspect(context.Background(), path)
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}
