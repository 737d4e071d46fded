package app_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	exportdto "github.com/mkarson1997/karatay-ders-program/internal/modules/export/dto"
	scheduledto "github.com/mkarson1997/karatay-ders-program/internal/modules/schedule/dto"
	"github.com/mkarson1997/karatay-ders-program/internal/ui/app"
	"github.com/mkarson1997/karatay-ders-program/internal/ui/components"
	coursesview "github.com/mkarson1997/karatay-ders-program/internal/ui/views/courses"
)

type fakeSchedule struct{}

func (fakeSchedule) ListCourses(context.Context, string) (scheduledto.CatalogOutput, error) {
	return catalog(), nil
}

func (fakeSchedule) Preview(context.Context, string, []scheduledto.CourseChoice) (scheduledto.PreviewOutput, error) {
	return scheduledto.PreviewOutput{}, nil
}

func (fakeSchedule) Render(scheduledto.PreviewOutput) string { return "" }

type fakeExport struct {
	format, mode, student string
	choices               []exportdto.CourseChoice
	out                   exportdto.ExportOutput
	err                   error
}

func (f *fakeExport) Export(_ context.Context, format, mode, student string, selections []exportdto.CourseChoice) (exportdto.ExportOutput, error) {
	f.format, f.mode, f.student, f.choices = format, mode, student, selections
	return f.out, f.err
}

func (f *fakeExport) History(context.Context, int) ([]exportdto.HistoryEntry, error) {
	return nil, nil
}

func catalog() scheduledto.CatalogOutput {
	return scheduledto.CatalogOutput{
		Mode:      "y1",
		ModeTitle: "1. Sınıf",
		Programs: []scheduledto.ProgramOutput{{
			ID:   "bp1",
			Name: "1. Sınıf",
			Courses: []scheduledto.CourseOutput{{
				ID: "bp1:MAT", Key: "MAT", Name: "Matematik",
				GroupHint: "Tek seçenek",
				Groups:    []scheduledto.GroupOption{{Value: 0, Label: "Tek"}},
			}},
		}},
	}
}

func ready(t *testing.T, exp *fakeExport) tea.Model {
	t.Helper()
	var model tea.Model = app.NewModel(fakeSchedule{}, exp, "y1", "")
	model, _ = model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	model, _ = model.Update(coursesview.LoadedMsg{Catalog: catalog()})
	return model
}

func TestExportKeySendsStudentAndSelection(t *testing.T) {
	t.Parallel()
	exp := &fakeExport{out: exportdto.ExportOutput{Path: "ders_programi-ali-veli.pdf", Pages: 1}}
	model := ready(t, exp)
	model, _ = model.Update(components.PaletteSubmitMsg{Input: "ogrenci Ali Veli"})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeySpace})

	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})
	if cmd == nil {
		t.Fatalf("expected export command")
	}
	model, _ = model.Update(cmd())

	if exp.format != "pdf" || exp.mode != "y1" || exp.student != "Ali Veli" {
		t.Fatalf("unexpected export call %+v", exp)
	}
	if len(exp.choices) != 1 || exp.choices[0].CourseID != "bp1:MAT" {
		t.Fatalf("unexpected choices %+v", exp.choices)
	}
	if view := model.View(); !strings.Contains(view, "kaydedildi") || !strings.Contains(view, "Ali Veli") {
		t.Fatalf("status bar missing export result:\n%s", view)
	}
}

func TestExportFailureShowsFailureBlock(t *testing.T) {
	t.Parallel()
	exp := &fakeExport{
		out: exportdto.ExportOutput{Failure: []string{"❌ PDF indirilemedi.", "Yazı tipi dosyasını ve çıktı klasörünü kontrol et."}},
		err: errors.New("font missing"),
	}
	model := ready(t, exp)
	model, cmd := model.Update(components.PaletteSubmitMsg{Input: "aktar xlsx"})
	if cmd == nil {
		t.Fatalf("expected export command")
	}
	model, _ = model.Update(cmd())
	if exp.format != "xlsx" {
		t.Fatalf("palette format not passed, got %q", exp.format)
	}
	if view := model.View(); !strings.Contains(view, "PDF indirilemedi") {
		t.Fatalf("failure block not shown:\n%s", view)
	}
}

func TestUnknownPaletteCommand(t *testing.T) {
	t.Parallel()
	model := ready(t, &fakeExport{})
	model, _ = model.Update(components.PaletteSubmitMsg{Input: "uc"})
	if view := model.View(); !strings.Contains(view, "bilinmeyen komut: uc") {
		t.Fatalf("unknown command not reported:\n%s", view)
	}
}
