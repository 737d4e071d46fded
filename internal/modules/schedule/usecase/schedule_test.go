package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/mkarson1997/karatay-ders-program/internal/modules/schedule/domain"
	"github.com/mkarson1997/karatay-ders-program/internal/modules/schedule/dto"
	schedulein "github.com/mkarson1997/karatay-ders-program/internal/modules/schedule/port/in"
	"github.com/mkarson1997/karatay-ders-program/internal/modules/schedule/service"
	"github.com/mkarson1997/karatay-ders-program/internal/modules/schedule/usecase"
	apperrors "github.com/mkarson1997/karatay-ders-program/internal/platform/errors"
)

type fakeCatalogSource struct {
	catalog domain.Catalog
	loads   int
}

func (f *fakeCatalogSource) Load(context.Context) (domain.Catalog, error) {
	f.loads++
	return f.catalog, nil
}

type fakePlanStore struct {
	plans map[string]domain.Plan
}

func (f *fakePlanStore) Load(_ context.Context, path string) (domain.Plan, error) {
	plan, ok := f.plans[path]
	if !ok {
		return domain.Plan{}, apperrors.ErrNotFound
	}
	return plan, nil
}

func (f *fakePlanStore) Save(_ context.Context, path string, plan domain.Plan) error {
	f.plans[path] = plan
	return nil
}

func testCatalog() domain.Catalog {
	return domain.Catalog{
		Term: "2026-2027 Güz",
		Programs: []domain.Program{
			{ID: "bp1", Name: "1. Sınıf", Courses: []domain.Course{
				{Key: "A", Name: "Ders A", Sessions: []domain.Session{
					{Day: domain.Monday, Start: "09:00", End: "10:00", Group: 1},
					{Day: domain.Monday, Start: "13:00", End: "14:00", Group: 2},
				}},
				{Key: "B", Name: "Ders B", Sessions: []domain.Session{
					{Day: domain.Monday, Start: "09:30", End: "10:30", Room: "B-1"},
				}},
				{Key: "C", Name: "Ders C", Sessions: []domain.Session{
					{Day: domain.Monday, Start: "09:00", End: "11:00"},
				}},
			}},
			{ID: "bp2", Name: "2. Sınıf", Courses: []domain.Course{
				{Key: "W", Name: "Web", Sessions: []domain.Session{{Day: domain.Friday, Start: "Online", End: "Online"}}},
			}},
		},
	}
}

func newInteractor(t *testing.T) (*fakeCatalogSource, *fakePlanStore, schedulein.Usecase) {
	t.Helper()
	source := &fakeCatalogSource{catalog: testCatalog()}
	plans := &fakePlanStore{plans: map[string]domain.Plan{}}
	svc := service.NewScheduleService(zap.NewNop(), source, plans)
	return source, plans, usecase.NewInteractor(svc)
}

func TestListCoursesByMode(t *testing.T) {
	t.Parallel()
	source, _, uc := newInteractor(t)
	out, err := uc.ListCourses(context.Background(), dto.ListCoursesInput{Mode: "y1"})
	if err != nil {
		t.Fatalf("list courses: %v", err)
	}
	if len(out.Programs) != 1 || len(out.Programs[0].Courses) != 3 {
		t.Fatalf("unexpected programs %+v", out.Programs)
	}
	a := out.Programs[0].Courses[0]
	if a.ID != "bp1:A" || !a.GroupSelectable || a.GroupHint != "Grup seç (varsa)" || len(a.Groups) != 2 || a.Groups[1].Label != "Grup 2" {
		t.Fatalf("unexpected course A %+v", a)
	}
	b := out.Programs[0].Courses[1]
	if b.GroupSelectable || b.GroupHint != "Tek seçenek" || b.Groups[0].Label != "Tek" {
		t.Fatalf("unexpected course B %+v", b)
	}
	if _, err := uc.ListCourses(context.Background(), dto.ListCoursesInput{Mode: "mix"}); err != nil {
		t.Fatalf("list mixed: %v", err)
	}
	if source.loads != 1 {
		t.Fatalf("catalog should be cached, loaded %d times", source.loads)
	}
	if _, err := uc.ListCourses(context.Background(), dto.ListCoursesInput{Mode: "y9"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid mode, got %v", err)
	}
}

func TestPreviewResolvesAndReportsChoices(t *testing.T) {
	t.Parallel()
	_, _, uc := newInteractor(t)
	out, err := uc.Preview(context.Background(), dto.PreviewInput{
		Mode:       "y1",
		Selections: []dto.CourseChoice{{CourseID: "bp1:A"}, {CourseID: "bp1:B"}},
	})
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if len(out.Conflicts) != 0 || len(out.Changes) != 1 {
		t.Fatalf("expected one auto fix, got %+v", out)
	}
	if out.Warnings[0] != "✅ Otomatik düzeltme:" {
		t.Fatalf("unexpected warnings %q", out.Warnings)
	}
	if len(out.Choices) != 2 || out.Choices[0].CourseID != "bp1:A" || out.Choices[0].Group != 2 {
		t.Fatalf("final choices should carry the switched group, got %+v", out.Choices)
	}
	if len(out.Agenda) != 1 || out.Agenda[0].Sessions[0].CourseName != "Ders B" {
		t.Fatalf("unexpected agenda %+v", out.Agenda)
	}
	if out.Agenda[0].Sessions[1].Room != "-" || out.Agenda[0].Sessions[1].TimeRange != "13:00 – 14:00" {
		t.Fatalf("unexpected cell text %+v", out.Agenda[0].Sessions[1])
	}
	if len(out.Notes) != 6 || out.Notes[0].Note != domain.NoteModerateDay {
		t.Fatalf("unexpected notes %+v", out.Notes)
	}
}

func TestPreviewExportWordingAndUnresolved(t *testing.T) {
	t.Parallel()
	_, _, uc := newInteractor(t)
	out, err := uc.Preview(context.Background(), dto.PreviewInput{
		Selections: []dto.CourseChoice{{CourseID: "bp1:B"}, {CourseID: "bp1:C"}},
		ForExport:  true,
	})
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if len(out.Conflicts) != 1 {
		t.Fatalf("expected one conflict, got %+v", out.Conflicts)
	}
	joined := strings.Join(out.Warnings, "\n")
	if !strings.Contains(joined, "PDF üretilmedi") || !strings.Contains(joined, `"Ders B" ↔ "Ders C"`) {
		t.Fatalf("unexpected warnings:\n%s", joined)
	}
}

func TestPreviewRejectsUnknownCourseAndGroup(t *testing.T) {
	t.Parallel()
	_, _, uc := newInteractor(t)
	_, err := uc.Preview(context.Background(), dto.PreviewInput{Selections: []dto.CourseChoice{{CourseID: "bp1:Z"}}})
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	_, err = uc.Preview(context.Background(), dto.PreviewInput{Selections: []dto.CourseChoice{{CourseID: "bp1:A", Group: 5}}})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid group, got %v", err)
	}
}

func TestPreviewEmptySelection(t *testing.T) {
	t.Parallel()
	_, _, uc := newInteractor(t)
	out, err := uc.Preview(context.Background(), dto.PreviewInput{Mode: "mix"})
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if len(out.Sessions) != 0 || len(out.Agenda) != 0 || len(out.Warnings) != 0 {
		t.Fatalf("expected empty preview, got %+v", out)
	}
	for _, note := range out.Notes {
		if note.Note != domain.NoteFreeDay {
			t.Fatalf("expected free days, got %+v", note)
		}
	}
}

func TestSaveAndLoadPlan(t *testing.T) {
	t.Parallel()
	_, plans, uc := newInteractor(t)
	_, err := uc.SavePlan(context.Background(), dto.SavePlanInput{
		Path: "guz.yaml", Mode: "mix", Student: "Ayşe",
		Selections: []dto.CourseChoice{{CourseID: "bp2:W"}},
	})
	if err != nil {
		t.Fatalf("save plan: %v", err)
	}
	if plans.plans["guz.yaml"].Mode != domain.ModeMixed {
		t.Fatalf("plan not stored: %+v", plans.plans)
	}
	got, err := uc.LoadPlan(context.Background(), "guz.yaml")
	if err != nil {
		t.Fatalf("load plan: %v", err)
	}
	if got.Mode != "mix" || got.Student != "Ayşe" || len(got.Selections) != 1 {
		t.Fatalf("unexpected plan %+v", got)
	}
	if _, err := uc.SavePlan(context.Background(), dto.SavePlanInput{Path: "bad.yaml", Selections: []dto.CourseChoice{{CourseID: "nope:X"}}}); err == nil {
		t.Fatalf("expected invalid plan to be rejected")
	}
	if _, ok := plans.plans["bad.yaml"]; ok {
		t.Fatalf("invalid plan must not be written")
	}
}
