package out_test

import (
	"context"
	"testing"

	exportout "github.com/mkarson1997/karatay-ders-program/internal/modules/export/adapter/out"
	"github.com/mkarson1997/karatay-ders-program/internal/modules/export/domain"
	scheduledto "github.com/mkarson1997/karatay-ders-program/internal/modules/schedule/dto"
)

type fakeSchedule struct {
	input scheduledto.PreviewInput
}

func (f *fakeSchedule) ListCourses(context.Context, scheduledto.ListCoursesInput) (scheduledto.CatalogOutput, error) {
	return scheduledto.CatalogOutput{}, nil
}

func (f *fakeSchedule) Preview(_ context.Context, input scheduledto.PreviewInput) (scheduledto.PreviewOutput, error) {
	f.input = input
	return scheduledto.PreviewOutput{
		Term: "2026 Güz", Mode: "y2", ModeTitle: "2. Sınıf",
		Sessions:  []scheduledto.SessionOutput{{CourseID: "bp2:WEB", CourseName: "Web", Day: "Cuma", Start: "09:00", End: "10:00", Room: "-"}},
		Notes:     []scheduledto.DayNoteOutput{{Day: "Cuma", Note: "Hafif gün. Tek ders, tekrar için ideal."}},
		Conflicts: []scheduledto.ConflictOutput{{Day: "Cuma"}},
		Warnings:  []string{"⚠️ Çakışma var: PDF üretilmedi."},
		Choices:   []scheduledto.CourseChoice{{CourseID: "bp2:WEB", Group: 1}},
	}, nil
}

func (f *fakeSchedule) LoadPlan(context.Context, string) (scheduledto.PlanOutput, error) {
	return scheduledto.PlanOutput{}, nil
}

func (f *fakeSchedule) SavePlan(context.Context, scheduledto.SavePlanInput) (scheduledto.PlanOutput, error) {
	return scheduledto.PlanOutput{}, nil
}

func TestScheduleAdapterAsksForExportWording(t *testing.T) {
	t.Parallel()
	fake := &fakeSchedule{}
	got, err := exportout.NewScheduleAdapter(fake).Schedule(context.Background(), "y2", []domain.Choice{{CourseID: "bp2:WEB", Group: 1}})
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if !fake.input.ForExport || fake.input.Mode != "y2" || fake.input.Selections[0].Group != 1 {
		t.Fatalf("unexpected preview input %+v", fake.input)
	}
	if got.Conflicts != 1 || len(got.Entries) != 1 || got.Entries[0].Day != "Cuma" || got.ModeTitle != "2. Sınıf" {
		t.Fatalf("unexpected schedule %+v", got)
	}
	if len(got.Courses) != 1 || len(got.Notes) != 1 {
		t.Fatalf("unexpected courses/notes %+v", got)
	}
}
