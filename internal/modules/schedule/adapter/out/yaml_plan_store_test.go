package out_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	scheduleout "github.com/mkarson1997/karatay-ders-program/internal/modules/schedule/adapter/out"
	"github.com/mkarson1997/karatay-ders-program/internal/modules/schedule/domain"
	apperrors "github.com/mkarson1997/karatay-ders-program/internal/platform/errors"
)

func TestYAMLPlanStoreSaveLoad(t *testing.T) {
	t.Parallel()
	store := scheduleout.NewYAMLPlanStore()
	path := filepath.Join(t.TempDir(), "plans", "guz.yaml")
	plan := domain.Plan{
		Mode:    domain.ModeMixed,
		Student: "Ayşe Yılmaz",
		Courses: []domain.PlanCourse{{ID: "bp1:MAT101", Group: 2}, {ID: "bp2:WEB"}},
	}
	if err := store.Save(context.Background(), path, plan); err != nil {
		t.Fatalf("save plan: %v", err)
	}
	got, err := store.Load(context.Background(), path)
	if err != nil {
		t.Fatalf("load plan: %v", err)
	}
	if got.Mode != domain.ModeMixed || got.Student != "Ayşe Yılmaz" || len(got.Courses) != 2 || got.Courses[0].Group != 2 {
		t.Fatalf("unexpected plan %+v", got)
	}
}

func TestYAMLPlanStoreMissing(t *testing.T) {
	t.Parallel()
	_, err := scheduleout.NewYAMLPlanStore().Load(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
