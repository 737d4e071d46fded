package in

import (
	"context"

	"github.com/mkarson1997/karatay-ders-program/internal/modules/schedule/dto"
)

type Usecase interface {
	ListCourses(ctx context.Context, input dto.ListCoursesInput) (dto.CatalogOutput, error)
	Preview(ctx context.Context, input dto.PreviewInput) (dto.PreviewOutput, error)
	LoadPlan(ctx context.Context, path string) (dto.PlanOutput, error)
	SavePlan(ctx context.Context, input dto.SavePlanInput) (dto.PlanOutput, error)
}
