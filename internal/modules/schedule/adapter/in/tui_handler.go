package in

import (
	"context"

	"github.com/mkarson1997/karatay-ders-program/internal/modules/schedule/dto"
	schedulein "github.com/mkarson1997/karatay-ders-program/internal/modules/schedule/port/in"
)

type TUIHandler struct {
	usecase schedulein.Usecase
}

func NewTUIHandler(usecase schedulein.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) ListCourses(ctx context.Context, mode string) (dto.CatalogOutput, error) {
	return h.usecase.ListCourses(ctx, dto.ListCoursesInput{Mode: mode})
}

func (h TUIHandler) Preview(ctx context.Context, mode string, selections []dto.CourseChoice) (dto.PreviewOutput, error) {
	return h.usecase.Preview(ctx, dto.PreviewInput{Mode: mode, Selections: selections})
}

func (h TUIHandler) Render(preview dto.PreviewOutput) string {
	return RenderPreview(preview)
}
