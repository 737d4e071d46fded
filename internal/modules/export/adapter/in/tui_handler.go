package in

import (
	"context"

	"github.com/mkarson1997/karatay-ders-program/internal/modules/export/dto"
	exportin "github.com/mkarson1997/karatay-ders-program/internal/modules/export/port/in"
)

type TUIHandler struct {
	usecase exportin.Usecase
}

func NewTUIHandler(usecase exportin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

// Export writes into the configured output directory; an empty format means pdf.
func (h TUIHandler) Export(ctx context.Context, format, mode, student string, selections []dto.CourseChoice) (dto.ExportOutput, error) {
	return h.usecase.Export(ctx, dto.ExportInput{Format: format, Mode: mode, Student: student, Selections: selections})
}

func (h TUIHandler) History(ctx context.Context, limit int) ([]dto.HistoryEntry, error) {
	return h.usecase.History(ctx, dto.HistoryInput{Limit: limit})
}
