package in

import (
	"context"

	"github.com/mkarson1997/karatay-ders-program/internal/modules/export/dto"
	exportin "github.com/mkarson1997/karatay-ders-program/internal/modules/export/port/in"
)

type CLIHandler struct {
	usecase exportin.Usecase
}

func NewCLIHandler(usecase exportin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Export(ctx context.Context, format, mode, student, outputDir string, selections []dto.CourseChoice) (dto.ExportOutput, error) {
	return h.usecase.Export(ctx, dto.ExportInput{
		Format:     format,
		Mode:       mode,
		Student:    student,
		OutputDir:  outputDir,
		Selections: selections,
	})
}

func (h CLIHandler) History(ctx context.Context, limit int) ([]dto.HistoryEntry, error) {
	return h.usecase.History(ctx, dto.HistoryInput{Limit: limit})
}

func (h CLIHandler) Inspect(ctx context.Context, path string) (dto.InspectOutput, error) {
	return h.usecase.Inspect(ctx, path)
}
