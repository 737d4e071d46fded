package in

import (
	"context"

	"github.com/mkarson1997/karatay-ders-program/internal/modules/export/dto"
)

type Usecase interface {
	Export(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error)
	History(ctx context.Context, input dto.HistoryInput) ([]dto.HistoryEntry, error)
	Inspect(ctx context.Context, path string) (dto.InspectOutput, error)
}
