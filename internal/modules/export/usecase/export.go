package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mkarson1997/karatay-ders-program/internal/modules/export/domain"
	"github.com/mkarson1997/karatay-ders-program/internal/modules/export/dto"
	exportin "github.com/mkarson1997/karatay-ders-program/internal/modules/export/port/in"
	"github.com/mkarson1997/karatay-ders-program/internal/modules/export/service"
	apperrors "github.com/mkarson1997/karatay-ders-program/internal/platform/errors"
)

type Interactor struct {
	svc *service.ExportService
}

func NewInteractor(svc *service.ExportService) exportin.Usecase {
	return &Interactor{svc: svc}
}

// Export returns the warnings, and the failure block for asset errors, even
// when it fails so callers can show them.
func (i *Interactor) Export(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error) {
	format, err := domain.ParseFormat(input.Format)
	if err != nil {
		return dto.ExportOutput{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	choices := make([]domain.Choice, 0, len(input.Selections))
	for _, c := range input.Selections {
		choices = append(choices, domain.Choice{CourseID: c.CourseID, Group: c.Group})
	}
	res, err := i.svc.Export(ctx, service.Request{
		Format:    format,
		Mode:      input.Mode,
		Student:   input.Student,
		OutputDir: input.OutputDir,
		Choices:   choices,
	})
	out := dto.ExportOutput{
		Path:     res.Output.Path,
		Format:   string(format),
		Pages:    res.Output.Pages,
		Bytes:    res.Output.Bytes,
		Warnings: res.Warnings,
		RecordID: res.Record.ID,
	}
	if errors.Is(err, apperrors.ErrAssetUnavailable) {
		out.Failure = domain.FailureLines(err)
	}
	return out, err
}

func (i *Interactor) History(ctx context.Context, input dto.HistoryInput) ([]dto.HistoryEntry, error) {
	records, err := i.svc.History(ctx, input.Limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.HistoryEntry, 0, len(records))
	for _, r := range records {
		out = append(out, dto.HistoryEntry{
			ID:        r.ID,
			Format:    string(r.Format),
			Path:      r.Path,
			Mode:      r.Mode,
			Student:   r.Student,
			Courses:   r.Courses,
			Sessions:  r.Sessions,
			Pages:     r.Pages,
			CreatedAt: r.CreatedAt.Format(time.RFC3339),
		})
	}
	return out, nil
}

func (i *Interactor) Inspect(ctx context.Context, path string) (dto.InspectOutput, error) {
	inspection, err := i.svc.Inspect(ctx, path)
	if err != nil {
		return dto.InspectOutput{}, err
	}
	return dto.InspectOutput{Path: inspection.Path, Pages: inspection.Pages, Lines: inspection.Lines}, nil
}
