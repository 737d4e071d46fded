package out

import (
	"context"

	"github.com/mkarson1997/karatay-ders-program/internal/modules/export/domain"
)

// ScheduleSource resolves a selection into an exportable schedule.
type ScheduleSource interface {
	Schedule(ctx context.Context, mode string, choices []domain.Choice) (domain.Schedule, error)
}

type Renderer interface {
	Format() domain.Format
	Render(ctx context.Context, doc domain.Document, path string) (domain.Output, error)
}

type HistoryStore interface {
	Append(ctx context.Context, record domain.Record) error
	List(ctx context.Context, limit int) ([]domain.Record, error)
}

type DocumentInspector interface {
	Inspect(ctx context.Context, path string) (domain.Inspection, error)
}
