package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/mkarson1997/karatay-ders-program/internal/modules/export/domain"
	exportout "github.com/mkarson1997/karatay-ders-program/internal/modules/export/port/out"
	"github.com/mkarson1997/karatay-ders-program/internal/platform/clock"
	apperrors "github.com/mkarson1997/karatay-ders-program/internal/platform/errors"
	"github.com/mkarson1997/karatay-ders-program/internal/platform/id"
)

type Settings struct {
	Institution string
	Department  string
	OutputDir   string
}

type ExportService struct {
	log       *zap.Logger
	clock     clock.Clock
	idGen     id.Generator
	settings  Settings
	source    exportout.ScheduleSource
	renderers map[domain.Format]exportout.Renderer
	history   exportout.HistoryStore
	inspector exportout.DocumentInspector
}

func NewExportService(
	log *zap.Logger,
	clock clock.Clock,
	idGen id.Generator,
	settings Settings,
	source exportout.ScheduleSource,
	renderers []exportout.Renderer,
	history exportout.HistoryStore,
	inspector exportout.DocumentInspector,
) *ExportService {
	if log == nil {
		log = zap.NewNop()
	}
	byFormat := make(map[domain.Format]exportout.Renderer, len(renderers))
	for _, r := range renderers {
		byFormat[r.Format()] = r
	}
	return &ExportService{
		log:       log,
		clock:     clock,
		idGen:     idGen,
		settings:  settings,
		source:    source,
		renderers: byFormat,
		history:   history,
		inspector: inspector,
	}
}

type Request struct {
	Format    domain.Format
	Mode      string
	Student   string
	OutputDir string
	Choices   []domain.Choice
}

type Result struct {
	Output   domain.Output
	Warnings []string
	Record   domain.Record
}

// Export resolves the selection and writes one document. Remaining conflicts
// block the export: the warnings are returned with ErrUnresolvedConflicts and
// nothing is written.
func (s *ExportService) Export(ctx context.Context, req Request) (Result, error) {
	renderer, ok := s.renderers[req.Format]
	if !ok {
		return Result{}, fmt.Errorf("%w: no renderer for %q", apperrors.ErrInvalidInput, req.Format)
	}
	schedule, err := s.source.Schedule(ctx, req.Mode, req.Choices)
	if err != nil {
		return Result{}, err
	}
	if schedule.Conflicts > 0 {
		s.log.Warn("export blocked by conflicts", zap.Int("conflicts", schedule.Conflicts))
		return Result{Warnings: schedule.Warnings}, fmt.Errorf("%w: %d remaining", apperrors.ErrUnresolvedConflicts, schedule.Conflicts)
	}

	dir := strings.TrimSpace(req.OutputDir)
	if dir == "" {
		dir = s.settings.OutputDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Result{Warnings: schedule.Warnings}, fmt.Errorf("%w: create output dir: %v", apperrors.ErrAssetUnavailable, err)
	}
	path := filepath.Join(dir, domain.FileName(req.Format, req.Student))
	doc := domain.NewDocument(schedule, s.settings.Institution, s.settings.Department, req.Student, s.clock.Now())

	out, err := renderer.Render(ctx, doc, path)
	if err != nil {
		if !errors.Is(err, apperrors.ErrAssetUnavailable) {
			err = fmt.Errorf("%w: render %s: %v", apperrors.ErrAssetUnavailable, req.Format, err)
		}
		s.log.Error("export failed", zap.String("format", string(req.Format)), zap.Error(err))
		return Result{Warnings: schedule.Warnings}, err
	}

	record := domain.Record{
		ID:        s.idGen.New(),
		Format:    req.Format,
		Path:      out.Path,
		Mode:      schedule.Mode,
		Student:   doc.Student,
		Courses:   len(schedule.Courses),
		Sessions:  len(schedule.Entries),
		Pages:     out.Pages,
		CreatedAt: doc.CreatedAt,
	}
	if s.history != nil {
		if err := s.history.Append(ctx, record); err != nil {
			s.log.Warn("record export history", zap.Error(err))
		}
	}
	s.log.Info("document exported",
		zap.String("format", string(req.Format)),
		zap.String("path", out.Path),
		zap.Int("pages", out.Pages),
		zap.Int("sessions", record.Sessions),
	)
	return Result{Output: out, Warnings: schedule.Warnings, Record: record}, nil
}

func (s *ExportService) History(ctx context.Context, limit int) ([]domain.Record, error) {
	if s.history == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 20
	}
	return s.history.List(ctx, limit)
}

func (s *ExportService) Inspect(ctx context.Context, path string) (domain.Inspection, error) {
	if strings.TrimSpace(path) == "" {
		return domain.Inspection{}, fmt.Errorf("%w: path is required", apperrors.ErrInvalidInput)
	}
	if _, err := os.Stat(path); err != nil {
		return domain.Inspection{}, fmt.Errorf("%w: %s", apperrors.ErrNotFound, path)
	}
	return s.inspector.Inspect(ctx, path)
}
