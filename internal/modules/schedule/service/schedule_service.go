package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/mkarson1997/karatay-ders-program/internal/modules/schedule/domain"
	scheduleout "github.com/mkarson1997/karatay-ders-program/internal/modules/schedule/port/out"
	apperrors "github.com/mkarson1997/karatay-ders-program/internal/platform/errors"
)

type ScheduleService struct {
	log    *zap.Logger
	source scheduleout.CatalogSource
	plans  scheduleout.PlanStore

	mu      sync.Mutex
	catalog *domain.Catalog
}

func NewScheduleService(log *zap.Logger, source scheduleout.CatalogSource, plans scheduleout.PlanStore) *ScheduleService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ScheduleService{log: log, source: source, plans: plans}
}

// Catalog loads and validates the catalog once per service.
func (s *ScheduleService) Catalog(ctx context.Context) (domain.Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.catalog != nil {
		return *s.catalog, nil
	}
	catalog, err := s.source.Load(ctx)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("load catalog: %w", err)
	}
	if err := catalog.Validate(); err != nil {
		return domain.Catalog{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	courses := 0
	for _, p := range catalog.Programs {
		courses += len(p.Courses)
	}
	s.log.Debug("catalog loaded", zap.Int("programs", len(catalog.Programs)), zap.Int("courses", courses))
	s.catalog = &catalog
	return catalog, nil
}

// Resolve builds a selection from plan and runs the resolver on it. The
// selection is returned so callers can read the final groups back.
func (s *ScheduleService) Resolve(ctx context.Context, plan domain.Plan) (domain.Catalog, domain.Resolution, *domain.Selection, error) {
	catalog, err := s.Catalog(ctx)
	if err != nil {
		return domain.Catalog{}, domain.Resolution{}, nil, err
	}
	store := domain.NewSelection(catalog.Programs)
	if err := plan.Apply(catalog, store); err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownCourse):
			return domain.Catalog{}, domain.Resolution{}, nil, fmt.Errorf("%w: %v", apperrors.ErrNotFound, err)
		default:
			return domain.Catalog{}, domain.Resolution{}, nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
		}
	}
	res := domain.Resolve(catalog, plan.Mode, store)
	s.log.Info("schedule resolved",
		zap.String("mode", string(plan.Mode)),
		zap.Int("selected", len(store.Selected())),
		zap.Int("sessions", len(res.Sessions)),
		zap.Int("conflicts", len(res.Conflicts)),
		zap.Int("passes", res.Passes),
	)
	return catalog, res, store, nil
}

func (s *ScheduleService) LoadPlan(ctx context.Context, path string) (domain.Plan, error) {
	if strings.TrimSpace(path) == "" {
		return domain.Plan{}, fmt.Errorf("%w: plan path is required", apperrors.ErrInvalidInput)
	}
	plan, err := s.plans.Load(ctx, path)
	if err != nil {
		return domain.Plan{}, err
	}
	mode, err := domain.ParseMode(string(plan.Mode))
	if err != nil {
		return domain.Plan{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	plan.Mode = mode
	return plan, nil
}

// SavePlan checks the plan against the catalog before writing it.
func (s *ScheduleService) SavePlan(ctx context.Context, path string, plan domain.Plan) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("%w: plan path is required", apperrors.ErrInvalidInput)
	}
	if _, _, _, err := s.Resolve(ctx, plan); err != nil {
		return err
	}
	if err := s.plans.Save(ctx, path, plan); err != nil {
		return err
	}
	s.log.Info("plan saved", zap.String("path", path), zap.Int("courses", len(plan.Courses)))
	return nil
}
