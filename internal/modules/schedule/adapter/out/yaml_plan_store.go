package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mkarson1997/karatay-ders-program/internal/modules/schedule/domain"
	scheduleout "github.com/mkarson1997/karatay-ders-program/internal/modules/schedule/port/out"
	apperrors "github.com/mkarson1997/karatay-ders-program/internal/platform/errors"
)

type YAMLPlanStore struct{}

func NewYAMLPlanStore() scheduleout.PlanStore {
	return &YAMLPlanStore{}
}

func (s *YAMLPlanStore) Save(_ context.Context, path string, plan domain.Plan) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create plan dir: %w", err)
	}
	payload, err := yaml.Marshal(plan)
	if err != nil {
		return fmt.Errorf("marshal plan: %w", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("write plan: %w", err)
	}
	return nil
}

func (s *YAMLPlanStore) Load(_ context.Context, path string) (domain.Plan, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Plan{}, fmt.Errorf("%w: plan %s", apperrors.ErrNotFound, path)
		}
		return domain.Plan{}, fmt.Errorf("read plan: %w", err)
	}
	plan := domain.Plan{}
	if err := yaml.Unmarshal(payload, &plan); err != nil {
		return domain.Plan{}, fmt.Errorf("decode plan: %w", err)
	}
	return plan, nil
}
