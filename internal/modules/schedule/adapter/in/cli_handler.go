package in

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mkarson1997/karatay-ders-program/internal/modules/schedule/dto"
	schedulein "github.com/mkarson1997/karatay-ders-program/internal/modules/schedule/port/in"
)

type CLIHandler struct {
	usecase schedulein.Usecase
}

func NewCLIHandler(usecase schedulein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) ListCourses(ctx context.Context, mode string) (dto.CatalogOutput, error) {
	return h.usecase.ListCourses(ctx, dto.ListCoursesInput{Mode: mode})
}

// Preview resolves the courses given on the command line. When planPath is
// set the plan supplies mode and courses; explicit flags win over it.
func (h CLIHandler) Preview(ctx context.Context, mode, planPath string, courses []string) (dto.PreviewOutput, error) {
	input, err := h.Selection(ctx, mode, planPath, courses)
	if err != nil {
		return dto.PreviewOutput{}, err
	}
	return h.usecase.Preview(ctx, input)
}

// Selection merges a plan file with --course flags into a preview input.
func (h CLIHandler) Selection(ctx context.Context, mode, planPath string, courses []string) (dto.PreviewInput, error) {
	input := dto.PreviewInput{Mode: mode}
	if planPath != "" {
		plan, err := h.usecase.LoadPlan(ctx, planPath)
		if err != nil {
			return dto.PreviewInput{}, err
		}
		if input.Mode == "" {
			input.Mode = plan.Mode
		}
		input.Selections = plan.Selections
	}
	for _, raw := range courses {
		choice, err := ParseCourseArg(raw)
		if err != nil {
			return dto.PreviewInput{}, err
		}
		input.Selections = upsertChoice(input.Selections, choice)
	}
	return input, nil
}

func (h CLIHandler) SavePlan(ctx context.Context, path, mode, student string, selections []dto.CourseChoice) (dto.PlanOutput, error) {
	return h.usecase.SavePlan(ctx, dto.SavePlanInput{Path: path, Mode: mode, Student: student, Selections: selections})
}

func (h CLIHandler) LoadPlan(ctx context.Context, path string) (dto.PlanOutput, error) {
	return h.usecase.LoadPlan(ctx, path)
}

// ParseCourseArg reads "<program>:<course>" or "<program>:<course>=<group>".
func ParseCourseArg(raw string) (dto.CourseChoice, error) {
	id, group, hasGroup := strings.Cut(strings.TrimSpace(raw), "=")
	if !strings.Contains(id, ":") {
		return dto.CourseChoice{}, fmt.Errorf("course %q must look like program:course[=group]", raw)
	}
	choice := dto.CourseChoice{CourseID: id}
	if hasGroup {
		n, err := strconv.Atoi(group)
		if err != nil || n < 0 {
			return dto.CourseChoice{}, fmt.Errorf("course %q has an invalid group", raw)
		}
		choice.Group = n
	}
	return choice, nil
}

func upsertChoice(choices []dto.CourseChoice, choice dto.CourseChoice) []dto.CourseChoice {
	for i := range choices {
		if choices[i].CourseID == choice.CourseID {
			choices[i] = choice
			return choices
		}
	}
	return append(choices, choice)
}
