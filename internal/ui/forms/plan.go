package forms

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	scheduledto "github.com/mkarson1997/karatay-ders-program/internal/modules/schedule/dto"
	"github.com/mkarson1997/karatay-ders-program/internal/ui/theme"
)

type CatalogPort interface {
	ListCourses(ctx context.Context, mode string) (scheduledto.CatalogOutput, error)
}

// PlanAnswers is what the plan form collected.
type PlanAnswers struct {
	Mode       string
	Student    string
	Selections []scheduledto.CourseChoice
}

// Theme is huh's Charm theme recolored with the app palette.
func Theme() *huh.Theme {
	t := huh.ThemeCharm()
	accent := theme.Lavender
	t.Focused.Title = t.Focused.Title.Foreground(accent).Bold(true)
	t.Focused.Base = t.Focused.Base.Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(0, 1)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(accent)
	t.Focused.MultiSelectSelector = t.Focused.MultiSelectSelector.Foreground(accent)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(theme.Sapphire)
	t.Focused.SelectedPrefix = t.Focused.SelectedPrefix.Foreground(theme.Green)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(theme.Base).Background(accent)
	t.Blurred.Base = t.Blurred.Base.Border(lipgloss.RoundedBorder()).BorderForeground(theme.Surface1).Padding(0, 1)
	return t
}

func ModeOptions() []huh.Option[string] {
	return []huh.Option[string]{
		huh.NewOption("1. Sınıf", "y1"),
		huh.NewOption("2. Sınıf", "y2"),
		huh.NewOption("1+2 (Karışık)", "mix"),
	}
}

// CourseOptions lists every visible course as "<program> · <course>".
func CourseOptions(catalog scheduledto.CatalogOutput) []huh.Option[string] {
	var out []huh.Option[string]
	for _, p := range catalog.Programs {
		for _, c := range p.Courses {
			out = append(out, huh.NewOption(p.Name+" · "+c.Name, c.ID))
		}
	}
	return out
}

// GroupOptions offers the course's groups with the default preselected.
func GroupOptions(course scheduledto.CourseOutput) []huh.Option[int] {
	out := make([]huh.Option[int], 0, len(course.Groups))
	for _, g := range course.Groups {
		opt := huh.NewOption(g.Label, g.Value)
		if g.Value == course.DefaultGroup {
			opt = opt.Selected(true)
		}
		out = append(out, opt)
	}
	return out
}

// RunPlanForm asks for the mode, then the courses, then a group for every
// chosen course that offers one, and finally the student name.
func RunPlanForm(ctx context.Context, port CatalogPort, mode string) (PlanAnswers, error) {
	answers := PlanAnswers{Mode: mode}
	if answers.Mode == "" {
		answers.Mode = "y1"
	}

	modeForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Hangi program?").
				Options(ModeOptions()...).
				Value(&answers.Mode),
		),
	).WithTheme(Theme())
	if err := modeForm.RunWithContext(ctx); err != nil {
		return PlanAnswers{}, err
	}

	catalog, err := port.ListCourses(ctx, answers.Mode)
	if err != nil {
		return PlanAnswers{}, fmt.Errorf("list courses: %w", err)
	}

	var ids []string
	var student string
	courseForm := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Dersleri seç").
				Description("Boşluk = seç, Enter = onayla. Yazarak filtrele.").
				Options(CourseOptions(catalog)...).
				Value(&ids).
				Filterable(true).
				Height(14),
			huh.NewInput().
				Title("Öğrenci adı (isteğe bağlı)").
				Value(&student),
		),
	).WithTheme(Theme())
	if err := courseForm.RunWithContext(ctx); err != nil {
		return PlanAnswers{}, err
	}
	answers.Student = student

	byID := make(map[string]scheduledto.CourseOutput)
	for _, p := range catalog.Programs {
		for _, c := range p.Courses {
			byID[c.ID] = c
		}
	}

	groups := make([]int, len(ids))
	var fields []huh.Field
	for i, id := range ids {
		course := byID[id]
		groups[i] = course.DefaultGroup
		if !course.GroupSelectable || len(course.Groups) < 2 {
			continue
		}
		fields = append(fields, huh.NewSelect[int]().
			Title(course.Name).
			Description(course.GroupHint).
			Options(GroupOptions(course)...).
			Value(&groups[i]))
	}
	if len(fields) > 0 {
		if err := huh.NewForm(huh.NewGroup(fields...)).WithTheme(Theme()).RunWithContext(ctx); err != nil {
			return PlanAnswers{}, err
		}
	}

	for i, id := range ids {
		answers.Selections = append(answers.Selections, scheduledto.CourseChoice{CourseID: id, Group: groups[i]})
	}
	return answers, nil
}
