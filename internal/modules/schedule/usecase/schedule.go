package usecase

import (
	"context"
	"fmt"

	"github.com/mkarson1997/karatay-ders-program/internal/modules/schedule/domain"
	"github.com/mkarson1997/karatay-ders-program/internal/modules/schedule/dto"
	schedulein "github.com/mkarson1997/karatay-ders-program/internal/modules/schedule/port/in"
	"github.com/mkarson1997/karatay-ders-program/internal/modules/schedule/service"
	apperrors "github.com/mkarson1997/karatay-ders-program/internal/platform/errors"
)

const (
	hintSelectable = "Grup seç (varsa)"
	hintSingle     = "Tek seçenek"
)

type Interactor struct {
	svc *service.ScheduleService
}

func NewInteractor(svc *service.ScheduleService) schedulein.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) ListCourses(ctx context.Context, input dto.ListCoursesInput) (dto.CatalogOutput, error) {
	mode, err := parseMode(input.Mode)
	if err != nil {
		return dto.CatalogOutput{}, err
	}
	catalog, err := i.svc.Catalog(ctx)
	if err != nil {
		return dto.CatalogOutput{}, err
	}
	out := dto.CatalogOutput{Term: catalog.Term, Mode: string(mode), ModeTitle: mode.Title()}
	for _, p := range catalog.Visible(mode) {
		program := dto.ProgramOutput{ID: p.ID, Name: p.Name}
		for _, c := range p.Courses {
			program.Courses = append(program.Courses, toCourseOutput(p, c))
		}
		out.Programs = append(out.Programs, program)
	}
	return out, nil
}

func (i *Interactor) Preview(ctx context.Context, input dto.PreviewInput) (dto.PreviewOutput, error) {
	mode, err := parseMode(input.Mode)
	if err != nil {
		return dto.PreviewOutput{}, err
	}
	catalog, res, store, err := i.svc.Resolve(ctx, domain.Plan{Mode: mode, Courses: toPlanCourses(input.Selections)})
	if err != nil {
		return dto.PreviewOutput{}, err
	}
	out := dto.PreviewOutput{
		Term:      catalog.Term,
		Mode:      string(mode),
		ModeTitle: mode.Title(),
		Sessions:  toSessionOutputs(res.Sessions),
		Changes:   res.Changes,
		Warnings:  res.Warnings(input.ForExport),
		Passes:    res.Passes,
	}
	for _, day := range domain.Agenda(res.Sessions) {
		out.Agenda = append(out.Agenda, dto.AgendaDayOutput{Day: day.Day, Sessions: toSessionOutputs(day.Sessions)})
	}
	for _, note := range domain.DayNotes(res.Sessions) {
		out.Notes = append(out.Notes, dto.DayNoteOutput{Day: note.Day, Note: note.Note})
	}
	for _, c := range res.Conflicts {
		out.Conflicts = append(out.Conflicts, dto.ConflictOutput{
			Day:         c.Day,
			A:           toSessionOutput(c.A),
			B:           toSessionOutput(c.B),
			Description: c.Describe(),
		})
	}
	for _, id := range store.Selected() {
		out.Choices = append(out.Choices, dto.CourseChoice{CourseID: string(id), Group: store.Choice(id).Group})
	}
	return out, nil
}

func (i *Interactor) LoadPlan(ctx context.Context, path string) (dto.PlanOutput, error) {
	plan, err := i.svc.LoadPlan(ctx, path)
	if err != nil {
		return dto.PlanOutput{}, err
	}
	return toPlanOutput(path, plan), nil
}

func (i *Interactor) SavePlan(ctx context.Context, input dto.SavePlanInput) (dto.PlanOutput, error) {
	mode, err := parseMode(input.Mode)
	if err != nil {
		return dto.PlanOutput{}, err
	}
	plan := domain.Plan{Mode: mode, Student: input.Student, Courses: toPlanCourses(input.Selections)}
	if err := i.svc.SavePlan(ctx, input.Path, plan); err != nil {
		return dto.PlanOutput{}, err
	}
	return toPlanOutput(input.Path, plan), nil
}

func parseMode(raw string) (domain.Mode, error) {
	mode, err := domain.ParseMode(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	return mode, nil
}

func toCourseOutput(p domain.Program, c domain.Course) dto.CourseOutput {
	out := dto.CourseOutput{
		ID:              string(domain.NewCourseID(p.ID, c.Key)),
		Key:             c.Key,
		Name:            c.Name,
		GroupHint:       hintSingle,
		GroupSelectable: c.HasGroups(),
	}
	groups := c.Groups()
	if out.GroupSelectable {
		out.GroupHint = hintSelectable
		out.DefaultGroup = groups[0]
		for _, g := range groups {
			out.Groups = append(out.Groups, dto.GroupOption{Value: g, Label: fmt.Sprintf("Grup %d", g)})
		}
	} else {
		out.Groups = []dto.GroupOption{{Value: 0, Label: "Tek"}}
	}
	for _, s := range c.Sessions {
		out.Sessions = append(out.Sessions, toSessionOutput(domain.ResolvedSession{
			Session: s, ProgramID: p.ID, ProgramName: p.Name, CourseKey: c.Key, CourseName: c.Name,
		}))
	}
	return out
}

func toSessionOutputs(sessions []domain.ResolvedSession) []dto.SessionOutput {
	out := make([]dto.SessionOutput, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, toSessionOutput(s))
	}
	return out
}

func toSessionOutput(s domain.ResolvedSession) dto.SessionOutput {
	return dto.SessionOutput{
		CourseID:    string(s.CourseID()),
		ProgramName: s.ProgramName,
		CourseName:  s.CourseName,
		Day:         s.Day,
		Start:       s.Start,
		End:         s.End,
		TimeRange:   s.TimeRange(),
		Room:        s.RoomOrDash(),
		Teacher:     s.TeacherOrDash(),
		Group:       s.Group,
	}
}

func toPlanCourses(choices []dto.CourseChoice) []domain.PlanCourse {
	out := make([]domain.PlanCourse, 0, len(choices))
	for _, c := range choices {
		out = append(out, domain.PlanCourse{ID: domain.CourseID(c.CourseID), Group: c.Group})
	}
	return out
}

func toPlanOutput(path string, plan domain.Plan) dto.PlanOutput {
	out := dto.PlanOutput{Path: path, Mode: string(plan.Mode), Student: plan.Student}
	for _, c := range plan.Courses {
		out.Selections = append(out.Selections, dto.CourseChoice{CourseID: string(c.ID), Group: c.Group})
	}
	return out
}
