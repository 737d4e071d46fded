package out

import (
	"context"

	"github.com/mkarson1997/karatay-ders-program/internal/modules/export/domain"
	exportout "github.com/mkarson1997/karatay-ders-program/internal/modules/export/port/out"
	scheduledto "github.com/mkarson1997/karatay-ders-program/internal/modules/schedule/dto"
	schedulein "github.com/mkarson1997/karatay-ders-program/internal/modules/schedule/port/in"
)

type ScheduleAdapter struct {
	schedule schedulein.Usecase
}

func NewScheduleAdapter(schedule schedulein.Usecase) exportout.ScheduleSource {
	return &ScheduleAdapter{schedule: schedule}
}

func (a *ScheduleAdapter) Schedule(ctx context.Context, mode string, choices []domain.Choice) (domain.Schedule, error) {
	selections := make([]scheduledto.CourseChoice, 0, len(choices))
	for _, c := range choices {
		selections = append(selections, scheduledto.CourseChoice{CourseID: c.CourseID, Group: c.Group})
	}
	preview, err := a.schedule.Preview(ctx, scheduledto.PreviewInput{Mode: mode, Selections: selections, ForExport: true})
	if err != nil {
		return domain.Schedule{}, err
	}
	out := domain.Schedule{
		Term:      preview.Term,
		Mode:      preview.Mode,
		ModeTitle: preview.ModeTitle,
		Conflicts: len(preview.Conflicts),
		Warnings:  preview.Warnings,
	}
	for _, s := range preview.Sessions {
		out.Entries = append(out.Entries, domain.Entry{
			Day:        s.Day,
			CourseID:   s.CourseID,
			CourseName: s.CourseName,
			Start:      s.Start,
			End:        s.End,
			Room:       s.Room,
			Teacher:    s.Teacher,
			Group:      s.Group,
		})
	}
	for _, n := range preview.Notes {
		out.Notes = append(out.Notes, domain.NoteLine{Day: n.Day, Note: n.Note})
	}
	for _, c := range preview.Choices {
		out.Courses = append(out.Courses, c.CourseID)
	}
	return out, nil
}
