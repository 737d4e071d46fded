package out

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/mkarson1997/karatay-ders-program/internal/modules/export/domain"
	exportout "github.com/mkarson1997/karatay-ders-program/internal/modules/export/port/out"
	apperrors "github.com/mkarson1997/karatay-ders-program/internal/platform/errors"
)

type ICSSettings struct {
	// TermStart is YYYY-MM-DD; empty means the week of the export.
	TermStart string
	TermWeeks int
	Timezone  string
}

// ICSRenderer writes one weekly recurring event per timed session. Online and
// unparsable sessions have no slot and are left out.
type ICSRenderer struct {
	settings ICSSettings
}

func NewICSRenderer(settings ICSSettings) exportout.Renderer {
	return &ICSRenderer{settings: settings}
}

func (r *ICSRenderer) Format() domain.Format {
	return domain.FormatICS
}

func (r *ICSRenderer) Render(_ context.Context, doc domain.Document, path string) (domain.Output, error) {
	loc, err := time.LoadLocation(r.settings.Timezone)
	if err != nil {
		return domain.Output{}, fmt.Errorf("%w: load timezone: %v", apperrors.ErrAssetUnavailable, err)
	}
	monday, err := r.firstMonday(doc.CreatedAt, loc)
	if err != nil {
		return domain.Output{}, err
	}
	weeks := r.settings.TermWeeks
	if weeks <= 0 {
		weeks = 14
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//dersprog//Haftalik Ders Programi//TR")
	cal.SetXWRCalName(doc.Title)
	cal.SetXWRTimezone(loc.String())

	for i, e := range domain.OrderEntries(doc.Schedule.Entries) {
		start, end, ok := slot(monday, e)
		if !ok {
			continue
		}
		event := cal.AddEvent(fmt.Sprintf("%s-%d@dersprog", strings.ReplaceAll(e.CourseID, ":", "-"), i))
		event.SetCreatedTime(doc.CreatedAt)
		event.SetDtStampTime(doc.CreatedAt)
		event.SetStartAt(start)
		event.SetEndAt(end)
		event.SetSummary(e.CourseName)
		event.SetLocation(e.RoomOrDash())
		description := doc.Schedule.Term
		if e.Teacher != "" {
			description += "\n" + e.Teacher
		}
		if e.Group > 0 {
			description += fmt.Sprintf("\nGrup %d", e.Group)
		}
		event.SetDescription(description)
		event.AddRrule(fmt.Sprintf("FREQ=WEEKLY;COUNT=%d", weeks))
	}

	if err := os.WriteFile(path, []byte(cal.Serialize()), 0o644); err != nil {
		return domain.Output{}, fmt.Errorf("%w: write ics: %v", apperrors.ErrAssetUnavailable, err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return domain.Output{}, fmt.Errorf("stat ics: %w", err)
	}
	return domain.Output{Path: path, Bytes: info.Size()}, nil
}

// firstMonday is the Monday of the week the term starts in.
func (r *ICSRenderer) firstMonday(now time.Time, loc *time.Location) (time.Time, error) {
	base := now.In(loc)
	if r.settings.TermStart != "" {
		parsed, err := time.ParseInLocation("2006-01-02", r.settings.TermStart, loc)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: term start: %v", apperrors.ErrInvalidInput, err)
		}
		base = parsed
	}
	offset := (int(base.Weekday()) + 6) % 7
	y, m, d := base.AddDate(0, 0, -offset).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc), nil
}

func slot(monday time.Time, e domain.Entry) (time.Time, time.Time, bool) {
	day, ok := domain.DayIndex(e.Day)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	start, ok := clockOffset(e.Start)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	end, ok := clockOffset(e.End)
	if !ok || end <= start {
		return time.Time{}, time.Time{}, false
	}
	date := monday.AddDate(0, 0, day)
	return date.Add(start), date.Add(end), true
}

func clockOffset(token string) (time.Duration, bool) {
	t, err := time.Parse("15:04", strings.TrimSpace(token))
	if err != nil {
		return 0, false
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, true
}
