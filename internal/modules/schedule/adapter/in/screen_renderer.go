package in

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mkarson1997/karatay-ders-program/internal/modules/schedule/dto"
)

const emptySchedule = "Hiç ders seçilmedi."

var (
	headerCell = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	bodyCell   = lipgloss.NewStyle().Padding(0, 1)
	dayCell    = bodyCell.Bold(true)
)

// RenderTable draws the resolved agenda as a terminal table, days in week
// order and sessions by start time.
func RenderTable(preview dto.PreviewOutput) string {
	if len(preview.Agenda) == 0 {
		return emptySchedule
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Gün", "Ders", "Saat", "Derslik", "Öğretim Elemanı").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerCell
			case col == 0:
				return dayCell
			default:
				return bodyCell
			}
		})
	for _, day := range preview.Agenda {
		for i, s := range day.Sessions {
			label := ""
			if i == 0 {
				label = day.Day
			}
			t.Row(label, s.CourseName, s.TimeRange, s.Room, s.Teacher)
		}
	}
	return t.Render()
}

// RenderPreview is the full preview block: warnings, table and day notes.
func RenderPreview(preview dto.PreviewOutput) string {
	var b strings.Builder
	b.WriteString(preview.ModeTitle)
	if preview.Term != "" {
		b.WriteString(" • " + preview.Term)
	}
	b.WriteString("\n\n")
	for _, line := range preview.Warnings {
		b.WriteString(line + "\n")
	}
	if len(preview.Warnings) > 0 {
		b.WriteString("\n")
	}
	b.WriteString(RenderTable(preview))
	b.WriteString("\n\nNotlar:\n")
	for _, note := range preview.Notes {
		b.WriteString("- " + note.Day + ": " + note.Note + "\n")
	}
	return b.String()
}
