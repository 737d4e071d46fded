package out

import (
	"context"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/mkarson1997/karatay-ders-program/internal/modules/export/domain"
	exportout "github.com/mkarson1997/karatay-ders-program/internal/modules/export/port/out"
	apperrors "github.com/mkarson1997/karatay-ders-program/internal/platform/errors"
)

const (
	scheduleSheet = "Program"
	notesSheet    = "Notlar"
)

type XLSXRenderer struct{}

func NewXLSXRenderer() exportout.Renderer {
	return &XLSXRenderer{}
}

func (r *XLSXRenderer) Format() domain.Format {
	return domain.FormatXLSX
}

func (r *XLSXRenderer) Render(_ context.Context, doc domain.Document, path string) (domain.Output, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", scheduleSheet); err != nil {
		return domain.Output{}, fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(notesSheet); err != nil {
		return domain.Output{}, fmt.Errorf("create notes sheet: %w", err)
	}

	f.SetColWidth(scheduleSheet, "A", "A", 18)
	f.SetColWidth(scheduleSheet, "B", "B", 42)
	f.SetColWidth(scheduleSheet, "C", "C", 16)
	f.SetColWidth(scheduleSheet, "D", "E", 20)
	f.SetColWidth(notesSheet, "A", "A", 18)
	f.SetColWidth(notesSheet, "B", "B", 48)

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14, Color: "#0A3854"},
	})
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#0A3854"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	evenStyle, _ := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#F7FCFF"}, Pattern: 1},
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	oddStyle, _ := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#EBF5FC"}, Pattern: 1},
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})

	f.SetCellValue(scheduleSheet, "A1", doc.Title)
	f.MergeCell(scheduleSheet, "A1", "E1")
	f.SetCellStyle(scheduleSheet, "A1", "A1", titleStyle)
	f.SetCellValue(scheduleSheet, "A2", doc.Subtitle)
	if line := doc.StudentLine(); line != "" {
		f.SetCellValue(scheduleSheet, "A3", line)
	}

	row := 5
	for i, label := range []string{"Gün", "Ders", "Saat", "Sınıf", "Öğretim Elemanı"} {
		f.SetCellValue(scheduleSheet, cell(i, row), label)
	}
	f.SetCellStyle(scheduleSheet, cell(0, row), cell(4, row), headerStyle)

	entries := domain.OrderEntries(doc.Schedule.Entries)
	if len(entries) == 0 {
		row++
		for i, v := range []string{"-", "Hiç ders seçilmedi", "-", "-", "-"} {
			f.SetCellValue(scheduleSheet, cell(i, row), v)
		}
		f.SetCellStyle(scheduleSheet, cell(0, row), cell(4, row), evenStyle)
	}
	for idx, e := range entries {
		row++
		teacher := e.Teacher
		if teacher == "" {
			teacher = "-"
		}
		for i, v := range []string{e.Day, e.CourseName, e.TimeRange(), e.RoomOrDash(), teacher} {
			f.SetCellValue(scheduleSheet, cell(i, row), v)
		}
		style := evenStyle
		if idx%2 == 1 {
			style = oddStyle
		}
		f.SetCellStyle(scheduleSheet, cell(0, row), cell(4, row), style)
	}

	f.SetCellValue(notesSheet, "A1", "Gün")
	f.SetCellValue(notesSheet, "B1", "Not")
	f.SetCellStyle(notesSheet, "A1", "B1", headerStyle)
	for i, note := range doc.Schedule.Notes {
		f.SetCellValue(notesSheet, cell(0, i+2), note.Day)
		f.SetCellValue(notesSheet, cell(1, i+2), note.Note)
	}

	if err := f.SaveAs(path); err != nil {
		return domain.Output{}, fmt.Errorf("%w: write xlsx: %v", apperrors.ErrAssetUnavailable, err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return domain.Output{}, fmt.Errorf("stat xlsx: %w", err)
	}
	return domain.Output{Path: path, Bytes: info.Size()}, nil
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col+1, row)
	return name
}
