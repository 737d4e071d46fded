package domain

import (
	"sort"

	scheduledomain "github.com/mkarson1997/karatay-ders-program/internal/modules/schedule/domain"
)

type Color struct {
	R, G, B float64
}

var (
	ColorBrand    = Color{0.04, 0.22, 0.33}
	ColorBlack    = Color{0, 0, 0}
	ColorWhite    = Color{1, 1, 1}
	ColorSubtitle = Color{0.4, 0.4, 0.4}
	ColorStudent  = Color{0.2, 0.2, 0.2}
	ColorRowEven  = Color{0.97, 0.99, 1}
	ColorRowOdd   = Color{0.92, 0.96, 0.99}
)

type OpKind int

const (
	OpRect OpKind = iota
	OpText
)

// Op is one drawing instruction in points, origin top-left. Rect ops use
// X, Y as the top-left corner; text ops use X, Y as the baseline start.
type Op struct {
	Kind  OpKind
	X, Y  float64
	W, H  float64
	Text  string
	Size  float64
	Color Color
}

type Page struct {
	Ops []Op
}

// Texts lists the text of every text op, in drawing order.
func (p Page) Texts() []string {
	out := []string{}
	for _, op := range p.Ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}

// Geometry is the fixed page grid of the exported table.
type Geometry struct {
	PageWidth    float64
	PageHeight   float64
	MarginX      float64
	TopMargin    float64
	BottomMargin float64
	Columns      [4]float64
	Padding      float64
	RowHeight    float64
	FirstBase    float64
	LineGap      float64
	BodySize     float64
	HeaderSize   float64
	TableTop     float64
}

// A4 is the portrait A4 page used by every document.
func A4() Geometry {
	x0 := 40.0
	return Geometry{
		PageWidth:    595.28,
		PageHeight:   841.89,
		MarginX:      x0,
		TopMargin:    60,
		BottomMargin: 60,
		Columns:      [4]float64{x0, x0 + 110, x0 + 340, x0 + 455},
		Padding:      6,
		RowHeight:    22,
		FirstBase:    16,
		LineGap:      12,
		BodySize:     10,
		HeaderSize:   11,
		TableTop:     108,
	}
}

func (g Geometry) TableWidth() float64 {
	return g.PageWidth - 2*g.MarginX
}

// ColumnWidth is the full width of column i, the last one running to the
// table edge.
func (g Geometry) ColumnWidth(i int) float64 {
	if i == len(g.Columns)-1 {
		return g.MarginX + g.TableWidth() - g.Columns[i]
	}
	return g.Columns[i+1] - g.Columns[i]
}

func (g Geometry) interior(i int) float64 {
	return g.ColumnWidth(i) - 2*g.Padding
}

func (g Geometry) limitY() float64 {
	return g.PageHeight - g.BottomMargin
}

// Row is a laid out table row.
type Row struct {
	Day    string
	Course []string
	Time   string
	Room   string
	Height float64
}

var tableHeader = [4]string{"Gün", "Ders", "Saat", "Sınıf"}

const emptyRowText = "Hiç ders seçilmedi"

// Rows orders entries by week day then start time and wraps the course
// column. An empty schedule yields the placeholder row.
func Rows(entries []Entry, g Geometry, m Measurer) []Row {
	ordered := OrderEntries(entries)
	if len(ordered) == 0 {
		return []Row{{Day: "-", Course: []string{emptyRowText}, Time: "-", Room: "-", Height: g.RowHeight}}
	}
	rows := make([]Row, 0, len(ordered))
	for _, e := range ordered {
		course := WrapCell(e.CourseName, g.interior(1), g.BodySize, m)
		height := g.RowHeight
		if len(course) > 1 {
			height = g.RowHeight * 1.5
		}
		rows = append(rows, Row{Day: e.Day, Course: course, Time: e.TimeRange(), Room: e.RoomOrDash(), Height: height})
	}
	return rows
}

// OrderEntries groups entries by week day and sorts each day by start time.
// Entries on unknown day labels are dropped.
func OrderEntries(entries []Entry) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, day := range scheduledomain.DayOrder {
		items := []Entry{}
		for _, e := range entries {
			if e.Day == day {
				items = append(items, e)
			}
		}
		sort.SliceStable(items, func(i, j int) bool {
			return scheduledomain.SortKey(items[i].Start) < scheduledomain.SortKey(items[j].Start)
		})
		out = append(out, items...)
	}
	return out
}

// Layout turns a document into pages of drawing ops. Rows that would cross
// the bottom margin move to a new page under a repeated table header.
func Layout(doc Document, g Geometry, m Measurer) []Page {
	pages := []Page{{}}
	page := &pages[0]
	text := func(x, y float64, s string, size float64, c Color) {
		page.Ops = append(page.Ops, Op{Kind: OpText, X: x, Y: y, Text: s, Size: size, Color: c})
	}
	rect := func(y, h float64, c Color) {
		page.Ops = append(page.Ops, Op{Kind: OpRect, X: g.MarginX, Y: y, W: g.TableWidth(), H: h, Color: c})
	}
	header := func(top float64) float64 {
		rect(top, g.RowHeight, ColorBrand)
		for i, label := range tableHeader {
			text(g.Columns[i]+g.Padding, top+g.FirstBase, label, g.HeaderSize, ColorWhite)
		}
		return top + g.RowHeight
	}
	newPage := func() {
		pages = append(pages, Page{})
		page = &pages[len(pages)-1]
	}

	text(g.MarginX, 60, doc.Title, 16, ColorBrand)
	text(g.MarginX, 80, doc.Subtitle, 11, ColorSubtitle)
	if line := doc.StudentLine(); line != "" {
		text(g.MarginX, 98, line, 11, ColorStudent)
	}
	y := header(g.TableTop)

	for idx, row := range Rows(doc.Schedule.Entries, g, m) {
		if y+row.Height > g.limitY() {
			newPage()
			y = header(g.TopMargin)
		}
		tint := ColorRowEven
		if idx%2 == 1 {
			tint = ColorRowOdd
		}
		rect(y, row.Height, tint)
		base := y + g.FirstBase
		text(g.Columns[0]+g.Padding, base, row.Day, g.BodySize, ColorBlack)
		for i, line := range row.Course {
			text(g.Columns[1]+g.Padding, base+float64(i)*g.LineGap, line, g.BodySize, ColorBlack)
		}
		text(g.Columns[2]+g.Padding, base, row.Time, g.BodySize, ColorBlack)
		text(g.Columns[3]+g.Padding, base, row.Room, g.BodySize, ColorBlack)
		y += row.Height
	}

	// The notes heading sits one empty row plus a gap below the table.
	y += g.RowHeight + 10
	if y > g.limitY() {
		newPage()
		y = g.TopMargin
	}
	text(g.MarginX, y, "Notlar:", 12, ColorBrand)
	y += 18
	for _, note := range doc.Schedule.Notes {
		text(g.MarginX, y, note.String(), g.BodySize, ColorBlack)
		y += 14
		if y > g.limitY() {
			break
		}
	}
	return pages
}

// DayIndex is the position of day in the week, Monday being 0.
func DayIndex(day string) (int, bool) {
	for i, d := range scheduledomain.DayOrder {
		if d == day {
			return i, true
		}
	}
	return 0, false
}
