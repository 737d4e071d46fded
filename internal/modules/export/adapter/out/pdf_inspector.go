package out

import (
	"context"
	"fmt"
	"math"
	"strings"

	"rsc.io/pdf"

	"github.com/mkarson1997/karatay-ders-program/internal/modules/export/domain"
	exportout "github.com/mkarson1997/karatay-ders-program/internal/modules/export/port/out"
)

type PDFInspector struct{}

func NewPDFInspector() exportout.DocumentInspector {
	return &PDFInspector{}
}

// Inspect reads every page back and rebuilds text lines from glyph positions.
func (i *PDFInspector) Inspect(_ context.Context, path string) (domain.Inspection, error) {
	doc, err := pdf.Open(path)
	if err != nil {
		return domain.Inspection{}, fmt.Errorf("open pdf: %w", err)
	}
	total := doc.NumPage()
	out := domain.Inspection{Path: path, Pages: total}
	for n := 1; n <= total; n++ {
		p := doc.Page(n)
		if p.V.IsNull() {
			return domain.Inspection{}, fmt.Errorf("pdf page %d is null", n)
		}
		out.Lines = append(out.Lines, pageLines(p.Content().Text)...)
	}
	return out, nil
}

// pageLines joins glyphs sharing a baseline, with a space where a gap
// separates two runs of text.
func pageLines(glyphs []pdf.Text) []string {
	lines := []string{}
	var b strings.Builder
	lastY := math.NaN()
	lastEnd := 0.0
	flush := func() {
		if s := strings.TrimSpace(b.String()); s != "" {
			lines = append(lines, s)
		}
		b.Reset()
	}
	for _, g := range glyphs {
		switch {
		case !math.IsNaN(lastY) && math.Abs(g.Y-lastY) > 0.5:
			flush()
		case b.Len() > 0 && g.X > lastEnd+g.FontSize:
			b.WriteString(" ")
		}
		b.WriteString(g.S)
		lastY = g.Y
		lastEnd = g.X + g.W
	}
	flush()
	return lines
}
