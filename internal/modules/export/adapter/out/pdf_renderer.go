package out

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/mkarson1997/karatay-ders-program/internal/modules/export/domain"
	exportout "github.com/mkarson1997/karatay-ders-program/internal/modules/export/port/out"
	apperrors "github.com/mkarson1997/karatay-ders-program/internal/platform/errors"
)

const (
	embeddedFamily = "DejaVu"
	coreFamily     = "Helvetica"
)

// cp1252 has no glyphs for these, so the core font falls back to ASCII.
var coreFold = strings.NewReplacer("ğ", "g", "Ğ", "G", "ş", "s", "Ş", "S", "ı", "i", "İ", "I")

// PDFRenderer lays the document out on A4 pages. With a font path the TTF is
// embedded; without one the core Helvetica font is used.
type PDFRenderer struct {
	fontPath string
}

func NewPDFRenderer(fontPath string) exportout.Renderer {
	return &PDFRenderer{fontPath: fontPath}
}

func (r *PDFRenderer) Format() domain.Format {
	return domain.FormatPDF
}

func (r *PDFRenderer) Render(_ context.Context, doc domain.Document, path string) (domain.Output, error) {
	pdf, surface, err := r.newSurface()
	if err != nil {
		return domain.Output{}, err
	}
	pdf.SetTitle(doc.Title, true)
	pdf.SetCreator("dersprog", true)
	pdf.SetCreationDate(doc.CreatedAt)

	g := domain.A4()
	pages := domain.Layout(doc, g, surface)
	for _, page := range pages {
		pdf.AddPage()
		for _, op := range page.Ops {
			surface.draw(op)
		}
	}
	if err := pdf.OutputFileAndClose(path); err != nil {
		return domain.Output{}, fmt.Errorf("%w: write pdf: %v", apperrors.ErrAssetUnavailable, err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return domain.Output{}, fmt.Errorf("stat pdf: %w", err)
	}
	return domain.Output{Path: path, Pages: len(pages), Bytes: info.Size()}, nil
}

func (r *PDFRenderer) newSurface() (*fpdf.Fpdf, *pdfSurface, error) {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)

	surface := &pdfSurface{pdf: pdf, family: coreFamily}
	if strings.TrimSpace(r.fontPath) == "" {
		tr := pdf.UnicodeTranslatorFromDescriptor("cp1252")
		surface.encode = func(s string) string { return tr(coreFold.Replace(s)) }
	} else {
		payload, err := os.ReadFile(r.fontPath)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: font %s: %v", apperrors.ErrAssetUnavailable, r.fontPath, err)
		}
		pdf.AddUTF8FontFromBytes(embeddedFamily, "", payload)
		if pdf.Err() {
			return nil, nil, fmt.Errorf("%w: font %s: %v", apperrors.ErrAssetUnavailable, r.fontPath, pdf.Error())
		}
		surface.family = embeddedFamily
		surface.encode = func(s string) string { return s }
	}
	pdf.SetFont(surface.family, "", 10)
	return pdf, surface, nil
}

// pdfSurface measures and draws layout ops with one font family.
type pdfSurface struct {
	pdf    *fpdf.Fpdf
	family string
	encode func(string) string
}

func (s *pdfSurface) Width(text string, size float64) float64 {
	s.pdf.SetFont(s.family, "", size)
	return s.pdf.GetStringWidth(s.encode(text))
}

func (s *pdfSurface) draw(op domain.Op) {
	r, g, b := rgb(op.Color)
	switch op.Kind {
	case domain.OpRect:
		s.pdf.SetFillColor(r, g, b)
		s.pdf.Rect(op.X, op.Y, op.W, op.H, "F")
	case domain.OpText:
		if op.Text == "" {
			return
		}
		s.pdf.SetFont(s.family, "", op.Size)
		s.pdf.SetTextColor(r, g, b)
		s.pdf.Text(op.X, op.Y, s.encode(op.Text))
	}
}

func rgb(c domain.Color) (int, int, int) {
	return int(c.R*255 + 0.5), int(c.G*255 + 0.5), int(c.B*255 + 0.5)
}
