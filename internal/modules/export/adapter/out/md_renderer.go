package out

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mkarson1997/karatay-ders-program/internal/modules/export/domain"
	exportout "github.com/mkarson1997/karatay-ders-program/internal/modules/export/port/out"
	apperrors "github.com/mkarson1997/karatay-ders-program/internal/platform/errors"
	"github.com/mkarson1997/karatay-ders-program/internal/platform/markdown"
)

type markdownMeta struct {
	Title     string `yaml:"title"`
	Term      string `yaml:"term"`
	Mode      string `yaml:"mode"`
	Student   string `yaml:"student,omitempty"`
	CreatedAt string `yaml:"created_at"`
}

type MarkdownRenderer struct{}

func NewMarkdownRenderer() exportout.Renderer {
	return &MarkdownRenderer{}
}

func (r *MarkdownRenderer) Format() domain.Format {
	return domain.FormatMarkdown
}

func (r *MarkdownRenderer) Render(_ context.Context, doc domain.Document, path string) (domain.Output, error) {
	var b strings.Builder
	b.WriteString("# " + doc.Title + "\n\n")
	b.WriteString(doc.Subtitle + "\n\n")
	if line := doc.StudentLine(); line != "" {
		b.WriteString(line + "\n\n")
	}
	b.WriteString("| Gün | Ders | Saat | Sınıf |\n|---|---|---|---|\n")
	entries := domain.OrderEntries(doc.Schedule.Entries)
	if len(entries) == 0 {
		b.WriteString("| - | Hiç ders seçilmedi | - | - |\n")
	}
	for _, e := range entries {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", e.Day, escapeCell(e.CourseName), e.TimeRange(), escapeCell(e.RoomOrDash()))
	}
	b.WriteString("\n## Notlar\n\n")
	for _, note := range doc.Schedule.Notes {
		b.WriteString("- " + note.String() + "\n")
	}

	content, err := markdown.RenderFrontmatter(markdownMeta{
		Title:     doc.Title,
		Term:      doc.Schedule.Term,
		Mode:      doc.Schedule.Mode,
		Student:   doc.Student,
		CreatedAt: doc.CreatedAt.Format(time.RFC3339),
	}, b.String())
	if err != nil {
		return domain.Output{}, err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return domain.Output{}, fmt.Errorf("%w: write markdown: %v", apperrors.ErrAssetUnavailable, err)
	}
	return domain.Output{Path: path, Bytes: int64(len(content))}, nil
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
