package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mkarson1997/karatay-ders-program/internal/modules/export/domain"
	exportout "github.com/mkarson1997/karatay-ders-program/internal/modules/export/port/out"
	apperrors "github.com/mkarson1997/karatay-ders-program/internal/platform/errors"
	"github.com/mkarson1997/karatay-ders-program/internal/platform/markdown"
)

type MarkdownInspector struct{}

func NewMarkdownInspector() exportout.DocumentInspector {
	return &MarkdownInspector{}
}

// Inspect reports the frontmatter fields first, then the non-blank body lines.
func (i *MarkdownInspector) Inspect(_ context.Context, path string) (domain.Inspection, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.Inspection{}, fmt.Errorf("read markdown: %w", err)
	}
	var meta markdownMeta
	body, err := markdown.SplitFrontmatter(string(raw), &meta)
	if err != nil {
		return domain.Inspection{}, err
	}
	out := domain.Inspection{Path: path, Pages: 1}
	for _, kv := range [][2]string{{"title", meta.Title}, {"term", meta.Term}, {"mode", meta.Mode}, {"student", meta.Student}, {"created_at", meta.CreatedAt}} {
		if kv[1] != "" {
			out.Lines = append(out.Lines, kv[0]+": "+kv[1])
		}
	}
	for _, line := range strings.Split(body, "\n") {
		if s := strings.TrimSpace(line); s != "" {
			out.Lines = append(out.Lines, s)
		}
	}
	return out, nil
}

// ExtensionInspector hands a file to the inspector registered for its
// extension.
type ExtensionInspector struct {
	byExt map[string]exportout.DocumentInspector
}

func NewInspector() exportout.DocumentInspector {
	return &ExtensionInspector{byExt: map[string]exportout.DocumentInspector{
		".pdf": NewPDFInspector(),
		".md":  NewMarkdownInspector(),
	}}
}

func (i *ExtensionInspector) Inspect(ctx context.Context, path string) (domain.Inspection, error) {
	ext := strings.ToLower(filepath.Ext(path))
	inspector, ok := i.byExt[ext]
	if !ok {
		return domain.Inspection{}, fmt.Errorf("%w: cannot inspect %q files", apperrors.ErrInvalidInput, ext)
	}
	return inspector.Inspect(ctx, path)
}
