package markdown_test

import (
	"strings"
	"testing"

	"github.com/mkarson1997/karatay-ders-program/internal/platform/markdown"
)

type noteMeta struct {
	Mode    string `yaml:"mode"`
	Student string `yaml:"student"`
}

func TestRenderAndSplitFrontmatter(t *testing.T) {
	t.Parallel()
	out, err := markdown.RenderFrontmatter(noteMeta{Mode: "y1", Student: "Ali"}, "# Program\n")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(out, "---\nmode: y1\nstudent: Ali\n---\n\n# Program") {
		t.Fatalf("unexpected rendering:\n%s", out)
	}

	var meta noteMeta
	body, err := markdown.SplitFrontmatter(out, &meta)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if meta.Mode != "y1" || meta.Student != "Ali" || !strings.Contains(body, "# Program") {
		t.Fatalf("unexpected split result: %+v %q", meta, body)
	}
	if _, err := markdown.SplitFrontmatter("---\nmode: y1\n", &meta); err == nil {
		t.Fatalf("missing closing separator should fail")
	}
}
