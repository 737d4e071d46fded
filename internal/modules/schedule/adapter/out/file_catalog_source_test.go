package out_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	scheduleout "github.com/mkarson1997/karatay-ders-program/internal/modules/schedule/adapter/out"
	apperrors "github.com/mkarson1997/karatay-ders-program/internal/platform/errors"
)

func TestFileCatalogSourceReadsJSONAndYAML(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	for name, content := range map[string]string{"courses.json": catalogJSON, "courses.yaml": catalogYAML} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		catalog, err := scheduleout.NewFileCatalogSource(path).Load(context.Background())
		if err != nil {
			t.Fatalf("load %s: %v", name, err)
		}
		if catalog.Term != "2026-2027 Güz" || len(catalog.Programs) != 1 {
			t.Fatalf("%s: unexpected catalog %+v", name, catalog)
		}
		sessions := catalog.Programs[0].Courses[0].Sessions
		if len(sessions) != 2 || sessions[1].Day != "Salı" || sessions[1].Start != "13:00" || sessions[1].Group != 2 {
			t.Fatalf("%s: unexpected sessions %+v", name, sessions)
		}
	}
}

func TestFileCatalogSourceMissingFile(t *testing.T) {
	t.Parallel()
	_, err := scheduleout.NewFileCatalogSource(filepath.Join(t.TempDir(), "none.json")).Load(context.Background())
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDecodeCatalogRejectsGarbage(t *testing.T) {
	t.Parallel()
	if _, err := scheduleout.DecodeCatalog(".json", []byte("{")); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestRPCRoundTripKeepsGroups(t *testing.T) {
	t.Parallel()
	catalog, err := scheduleout.DecodeCatalog(".json", []byte(catalogJSON))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	wire := scheduleout.ToRPC(catalog)
	if wire.Programs[0].Courses[0].Sessions[1].Group != 2 {
		t.Fatalf("group lost on the wire: %+v", wire)
	}
}
