package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mkarson1997/karatay-ders-program/internal/modules/schedule/domain"
	scheduleout "github.com/mkarson1997/karatay-ders-program/internal/modules/schedule/port/out"
	apperrors "github.com/mkarson1997/karatay-ders-program/internal/platform/errors"
)

// FileCatalogSource reads a catalog produced by the scraper. JSON and YAML
// are picked by extension.
type FileCatalogSource struct {
	path string
}

func NewFileCatalogSource(path string) scheduleout.CatalogSource {
	return &FileCatalogSource{path: path}
}

func (s *FileCatalogSource) Load(_ context.Context) (domain.Catalog, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Catalog{}, fmt.Errorf("%w: catalog %s", apperrors.ErrNotFound, s.path)
		}
		return domain.Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	return DecodeCatalog(filepath.Ext(s.path), payload)
}

// DecodeCatalog parses payload as YAML for .yaml/.yml and as JSON otherwise.
func DecodeCatalog(ext string, payload []byte) (domain.Catalog, error) {
	catalog := domain.Catalog{}
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(payload, &catalog); err != nil {
			return domain.Catalog{}, fmt.Errorf("decode catalog yaml: %w", err)
		}
	default:
		if err := json.Unmarshal(payload, &catalog); err != nil {
			return domain.Catalog{}, fmt.Errorf("decode catalog json: %w", err)
		}
	}
	return catalog, nil
}
