package out

import (
	"context"

	"github.com/mkarson1997/karatay-ders-program/internal/modules/schedule/domain"
)

// CatalogSource yields the parsed course catalog. Scraping the university
// site is the job of whoever produces the catalog.
type CatalogSource interface {
	Load(ctx context.Context) (domain.Catalog, error)
}

type PlanStore interface {
	Load(ctx context.Context, path string) (domain.Plan, error)
	Save(ctx context.Context, path string, plan domain.Plan) error
}
