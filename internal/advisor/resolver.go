package advisor

import (
	"context"

	"go.uber.org/zap"

	"github.com/freshnutrients/agrichat/internal/catalog"
	"github.com/freshnutrients/agrichat/internal/intent"
)

// Catalog is the slice of the product store the resolver queries.
type Catalog interface {
	SearchByName(ctx context.Context, pattern string, limit int) ([]catalog.Product, error)
	SearchByCriteria(ctx context.Context, c catalog.Criteria) ([]catalog.Product, error)
	SearchByText(ctx context.Context, pattern string, limit int) ([]catalog.Product, error)
}

// Resolution is the catalog's answer for one accumulated context.
type Resolution struct {
	Products []catalog.Product

	// PHUnified is set when a generic pH mention was expanded into both
	// acidity and salinity queries; the prompt uses it to ask the farmer
	// which way their pH leans.
	PHUnified bool
}

// Resolver maps accumulated context to catalog rows. Catalog failures
// degrade to an empty product list so the conversation keeps going.
type Resolver struct {
	catalog Catalog
	logger  *zap.Logger
}

func NewResolver(c Catalog, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{catalog: c, logger: logger}
}

// Resolve picks the strongest signal in the context and queries the
// catalog with it. A direct product mention short-circuits everything
// else; a problem beats a crop; a crop on its own deliberately returns
// nothing, because recommending by crop alone would list half the
// catalog.
func (r *Resolver) Resolve(ctx context.Context, c intent.ExtractedContext) Resolution {
	if c.ProductName != "" {
		products := r.searchByName(ctx, c.ProductName)
		if len(products) > 0 {
			return Resolution{Products: dedupe(products, true)}
		}
	}

	if c.Problem != "" {
		if c.Problem == intent.ProblemPHGeneric {
			if res := r.resolveGenericPH(ctx, c); len(res.Products) > 0 {
				return res
			}
		} else {
			products := r.searchByCriteria(ctx, catalog.Criteria{
				Problem:         c.Problem,
				Crop:            c.CropType,
				ApplicationType: c.ApplicationType,
			})
			if len(products) > 0 {
				return Resolution{Products: dedupe(products, true)}
			}
		}
	}

	if c.CropType != "" {
		if c.Problem == "" && c.ApplicationType == "" && c.ProductName == "" {
			// Crop alone is not enough to recommend anything.
			return Resolution{}
		}
		products := r.searchByCriteria(ctx, catalog.Criteria{
			Crop:            c.CropType,
			ApplicationType: c.ApplicationType,
			Problem:         c.Problem,
		})
		if len(products) == 0 {
			products = r.searchByText(ctx, c.CropType)
		}
		return Resolution{Products: dedupe(products, true)}
	}

	if c.ApplicationType != "" {
		products := r.searchByCriteria(ctx, catalog.Criteria{ApplicationType: c.ApplicationType})
		return Resolution{Products: dedupe(products, true)}
	}

	return Resolution{}
}

// resolveGenericPH runs both directional pH queries and merges the
// results. Rows are deduplicated without the problem column, so a product
// listed under both acidity and salinity appears once.
func (r *Resolver) resolveGenericPH(ctx context.Context, c intent.ExtractedContext) Resolution {
	var combined []catalog.Product
	for _, problem := range []string{intent.ProblemSoilAcidity, intent.ProblemSoilSalinity} {
		combined = append(combined, r.searchByCriteria(ctx, catalog.Criteria{
			Problem:         problem,
			Crop:            c.CropType,
			ApplicationType: c.ApplicationType,
		})...)
	}
	return Resolution{Products: dedupe(combined, false), PHUnified: true}
}

func (r *Resolver) searchByName(ctx context.Context, name string) []catalog.Product {
	products, err := r.catalog.SearchByName(ctx, name, 0)
	if err != nil {
		r.logger.Warn("catalog name search failed", zap.String("name", name), zap.Error(err))
		return nil
	}
	return products
}

func (r *Resolver) searchByCriteria(ctx context.Context, c catalog.Criteria) []catalog.Product {
	products, err := r.catalog.SearchByCriteria(ctx, c)
	if err != nil {
		r.logger.Warn("catalog criteria search failed", zap.Error(err))
		return nil
	}
	return products
}

func (r *Resolver) searchByText(ctx context.Context, text string) []catalog.Product {
	products, err := r.catalog.SearchByText(ctx, text, 0)
	if err != nil {
		r.logger.Warn("catalog text search failed", zap.String("text", text), zap.Error(err))
		return nil
	}
	return products
}

type productKey struct {
	name, crop, application, growthStage, applicationType, problem string
}

// dedupe drops duplicate rows, keeping first occurrences in order. With
// withProblem false, rows differing only in problem collapse into one.
func dedupe(products []catalog.Product, withProblem bool) []catalog.Product {
	if len(products) == 0 {
		return nil
	}
	seen := make(map[productKey]bool, len(products))
	out := products[:0:0]
	for _, p := range products {
		key := productKey{
			name:            p.ProductName,
			crop:            p.Crop,
			application:     p.Application,
			growthStage:     p.GrowthStage,
			applicationType: p.ApplicationType,
		}
		if withProblem {
			key.problem = p.Problem
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, p)
	}
	return out
}
