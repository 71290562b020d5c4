package domain

import (
	"context"

	"cictt/internal/core/hazard"
	"cictt/internal/core/taxonomy"
)

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Categories(ctx context.Context, in CategoriesQuery) ([]taxonomy.Category, error)
	Category(ctx context.Context, in CodeQuery) (taxonomy.Category, error)
	Manual(ctx context.Context, in CodeQuery) (hazard.CategoryResult, error)
	Groups(ctx context.Context) ([]string, error)
	Search(ctx context.Context, in SearchQuery) ([]SearchHit, error)
}
