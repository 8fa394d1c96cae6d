// Package catalog declares the read-only repository of brands, products and
// packages, with PostgreSQL and in-memory implementations.
package catalog

import (
	"context"

	"github.com/dmitrijs2005/storefront/internal/server/models"
)

// Filter narrows ListPackages. Zero fields match everything. Query matches
// product or brand names case-insensitively; BrandID keeps packages that
// contain at least one product of that brand.
type Filter struct {
	Query   string
	BrandID string
}

type Repository interface {
	ListPackages(ctx context.Context, f Filter) ([]models.Package, error)
	// GetPackage returns common.ErrorNotFound for an unknown id.
	GetPackage(ctx context.Context, id string) (*models.Package, error)
}
