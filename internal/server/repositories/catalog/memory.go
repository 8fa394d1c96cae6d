package catalog

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/server/models"
)

// MemoryRepository serves a fixed catalog from process memory.
type MemoryRepository struct {
	packages []models.Package
}

// NewMemoryRepository returns a repository over pkgs. Order is preserved.
func NewMemoryRepository(pkgs []models.Package) *MemoryRepository {
	return &MemoryRepository{packages: pkgs}
}

func (r *MemoryRepository) ListPackages(ctx context.Context, f Filter) ([]models.Package, error) {
	q := strings.ToLower(strings.TrimSpace(f.Query))

	out := make([]models.Package, 0, len(r.packages))
	for _, p := range r.packages {
		if f.BrandID != "" && !p.HasBrand(f.BrandID) {
			continue
		}
		if q != "" && !matches(p, q) {
			continue
		}
		out = append(out, clonePackage(p))
	}
	return out, nil
}

func (r *MemoryRepository) GetPackage(ctx context.Context, id string) (*models.Package, error) {
	for _, p := range r.packages {
		if p.ID == id {
			c := clonePackage(p)
			return &c, nil
		}
	}
	return nil, common.ErrorNotFound
}

func matches(p models.Package, q string) bool {
	for _, it := range p.Items {
		if strings.Contains(strings.ToLower(it.Product.Name), q) ||
			strings.Contains(strings.ToLower(it.Product.Brand.Name), q) {
			return true
		}
	}
	return false
}

func clonePackage(p models.Package) models.Package {
	p.Items = append([]models.PackageItem(nil), p.Items...)
	return p
}
