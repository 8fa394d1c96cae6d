package catalog

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/dbx"
	"github.com/dmitrijs2005/storefront/internal/server/models"
)

// packageSelect yields one row per package item, ordered so that rows of the
// same package are adjacent and items keep their catalog position.
const packageSelect = `
		SELECT p.id, p.discount, p.number_of_shipment,
		       pr.id, pr.name, pr.description, pr.price, pr.image,
		       b.id, b.name, pi.quantity
		FROM packages p
		JOIN package_items pi ON pi.package_id = p.id
		JOIN products pr ON pr.id = pi.product_id
		JOIN brands b ON b.id = pr.brand_id
	`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListPackages(ctx context.Context, f Filter) ([]models.Package, error) {
	query := packageSelect + `
		WHERE ($1 = '' OR EXISTS (
		        SELECT 1 FROM package_items fi
		        JOIN products fp ON fp.id = fi.product_id
		        JOIN brands fb ON fb.id = fp.brand_id
		        WHERE fi.package_id = p.id
		          AND (fp.name ILIKE '%' || $1 || '%' OR fb.name ILIKE '%' || $1 || '%')))
		  AND ($2 = '' OR EXISTS (
		        SELECT 1 FROM package_items fi
		        JOIN products fp ON fp.id = fi.product_id
		        WHERE fi.package_id = p.id AND fp.brand_id = $2))
		ORDER BY p.created_at DESC, p.id, pi.position
	`
	return r.query(ctx, query, f.Query, f.BrandID)
}

func (r *PostgresRepository) GetPackage(ctx context.Context, id string) (*models.Package, error) {
	query := packageSelect + `
		WHERE p.id = $1
		ORDER BY pi.position
	`
	pkgs, err := r.query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	if len(pkgs) == 0 {
		return nil, common.ErrorNotFound
	}
	return &pkgs[0], nil
}

func (r *PostgresRepository) query(ctx context.Context, query string, args ...any) ([]models.Package, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var pkgs []models.Package
	for rows.Next() {
		var (
			p  models.Package
			it models.PackageItem
		)
		if err := rows.Scan(&p.ID, &p.Discount, &p.NumberOfShipment,
			&it.Product.ID, &it.Product.Name, &it.Product.Description, &it.Product.Price, &it.Product.Image,
			&it.Product.Brand.ID, &it.Product.Brand.Name, &it.Quantity); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}

		if n := len(pkgs); n > 0 && pkgs[n-1].ID == p.ID {
			pkgs[n-1].Items = append(pkgs[n-1].Items, it)
			continue
		}
		p.Items = []models.PackageItem{it}
		pkgs = append(pkgs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return pkgs, nil
}
