package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/storefront/internal/dbx"
	"github.com/dmitrijs2005/storefront/internal/server/models"
	"github.com/dmitrijs2005/storefront/internal/server/repositories/catalog"
	"github.com/dmitrijs2005/storefront/internal/server/repositories/orders"
	"github.com/dmitrijs2005/storefront/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/storefront/internal/server/repositories/users"
)

// InMemoryRepositoryManager serves process-local repositories. The db
// argument of every accessor is ignored and may be nil; there is nothing to
// migrate.
type InMemoryRepositoryManager struct {
	users         *users.MemoryRepository
	refreshTokens *refreshtokens.MemoryRepository
	catalog       *catalog.MemoryRepository
	orders        *orders.MemoryRepository
}

func (m *InMemoryRepositoryManager) RunMigrations(context.Context, *sql.DB) error {
	return nil
}

func (m *InMemoryRepositoryManager) Users(dbx.DBTX) users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) RefreshTokens(dbx.DBTX) refreshtokens.Repository {
	return m.refreshTokens
}

func (m *InMemoryRepositoryManager) Catalog(dbx.DBTX) catalog.Repository {
	return m.catalog
}

func (m *InMemoryRepositoryManager) Orders(dbx.DBTX) orders.Repository {
	return m.orders
}

// NewInMemoryRepositoryManager returns a manager whose catalog serves pkgs.
func NewInMemoryRepositoryManager(pkgs []models.Package) RepositoryManager {
	return &InMemoryRepositoryManager{
		users:         users.NewMemoryRepository(),
		refreshTokens: refreshtokens.NewMemoryRepository(),
		catalog:       catalog.NewMemoryRepository(pkgs),
		orders:        orders.NewMemoryRepository(),
	}
}
