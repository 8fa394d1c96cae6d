package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/storefront/internal/dbx"
	"github.com/dmitrijs2005/storefront/internal/server/config"
	"github.com/dmitrijs2005/storefront/internal/server/models"
	catalogrepo "github.com/dmitrijs2005/storefront/internal/server/repositories/catalog"
	ordersrepo "github.com/dmitrijs2005/storefront/internal/server/repositories/orders"
	refreshtokensrepo "github.com/dmitrijs2005/storefront/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/storefront/internal/server/repositories/repomanager"
	usersrepo "github.com/dmitrijs2005/storefront/internal/server/repositories/users"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:                    "k",
		AccessTokenValidityDuration:  time.Hour,
		RefreshTokenValidityDuration: 2 * time.Hour,
		S3Region:                     "us-east-1",
		S3RootUser:                   "minioadmin",
		S3RootPassword:               "minioadmin",
		S3Bucket:                     "storefront",
	}
}

// stubManager serves in-memory repositories unless a replacement is set.
type stubManager struct {
	repomanager.RepositoryManager
	users   usersrepo.Repository
	refresh refreshtokensrepo.Repository
	catalog catalogrepo.Repository
	orders  ordersrepo.Repository
}

func newStubManager() *stubManager {
	return &stubManager{RepositoryManager: repomanager.NewInMemoryRepositoryManager(catalogrepo.Seed())}
}

func (m *stubManager) Users(db dbx.DBTX) usersrepo.Repository {
	if m.users != nil {
		return m.users
	}
	return m.RepositoryManager.Users(db)
}

func (m *stubManager) RefreshTokens(db dbx.DBTX) refreshtokensrepo.Repository {
	if m.refresh != nil {
		return m.refresh
	}
	return m.RepositoryManager.RefreshTokens(db)
}

func (m *stubManager) Catalog(db dbx.DBTX) catalogrepo.Repository {
	if m.catalog != nil {
		return m.catalog
	}
	return m.RepositoryManager.Catalog(db)
}

func (m *stubManager) Orders(db dbx.DBTX) ordersrepo.Repository {
	if m.orders != nil {
		return m.orders
	}
	return m.RepositoryManager.Orders(db)
}

type failingUsers struct{ err error }

func (f failingUsers) Create(context.Context, *models.User) (*models.User, error) { return nil, f.err }
func (f failingUsers) GetUserByEmail(context.Context, string) (*models.User, error) {
	return nil, f.err
}
func (f failingUsers) GetUserByID(context.Context, string) (*models.User, error) { return nil, f.err }

type failingTokens struct{ err error }

func (f failingTokens) Create(context.Context, *models.RefreshToken) error { return f.err }
func (f failingTokens) Find(context.Context, string) (*models.RefreshToken, error) {
	return nil, f.err
}
func (f failingTokens) Delete(context.Context, string) error { return f.err }
func (f failingTokens) PurgeExpired(context.Context, string, time.Time) (int64, error) {
	return 0, f.err
}

type failingCatalog struct{ err error }

func (f failingCatalog) ListPackages(context.Context, catalogrepo.Filter) ([]models.Package, error) {
	return nil, f.err
}
func (f failingCatalog) GetPackage(context.Context, string) (*models.Package, error) {
	return nil, f.err
}

type failingOrders struct{ err error }

func (f failingOrders) Create(context.Context, *models.Order) (*models.Order, error) {
	return nil, f.err
}
func (f failingOrders) ListByUser(context.Context, string) ([]models.Order, error) {
	return nil, f.err
}
