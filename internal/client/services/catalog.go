package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/dmitrijs2005/storefront/internal/client/apiclient"
	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/client/storage"
	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/logging"
)

// MaxSearchHistory is how many distinct queries the history keeps.
const MaxSearchHistory = 10

type CatalogService interface {
	ListPackages(ctx context.Context) ([]models.Package, error)
	SearchPackages(ctx context.Context, query string) ([]models.Package, error)
	FilterByBrand(ctx context.Context, brandID string) ([]models.Package, error)
	GetPackage(ctx context.Context, id string) (models.Package, error)
	SearchHistory(ctx context.Context) ([]string, error)
	ClearSearchHistory(ctx context.Context) error
}

type catalogService struct {
	api    API
	store  storage.Store
	logger logging.Logger

	// serialises read-modify-write of the history
	historyMu sync.Mutex
}

func NewCatalogService(api API, store storage.Store, logger logging.Logger) CatalogService {
	return &catalogService{api: api, store: store, logger: logger.With("module", "catalog")}
}

func (c *catalogService) list(ctx context.Context, q url.Values) ([]models.Package, error) {
	var pkgs []models.Package
	if err := c.api.Do(ctx, http.MethodGet, "/api/packages", nil, &pkgs, apiclient.WithQuery(q)); err != nil {
		return nil, fmt.Errorf("fetch packages: %w", err)
	}
	return pkgs, nil
}

func (c *catalogService) ListPackages(ctx context.Context) ([]models.Package, error) {
	return c.list(ctx, nil)
}

// SearchPackages records the query in the history before searching. A
// failure to record is logged and does not fail the search.
func (c *catalogService) SearchPackages(ctx context.Context, query string) ([]models.Package, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: empty search query", common.ErrorValidation)
	}

	if err := c.recordSearch(ctx, query); err != nil {
		c.logger.Error(ctx, "failed to save search history", "error", err)
	}

	return c.list(ctx, url.Values{"q": {query}})
}

func (c *catalogService) FilterByBrand(ctx context.Context, brandID string) ([]models.Package, error) {
	brandID = strings.TrimSpace(brandID)
	if brandID == "" {
		return nil, fmt.Errorf("%w: empty brand id", common.ErrorValidation)
	}
	return c.list(ctx, url.Values{"brandID": {brandID}})
}

func (c *catalogService) GetPackage(ctx context.Context, id string) (models.Package, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return models.Package{}, fmt.Errorf("%w: empty package id", common.ErrorValidation)
	}

	var p models.Package
	if err := c.api.Do(ctx, http.MethodGet, "/api/packages/"+url.PathEscape(id), nil, &p); err != nil {
		return models.Package{}, fmt.Errorf("fetch package %s: %w", id, err)
	}
	return p, nil
}

func (c *catalogService) SearchHistory(ctx context.Context) ([]string, error) {
	raw, err := storage.ReadString(ctx, c.store, common.SearchHistoryKey)
	if err != nil {
		return nil, fmt.Errorf("load search history: %w", err)
	}
	if raw == "" {
		return []string{}, nil
	}

	var history []string
	if err := json.Unmarshal([]byte(raw), &history); err != nil {
		return nil, fmt.Errorf("decode search history: %w", err)
	}
	return history, nil
}

func (c *catalogService) ClearSearchHistory(ctx context.Context) error {
	c.historyMu.Lock()
	defer c.historyMu.Unlock()
	return c.store.Remove(ctx, common.SearchHistoryKey)
}

func (c *catalogService) recordSearch(ctx context.Context, query string) error {
	c.historyMu.Lock()
	defer c.historyMu.Unlock()

	history, err := c.SearchHistory(ctx)
	if err != nil {
		// an unreadable history is replaced rather than blocking new entries
		c.logger.Warn(ctx, "resetting search history", "error", err)
		history = nil
	}

	b, err := json.Marshal(pushHistory(history, query))
	if err != nil {
		return err
	}
	return c.store.Set(ctx, common.SearchHistoryKey, string(b))
}

// pushHistory puts query first, drops older copies of it and caps the list.
func pushHistory(history []string, query string) []string {
	next := make([]string, 0, MaxSearchHistory)
	next = append(next, query)
	for _, h := range history {
		if len(next) == MaxSearchHistory {
			break
		}
		if h != query {
			next = append(next, h)
		}
	}
	return next
}
