package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/storefront/internal/client/apiclient"
	"github.com/dmitrijs2005/storefront/internal/client/config"
	"github.com/dmitrijs2005/storefront/internal/client/refresh"
	"github.com/dmitrijs2005/storefront/internal/client/services"
	"github.com/dmitrijs2005/storefront/internal/client/session"
	"github.com/dmitrijs2005/storefront/internal/client/state"
	"github.com/dmitrijs2005/storefront/internal/client/storage"
	"github.com/dmitrijs2005/storefront/internal/filex"
	"github.com/dmitrijs2005/storefront/internal/logging"
)

// Setup opens the local store and wires the API client, the refresh
// coordinator and the services into an App. Diagnostics go to logw, user
// output to out. The returned closer releases the store.
func Setup(ctx context.Context, c *config.Config, in io.Reader, out, logw io.Writer) (*App, io.Closer, error) {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	logger := logging.New(level, logw, false)

	dbPath, err := filex.EnsureParentDir(c.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("error preparing store location: %w", err)
	}

	db, err := storage.OpenSQLite(ctx, dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("error initializing database: %w", err)
	}

	var store storage.Store = db
	if c.StorePassphrase != "" {
		sealed, err := storage.NewSealedStore(ctx, db, []byte(c.StorePassphrase))
		if err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("error unlocking store: %w", err)
		}
		store = sealed
	}

	coord, err := refresh.New(c.APIHost, store,
		refresh.WithTimeout(c.RefreshTimeout),
		refresh.WithLogger(logger),
	)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	st := state.New()
	api, err := apiclient.New(c.APIHost, store, coord,
		apiclient.WithRequestTimeout(c.RequestTimeout),
		apiclient.WithLogger(logger),
		apiclient.WithSessionClearedHook(func(context.Context) { st.ClearUser() }),
	)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	boot := session.NewBootstrapper(store, api, logger)
	svc := Services{
		Auth:    services.NewAuthService(api, store, boot, st),
		Catalog: services.NewCatalogService(api, store, logger),
		Orders:  services.NewOrderService(api),
	}

	return NewApp(c, svc, st, logger, in, out), db, nil
}
