package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/dmitrijs2005/storefront/internal/client/config"
	"github.com/dmitrijs2005/storefront/internal/client/services"
	"github.com/dmitrijs2005/storefront/internal/client/state"
	"github.com/dmitrijs2005/storefront/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config  *config.Config
	auth    services.AuthService
	catalog services.CatalogService
	orders  services.OrderService
	state   *state.AppState
	logger  logging.Logger
	reader  *bufio.Reader
	out     io.Writer

	modeMu sync.Mutex
	mode   Mode
}

// Services groups what the App needs to run its commands.
type Services struct {
	Auth    services.AuthService
	Catalog services.CatalogService
	Orders  services.OrderService
}

func NewApp(c *config.Config, svc Services, st *state.AppState, logger logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		config:  c,
		auth:    svc.Auth,
		catalog: svc.Catalog,
		orders:  svc.Orders,
		state:   st,
		logger:  logger.With("module", "cli"),
		reader:  bufio.NewReader(in),
		out:     out,
	}
}

func (a *App) Mode() Mode {
	a.modeMu.Lock()
	defer a.modeMu.Unlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.modeMu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.modeMu.Unlock()

	if changed {
		fmt.Fprintf(a.out, "Switched to %s mode\n", mode)
	}
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	_, ok := a.state.User()
	return ok
}

// StartOnlineStatusWatcher pings the API every interval and flips the mode
// when reachability changes. It returns when ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) checkOnline(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := a.auth.Ping(pingCtx); err != nil {
		a.logger.Debug(ctx, "ping failed", "error", err)
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}
