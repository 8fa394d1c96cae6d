// Package httpapi exposes the storefront API over HTTP: a chi router, its
// middleware chain and the JSON handlers.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/storefront/internal/logging"
	"github.com/dmitrijs2005/storefront/internal/server/services"
	"github.com/prometheus/client_golang/prometheus"
)

const defaultShutdownTimeout = 10 * time.Second

// Services are the business operations the handlers call.
type Services struct {
	Users   *services.UserService
	Catalog *services.CatalogService
	Orders  *services.OrderService
}

type HTTPServer struct {
	address         string
	svc             Services
	logger          logging.Logger
	jwtSecret       []byte
	registry        *prometheus.Registry
	metrics         *Metrics
	shutdownTimeout time.Duration
}

type Option func(*HTTPServer)

// WithRegistry exposes reg on /metrics and registers the HTTP metrics on it.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *HTTPServer) { s.registry = reg }
}

func WithShutdownTimeout(d time.Duration) Option {
	return func(s *HTTPServer) {
		if d > 0 {
			s.shutdownTimeout = d
		}
	}
}

func NewHTTPServer(a string, l logging.Logger, svc Services, secretKey string, opts ...Option) *HTTPServer {
	s := &HTTPServer{
		address:         a,
		svc:             svc,
		logger:          l.With("module", "http_server"),
		jwtSecret:       []byte(secretKey),
		shutdownTimeout: defaultShutdownTimeout,
	}
	for _, o := range opts {
		o(s)
	}
	if s.registry == nil {
		s.registry = prometheus.NewRegistry()
	}
	s.metrics = NewMetrics(s.registry)
	return s
}

// Run serves until ctx is done, then stops accepting connections and waits
// up to the shutdown timeout for in-flight requests.
func (s *HTTPServer) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	stopped := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		stopped <- srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return <-stopped
}
