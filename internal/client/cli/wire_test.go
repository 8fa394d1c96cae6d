package cli

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/storefront/internal/client/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_WiresAppAgainstAPI(t *testing.T) {
	silencePrintln(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/ping":
			_, _ = io.WriteString(w, `{"status":"OK"}`)
		case "/api/packages":
			_, _ = io.WriteString(w, `[{"_id":"p1","products":[{"product":{"name":"Sneaker"},"quantity":1}],"totalPriceDiscount":1000}]`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.APIHost = srv.URL
	cfg.DBPath = filepath.Join(t.TempDir(), "nested", "store.db")
	cfg.StorePassphrase = "pass"
	cfg.OnlineCheckInterval = time.Hour

	var out strings.Builder
	app, closer, err := Setup(context.Background(), cfg, strings.NewReader("home\nexit\n"), &out, io.Discard)
	require.NoError(t, err)
	defer closer.Close()

	app.Root(context.Background())

	assert.Contains(t, out.String(), "Switched to online mode")
	assert.Contains(t, out.String(), "p1  Sneaker  1.000 ₫")
	assert.False(t, app.isLoggedIn())
}

func TestSetup_BadLogLevel(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.LogLevel = "loud"

	_, _, err := Setup(context.Background(), cfg, strings.NewReader(""), io.Discard, io.Discard)
	assert.Error(t, err)
}

func TestSetup_BadAPIHost(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.DBPath = filepath.Join(t.TempDir(), "store.db")
	cfg.APIHost = "ftp://example.com"

	_, _, err := Setup(context.Background(), cfg, strings.NewReader(""), io.Discard, io.Discard)
	assert.Error(t, err)
}
