package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/logging"
	"github.com/dmitrijs2005/storefront/internal/server/config"
	"github.com/dmitrijs2005/storefront/internal/server/repositories/catalog"
	"github.com/dmitrijs2005/storefront/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/storefront/internal/server/services"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

const testSecret = "secret"

func newTestServer(t *testing.T) *HTTPServer {
	t.Helper()
	cfg := &config.Config{
		SecretKey:                    testSecret,
		AccessTokenValidityDuration:  time.Minute,
		RefreshTokenValidityDuration: time.Hour,
	}
	m := repomanager.NewInMemoryRepositoryManager(catalog.Seed())
	svc := Services{
		Users:   services.NewUserService(nil, m, cfg),
		Catalog: services.NewCatalogService(nil, m, cfg),
		Orders:  services.NewOrderService(nil, m),
	}
	return NewHTTPServer("127.0.0.1:0", logging.Nop(), svc, testSecret, WithRegistry(prometheus.NewRegistry()))
}

func do(t *testing.T, h http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(common.ContentTypeHeaderName, common.JSONContent)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[ErrorResponse](t, rec).Error.Code
}

// signUp registers and logs in alice, returning her credentials.
func signUp(t *testing.T, h http.Handler) credentialsResponse {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/api/auth/register",
		`{"email":"alice@example.com","name":"Alice","password":"hunter2"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, h, http.MethodPost, "/api/auth/login",
		`{"email":"alice@example.com","password":"hunter2"}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return decode[credentialsResponse](t, rec)
}
