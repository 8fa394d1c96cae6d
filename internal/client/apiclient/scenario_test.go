package apiclient_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/dmitrijs2005/storefront/internal/client/apiclient"
	"github.com/dmitrijs2005/storefront/internal/client/refresh"
	"github.com/dmitrijs2005/storefront/internal/client/storage"
	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// fakeAPI serves /api/orders and the refresh endpoint. Orders accept only
// the current access token; anything else is answered with 403.
type fakeAPI struct {
	mu            sync.Mutex
	current       string
	next          string
	refreshHits   atomic.Int32
	orderAuth     []string
	refreshGate   chan struct{}
	forbidBarrier *sync.WaitGroup
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case refresh.Path:
		f.refreshHits.Add(1)
		if f.refreshGate != nil {
			<-f.refreshGate
		}
		var in struct {
			RefreshToken string `json:"refreshToken"`
		}
		_ = json.NewDecoder(r.Body).Decode(&in)
		if in.RefreshToken != "R1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		f.mu.Lock()
		f.current = f.next
		f.mu.Unlock()
		_ = json.NewEncoder(w).Encode(map[string]string{"accessToken": f.next})

	case "/api/orders":
		auth := r.Header.Values(common.AuthorizationHeaderName)
		f.mu.Lock()
		f.orderAuth = append(f.orderAuth, auth...)
		ok := len(auth) == 1 && auth[0] == common.BearerPrefix+f.current
		f.mu.Unlock()
		if !ok {
			if f.forbidBarrier != nil {
				f.forbidBarrier.Done()
				f.forbidBarrier.Wait()
			}
			w.WriteHeader(http.StatusForbidden)
			return
		}
		_, _ = io.WriteString(w, `[{"_id":"o1"}]`)

	default:
		http.NotFound(w, r)
	}
}

func (f *fakeAPI) authHeaders() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.orderAuth...)
}

func build(t *testing.T, url string, store storage.Store, tr *http.Transport) *apiclient.Client {
	t.Helper()
	hc := &http.Client{Transport: tr}
	coord, err := refresh.New(url, store, refresh.WithHTTPClient(hc))
	require.NoError(t, err)
	c, err := apiclient.New(url, store, coord, apiclient.WithHTTPClient(hc))
	require.NoError(t, err)
	return c
}

func seed(t *testing.T, access, refreshToken string) *storage.MemoryStore {
	t.Helper()
	s := storage.NewMemoryStore()
	require.NoError(t, storage.SavePair(context.Background(), s, storage.Pair{AccessToken: access, RefreshToken: refreshToken}))
	return s
}

func TestScenarioA_ExpiredAccessIsRefreshedAndRetried(t *testing.T) {
	api := &fakeAPI{current: "A2", next: "A2"}
	srv := httptest.NewServer(api)
	defer srv.Close()
	tr := &http.Transport{}
	defer tr.CloseIdleConnections()

	store := seed(t, "A1", "R1")
	c := build(t, srv.URL, store, tr)

	body, err := c.Invoke(context.Background(), http.MethodGet, "/api/orders")
	require.NoError(t, err)

	assert.JSONEq(t, `[{"_id":"o1"}]`, string(body))
	assert.Equal(t, []string{"Bearer A1", "Bearer A2"}, api.authHeaders())
	assert.Equal(t, int32(1), api.refreshHits.Load())

	p, err := storage.ReadPair(context.Background(), store)
	require.NoError(t, err)
	assert.Equal(t, storage.Pair{AccessToken: "A2", RefreshToken: "R1"}, p)
}

func TestScenarioA_RejectedRefreshClearsSession(t *testing.T) {
	api := &fakeAPI{current: "A2", next: "A2"}
	srv := httptest.NewServer(api)
	defer srv.Close()
	tr := &http.Transport{}
	defer tr.CloseIdleConnections()

	store := seed(t, "A1", "R-revoked")
	c := build(t, srv.URL, store, tr)

	_, err := c.Invoke(context.Background(), http.MethodGet, "/api/orders")
	require.ErrorIs(t, err, apiclient.ErrAuthExhausted)
	require.ErrorIs(t, err, refresh.ErrRejected)

	p, err := storage.ReadPair(context.Background(), store)
	require.NoError(t, err)
	assert.Equal(t, storage.Pair{}, p)
}

func TestScenarioD_ConcurrentExpiryRefreshesOnce(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	const callers = 2

	var barrier sync.WaitGroup
	barrier.Add(callers)
	api := &fakeAPI{current: "", next: "A2", forbidBarrier: &barrier}

	srv := httptest.NewServer(api)
	defer srv.Close()
	tr := &http.Transport{}
	defer tr.CloseIdleConnections()

	store := seed(t, "A1", "R1")
	c := build(t, srv.URL, store, tr)

	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = c.Invoke(context.Background(), http.MethodGet, "/api/orders")
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), api.refreshHits.Load(), "refresh endpoint must be called exactly once")

	headers := api.authHeaders()
	require.Len(t, headers, 2*callers)
	var retried []string
	for _, h := range headers {
		if h != "Bearer A1" {
			retried = append(retried, h)
		}
	}
	assert.Equal(t, []string{"Bearer A2", "Bearer A2"}, retried)
}

func TestScenarioD_ManyCallersShareOneExchange(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	const callers = 8

	gate := make(chan struct{})
	api := &fakeAPI{current: "", next: "A2", refreshGate: gate}
	srv := httptest.NewServer(api)
	defer srv.Close()
	tr := &http.Transport{}
	defer tr.CloseIdleConnections()

	store := seed(t, "A1", "R1")
	c := build(t, srv.URL, store, tr)

	var wg sync.WaitGroup
	var failures atomic.Int32
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := c.Invoke(context.Background(), http.MethodGet, "/api/orders"); err != nil {
				failures.Add(1)
			}
		}()
	}

	require.Eventually(t, func() bool { return api.refreshHits.Load() == 1 }, testTimeout, tick)
	close(gate)
	wg.Wait()

	assert.Equal(t, int32(0), failures.Load())
	assert.Equal(t, int32(1), api.refreshHits.Load())
}
