// Package refresh exchanges the refresh credential for a new access
// credential. Concurrent callers share a single exchange.
package refresh

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dmitrijs2005/storefront/internal/client/storage"
	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/logging"
	"github.com/dmitrijs2005/storefront/internal/netx"
	"golang.org/x/sync/singleflight"
)

const (
	Path           = "/api/auth/refreshtoken"
	DefaultTimeout = 10 * time.Second

	flightKey = "refresh"
)

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type refreshResponse struct {
	AccessToken string `json:"accessToken"`
}

type Coordinator struct {
	endpoint   string
	store      storage.Store
	httpClient *http.Client
	timeout    time.Duration
	logger     logging.Logger
	group      singleflight.Group
}

type Option func(*Coordinator)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Coordinator) { c.httpClient = hc }
}

// WithTimeout bounds the shared exchange, independently of any caller.
func WithTimeout(d time.Duration) Option {
	return func(c *Coordinator) { c.timeout = d }
}

func WithLogger(l logging.Logger) Option {
	return func(c *Coordinator) { c.logger = l }
}

// New returns a coordinator that posts to the refresh endpoint of the API
// at baseURL. It uses its own HTTP client so the exchange never passes
// through the authenticated interceptor chain.
func New(baseURL string, store storage.Store, opts ...Option) (*Coordinator, error) {
	base, err := netx.NormalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	c := &Coordinator{
		endpoint:   netx.JoinURL(base, Path, nil),
		store:      store,
		httpClient: &http.Client{},
		timeout:    DefaultTimeout,
		logger:     logging.Nop(),
	}
	for _, o := range opts {
		o(c)
	}
	c.logger = c.logger.With("module", "refresh")

	return c, nil
}

// Refresh returns a usable access credential for a caller whose call was
// rejected while carrying staleAccess.
//
// If the store already holds a different access credential, another caller
// refreshed in the meantime and that credential is returned without network
// traffic. Otherwise the caller joins the in-flight exchange or starts one.
// "" with a nil error means there is no refresh credential.
func (c *Coordinator) Refresh(ctx context.Context, staleAccess string) (string, error) {
	if fresh, err := c.newerThan(ctx, staleAccess); err != nil || fresh != "" {
		return fresh, err
	}

	detached := context.WithoutCancel(ctx)

	ch := c.group.DoChan(flightKey, func() (any, error) {
		if fresh, err := c.newerThan(detached, staleAccess); err != nil || fresh != "" {
			return fresh, err
		}
		return c.exchange(detached)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	case <-ctx.Done():
		return "", &TransportError{Err: ctx.Err()}
	}
}

// newerThan returns the stored access credential when it differs from stale.
func (c *Coordinator) newerThan(ctx context.Context, stale string) (string, error) {
	current, err := storage.ReadString(ctx, c.store, common.AccessTokenKey)
	if err != nil {
		return "", fmt.Errorf("read access token: %w", err)
	}
	if current != "" && current != stale {
		return current, nil
	}
	return "", nil
}

func (c *Coordinator) exchange(ctx context.Context) (string, error) {
	refreshToken, err := storage.ReadString(ctx, c.store, common.RefreshTokenKey)
	if err != nil {
		return "", fmt.Errorf("read refresh token: %w", err)
	}
	if refreshToken == "" {
		return "", nil
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	access, err := c.post(ctx, refreshToken)
	if err != nil {
		c.logger.Warn(ctx, "refresh failed", "error", err)
		return "", err
	}

	// a 401 elsewhere may end the session while we wait or write
	stored, err := storage.SetGuarded(ctx, c.store, common.RefreshTokenKey, refreshToken, common.AccessTokenKey, access)
	if err != nil {
		return "", fmt.Errorf("persist access token: %w", err)
	}
	if !stored {
		c.logger.Info(ctx, "session changed during refresh, discarding result")
		return "", nil
	}

	c.logger.Info(ctx, "access token refreshed")
	return access, nil
}

func (c *Coordinator) post(ctx context.Context, refreshToken string) (string, error) {
	body, err := json.Marshal(refreshRequest{RefreshToken: refreshToken})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", &TransportError{Err: err}
	}
	req.Header.Set(common.ContentTypeHeaderName, common.JSONContent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{Status: resp.StatusCode, Err: err}
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return "", fmt.Errorf("%w (http %d)", ErrRejected, resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return "", &TransportError{Status: resp.StatusCode, Err: fmt.Errorf("unexpected status: %s", bytes.TrimSpace(raw))}
	}

	var out refreshResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", &TransportError{Status: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	if out.AccessToken == "" {
		return "", &TransportError{Status: resp.StatusCode, Err: errors.New("response has no accessToken")}
	}

	return out.AccessToken, nil
}
