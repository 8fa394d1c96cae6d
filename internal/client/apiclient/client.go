// Package apiclient is the authenticated HTTP client of the storefront API.
//
// Every call passes through an explicit interceptor chain. The auth stage
// attaches the stored access credential, answers a 403 with one refresh and
// one retry, and clears the session on a 401.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dmitrijs2005/storefront/internal/client/storage"
	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/logging"
	"github.com/dmitrijs2005/storefront/internal/netx"
)

const DefaultRequestTimeout = 15 * time.Second

type Client struct {
	baseURL        string
	httpClient     *http.Client
	requestTimeout time.Duration
	logger         logging.Logger
	metrics        *Metrics
	extra          []Interceptor
	auth           *authStage
	invoke         Invoker
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithRequestTimeout bounds each HTTP exchange. Zero disables the bound.
func WithRequestTimeout(d time.Duration) Option {
	return func(c *Client) { c.requestTimeout = d }
}

func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.logger = l }
}

func WithMetrics(m *Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// WithInterceptors adds stages between the logging stage and the auth stage.
func WithInterceptors(ics ...Interceptor) Option {
	return func(c *Client) { c.extra = append(c.extra, ics...) }
}

// WithSessionClearedHook registers fn to run after both credentials were
// removed because the server declared the session invalid.
func WithSessionClearedHook(fn func(context.Context)) Option {
	return func(c *Client) { c.auth.onCleared = fn }
}

// New builds a client for the API at baseURL. Credentials are read from
// store on every call and refreshed through refresher.
func New(baseURL string, store storage.Store, refresher Refresher, opts ...Option) (*Client, error) {
	base, err := netx.NormalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	c := &Client{
		baseURL:        base,
		httpClient:     &http.Client{},
		requestTimeout: DefaultRequestTimeout,
		logger:         logging.Nop(),
		auth:           &authStage{store: store, refresher: refresher},
	}
	for _, o := range opts {
		o(c)
	}
	if c.metrics == nil {
		c.metrics = NewMetrics(nil)
	}

	c.logger = c.logger.With("module", "apiclient")
	c.auth.logger = c.logger
	c.auth.metrics = c.metrics

	stages := []Interceptor{
		RequestIDInterceptor(),
		LoggingInterceptor(c.logger, c.metrics),
	}
	stages = append(stages, c.extra...)
	stages = append(stages, c.auth.intercept)

	c.invoke = chain(c.send, stages...)

	return c, nil
}

func (c *Client) BaseURL() string { return c.baseURL }

// Invoke performs one API call and returns the response body. Non-2xx
// responses come back as *HTTPError; see the package doc for the auth
// handling.
func (c *Client) Invoke(ctx context.Context, method, path string, opts ...CallOption) ([]byte, error) {
	call := newCall(method, path, opts...)

	resp, err := c.invoke(ctx, call)
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, &HTTPError{Status: resp.Status, Body: resp.Body}
	}
	return resp.Body, nil
}

// Do is Invoke with JSON on both ends. in and out may be nil.
func (c *Client) Do(ctx context.Context, method, path string, in, out any, opts ...CallOption) error {
	// never append into the caller's backing array
	opts = opts[:len(opts):len(opts)]

	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		opts = append(opts, WithBody(b, common.JSONContent))
	}
	opts = append(opts, WithHeader("Accept", common.JSONContent))

	body, err := c.Invoke(ctx, method, path, opts...)
	if err != nil {
		return err
	}

	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

// send is the innermost invoker: one HTTP exchange.
func (c *Client) send(ctx context.Context, call *Call) (*Response, error) {
	if c.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.requestTimeout)
		defer cancel()
	}

	url := netx.JoinURL(c.baseURL, call.Path, call.Query)

	var body io.Reader
	if call.Body != nil {
		body = bytes.NewReader(call.Body)
	}

	req, err := http.NewRequestWithContext(ctx, call.Method, url, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header = call.Header.Clone()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Method: call.Method, URL: url, Err: err}
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Method: call.Method, URL: url, Err: err}
	}

	return &Response{Status: resp.StatusCode, Header: resp.Header, Body: b}, nil
}
