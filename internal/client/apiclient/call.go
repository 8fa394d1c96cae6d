package apiclient

import (
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/storefront/internal/common"
)

// Call is one logical API request as it travels through the interceptor
// chain. The body is buffered so the call can be sent again after a refresh.
type Call struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte

	retried  bool
	skipAuth bool
}

// Retried reports whether the call has already been re-issued after a
// credential refresh. It flips false to true at most once.
func (c *Call) Retried() bool { return c.retried }

// SkipsAuth reports whether the call bypasses the auth stage.
func (c *Call) SkipsAuth() bool { return c.skipAuth }

// Response is a fully read HTTP response.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

func (r *Response) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

type CallOption func(*Call)

func WithQuery(q url.Values) CallOption {
	return func(c *Call) {
		for k, vs := range q {
			for _, v := range vs {
				c.Query.Add(k, v)
			}
		}
	}
}

func WithHeader(key, value string) CallOption {
	return func(c *Call) {
		c.Header.Set(key, value)
	}
}

// WithoutAuth sends the call without credentials and keeps its status away
// from the stored session. Credential-issuing endpoints use it, so a failed
// login cannot end a session that is still valid.
func WithoutAuth() CallOption {
	return func(c *Call) { c.skipAuth = true }
}

// WithBody attaches a raw request body.
func WithBody(body []byte, contentType string) CallOption {
	return func(c *Call) {
		c.Body = body
		if contentType != "" {
			c.Header.Set(common.ContentTypeHeaderName, contentType)
		}
	}
}

func newCall(method, path string, opts ...CallOption) *Call {
	c := &Call{
		Method: method,
		Path:   path,
		Query:  url.Values{},
		Header: http.Header{},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func setBearer(c *Call, token string) {
	if token == "" {
		c.Header.Del(common.AuthorizationHeaderName)
		return
	}
	c.Header.Set(common.AuthorizationHeaderName, common.BearerHeader(token))
}
