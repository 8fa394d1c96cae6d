// Package netx contains URL helpers shared by the API client and the
// refresh coordinator.
package netx

import (
	"fmt"
	"net/url"
	"strings"
)

// NormalizeBaseURL validates an API host and returns it without a trailing
// slash. A bare host:port gets the http scheme.
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty base url")
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("base url %q has no host", raw)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// JoinURL appends an API path and an optional query to a normalized base.
func JoinURL(base, path string, query url.Values) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	s := base + path
	if len(query) > 0 {
		s += "?" + query.Encode()
	}
	return s
}
