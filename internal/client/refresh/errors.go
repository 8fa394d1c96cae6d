package refresh

import (
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/storefront/internal/common"
)

// ErrRejected means the server refused the refresh credential (401/403).
// It wraps common.ErrRefreshTokenExpired so callers outside this package can
// recognise it without importing refresh.
var ErrRejected = fmt.Errorf("refresh credential rejected: %w", common.ErrRefreshTokenExpired)

// TransportError is a refresh exchange that did not produce a usable
// answer: network failure, timeout, 5xx or a malformed body. The stored
// credentials are left untouched.
type TransportError struct {
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("refresh transport error: http %d %s: %v", e.Status, http.StatusText(e.Status), e.Err)
	}
	return fmt.Sprintf("refresh transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool {
	return target == common.ErrUnavailable
}
