package apiclient

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/storefront/internal/common"
)

var (
	// ErrAccessExpired matches an HTTPError with status 403: the access
	// credential is no longer accepted and a refresh may help.
	ErrAccessExpired = errors.New("access credential expired")

	// ErrSessionInvalid matches an HTTPError with status 401. The session is
	// gone for good and credentials have been cleared.
	ErrSessionInvalid = errors.New("session invalid")

	// ErrAuthExhausted matches an AuthExhaustedError.
	ErrAuthExhausted = errors.New("authentication exhausted")

	// ErrNoRefreshCredential is the cause of an AuthExhaustedError when a 403
	// arrived and there was no refresh credential to exchange.
	ErrNoRefreshCredential = errors.New("no refresh credential")
)

// NetworkError means no HTTP response was received.
type NetworkError struct {
	Method string
	URL    string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

func (e *NetworkError) Is(target error) bool {
	return target == common.ErrUnavailable
}

// HTTPError is a non-2xx response that left the interceptor chain.
type HTTPError struct {
	Status int
	Body   []byte
}

const maxErrorBody = 256

func (e *HTTPError) Error() string {
	msg := fmt.Sprintf("http %d %s", e.Status, http.StatusText(e.Status))
	if len(e.Body) == 0 {
		return msg
	}
	body := e.Body
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	return fmt.Sprintf("%s: %s", msg, body)
}

func (e *HTTPError) Is(target error) bool {
	switch target {
	case ErrSessionInvalid, common.ErrorUnauthorized:
		return e.Status == http.StatusUnauthorized
	case ErrAccessExpired:
		return e.Status == http.StatusForbidden
	case common.ErrorNotFound:
		return e.Status == http.StatusNotFound
	case common.ErrorAlreadyExists:
		return e.Status == http.StatusConflict
	case common.ErrorValidation:
		return e.Status == http.StatusBadRequest
	case common.ErrUnavailable:
		return e.Status == http.StatusBadGateway || e.Status == http.StatusServiceUnavailable || e.Status == http.StatusGatewayTimeout
	}
	return false
}

// AuthExhaustedError is returned when a 403 could not be recovered: there
// was no refresh credential, the refresh failed, or the retried call was
// rejected again. Cause carries the underlying reason.
type AuthExhaustedError struct {
	Cause error
}

func (e *AuthExhaustedError) Error() string {
	if e.Cause == nil {
		return ErrAuthExhausted.Error()
	}
	return fmt.Sprintf("%s: %v", ErrAuthExhausted, e.Cause)
}

func (e *AuthExhaustedError) Unwrap() error { return e.Cause }

func (e *AuthExhaustedError) Is(target error) bool {
	return target == ErrAuthExhausted || target == common.ErrorUnauthorized
}
