package apiclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/dmitrijs2005/storefront/internal/client/storage"
	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/logging"
	"github.com/google/uuid"
)

// RequestIDInterceptor gives every call an X-Request-Id unless the caller
// already set one.
func RequestIDInterceptor() Interceptor {
	return func(ctx context.Context, call *Call, next Invoker) (*Response, error) {
		if call.Header.Get(common.RequestIDHeaderName) == "" {
			call.Header.Set(common.RequestIDHeaderName, uuid.NewString())
		}
		return next(ctx, call)
	}
}

// LoggingInterceptor writes one line per call and counts it in m.
func LoggingInterceptor(logger logging.Logger, m *Metrics) Interceptor {
	return func(ctx context.Context, call *Call, next Invoker) (*Response, error) {
		start := time.Now()
		resp, err := next(ctx, call)

		args := []any{
			"method", call.Method,
			"path", call.Path,
			"request_id", call.Header.Get(common.RequestIDHeaderName),
			"duration", time.Since(start),
			"retried", call.retried,
		}

		if err != nil {
			code := "0"
			var he *HTTPError
			if errors.As(err, &he) {
				code = strconv.Itoa(he.Status)
			}
			m.Requests.WithLabelValues(call.Method, code).Inc()
			logger.Warn(ctx, "api call failed", append(args, "error", err)...)
			return nil, err
		}

		m.Requests.WithLabelValues(call.Method, strconv.Itoa(resp.Status)).Inc()
		if resp.Status >= http.StatusInternalServerError {
			logger.Warn(ctx, "api call", append(args, "status", resp.Status)...)
		} else {
			logger.Debug(ctx, "api call", append(args, "status", resp.Status)...)
		}
		return resp, nil
	}
}

// Refresher exchanges the refresh credential for a new access credential.
// staleAccess is the token the rejected call carried. An empty result with
// a nil error means there was no refresh credential.
type Refresher interface {
	Refresh(ctx context.Context, staleAccess string) (string, error)
}

type authStage struct {
	store     storage.Store
	refresher Refresher
	logger    logging.Logger
	metrics   *Metrics
	onCleared func(context.Context)
}

func (a *authStage) intercept(ctx context.Context, call *Call, next Invoker) (*Response, error) {
	if call.skipAuth {
		setBearer(call, "")
		return next(ctx, call)
	}

	token, err := storage.ReadString(ctx, a.store, common.AccessTokenKey)
	if err != nil {
		return nil, fmt.Errorf("read access token: %w", err)
	}
	setBearer(call, token)

	return a.send(ctx, call, next, token)
}

func (a *authStage) send(ctx context.Context, call *Call, next Invoker, sent string) (*Response, error) {
	resp, err := next(ctx, call)
	if err != nil {
		return nil, err
	}

	switch resp.Status {
	case http.StatusUnauthorized:
		a.clearSession(ctx)
		return resp, nil

	case http.StatusForbidden:
		if call.retried {
			return nil, &AuthExhaustedError{Cause: &HTTPError{Status: resp.Status, Body: resp.Body}}
		}
		call.retried = true

		fresh, err := a.refresher.Refresh(ctx, sent)
		if err != nil {
			if errors.Is(err, common.ErrRefreshTokenExpired) {
				a.metrics.Refreshes.WithLabelValues(RefreshRejected).Inc()
				a.clearSession(ctx)
			} else {
				a.metrics.Refreshes.WithLabelValues(RefreshFailed).Inc()
			}
			return nil, &AuthExhaustedError{Cause: err}
		}
		if fresh == "" {
			a.metrics.Refreshes.WithLabelValues(RefreshAbsent).Inc()
			return nil, &AuthExhaustedError{Cause: ErrNoRefreshCredential}
		}
		a.metrics.Refreshes.WithLabelValues(RefreshOK).Inc()
		a.metrics.Retries.Inc()

		a.logger.Debug(ctx, "retrying after refresh", "method", call.Method, "path", call.Path)
		setBearer(call, fresh)
		return a.send(ctx, call, next, fresh)
	}

	return resp, nil
}

func (a *authStage) clearSession(ctx context.Context) {
	// the clear must finish even if the caller gave up
	ctx = context.WithoutCancel(ctx)

	if err := storage.ClearPair(ctx, a.store); err != nil {
		a.logger.Error(ctx, "failed to clear credentials", "error", err)
		return
	}
	a.metrics.SessionsCleared.Inc()
	a.logger.Info(ctx, "session cleared")

	if a.onCleared != nil {
		a.onCleared(ctx)
	}
}
