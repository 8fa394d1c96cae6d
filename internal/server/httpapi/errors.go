package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/storefront/internal/common"
)

// APIError is the body of every error response.
// Code is a short stable identifier; Message is safe to show to users.
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

type ErrorResponse struct {
	Error APIError `json:"error"`
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, msg string) {
	resp := ErrorResponse{Error: APIError{Code: code, Message: msg}}
	if rid := r.Header.Get(common.RequestIDHeaderName); rid != "" {
		resp.Error.RequestID = rid
	}
	writeJSON(w, status, resp)
}

// toHTTP maps a service error to a status, code and message. Unknown errors
// become 500 without leaking details.
func toHTTP(err error) (int, string, string) {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return http.StatusBadRequest, "invalid_argument", "invalid argument"
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound, "not_found", "not found"
	case errors.Is(err, common.ErrorAlreadyExists):
		return http.StatusConflict, "already_exists", "already exists"
	case errors.Is(err, common.ErrTokenExpired):
		return http.StatusForbidden, "token_expired", "access token expired"
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrRefreshTokenExpired):
		return http.StatusUnauthorized, "unauthenticated", "unauthenticated"
	default:
		return http.StatusInternalServerError, "internal", "internal error"
	}
}

// fail logs unexpected errors and writes the mapped response.
func (s *HTTPServer) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, code, msg := toHTTP(err)
	if status == http.StatusInternalServerError {
		s.logger.Error(r.Context(), err.Error(), "path", r.URL.Path)
	}
	writeError(w, r, status, code, msg)
}
