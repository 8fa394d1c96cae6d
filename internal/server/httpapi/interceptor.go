package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/server/auth"
)

const userIDKey ctxKey = "userID"

// Token rejection reasons, used as metric labels.
const (
	rejectMissing = "missing"
	rejectInvalid = "invalid"
	rejectExpired = "expired"
)

// accessToken admits requests carrying a valid bearer access token and
// stores its user id in the context. A missing, malformed or forged token is
// answered with 401; an expired one with 403, which tells the client to
// refresh and retry.
func (s *HTTPServer) accessToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := common.ParseBearer(r.Header.Get(common.AuthorizationHeaderName))
		if !ok {
			s.metrics.TokenRejections.WithLabelValues(rejectMissing).Inc()
			writeError(w, r, http.StatusUnauthorized, "unauthenticated", "missing token")
			return
		}

		userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
		if err != nil {
			if errors.Is(err, common.ErrTokenExpired) {
				s.metrics.TokenRejections.WithLabelValues(rejectExpired).Inc()
				writeError(w, r, http.StatusForbidden, "token_expired", "access token expired")
				return
			}
			s.metrics.TokenRejections.WithLabelValues(rejectInvalid).Inc()
			writeError(w, r, http.StatusUnauthorized, "unauthenticated", "invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext returns the user admitted by the access token middleware.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}
