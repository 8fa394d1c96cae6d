// Package common contains shared constants and sentinel errors used by the
// storefront client and its development API server.
package common

// Header names used on every API exchange.
const (
	AuthorizationHeaderName = "Authorization"
	RequestIDHeaderName     = "X-Request-Id"
	ContentTypeHeaderName   = "Content-Type"

	BearerPrefix = "Bearer "
	JSONContent  = "application/json"
)

// Keys of the client's persistent key-value store. The names match the
// storage keys the mobile client used so that exported stores stay readable.
const (
	AccessTokenKey   = "accessToken"
	RefreshTokenKey  = "refreshToken"
	SearchHistoryKey = "searchHistory"
	UserIDKey        = "userID"
)
