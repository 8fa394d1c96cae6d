// Package refreshtokens stores the opaque refresh credentials handed out at
// login. Expiry is decided by the caller's clock and saved with the token.
package refreshtokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/storefront/internal/server/models"
)

type Repository interface {
	// Create saves t and fills in t.CreatedAt.
	Create(ctx context.Context, t *models.RefreshToken) error

	// Find returns common.ErrorNotFound for an unknown token.
	Find(ctx context.Context, token string) (*models.RefreshToken, error)

	// Delete is idempotent.
	Delete(ctx context.Context, token string) error

	// PurgeExpired drops the tokens of userID that expired at or before now
	// and reports how many were removed.
	PurgeExpired(ctx context.Context, userID string, now time.Time) (int64, error)
}
