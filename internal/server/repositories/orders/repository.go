// Package orders declares the order repository and its PostgreSQL and
// in-memory implementations.
package orders

import (
	"context"

	"github.com/dmitrijs2005/storefront/internal/server/models"
)

type Repository interface {
	// Create inserts order and fills in its ID and CreatedAt.
	Create(ctx context.Context, order *models.Order) (*models.Order, error)
	// ListByUser returns the user's orders, newest first.
	ListByUser(ctx context.Context, userID string) ([]models.Order, error)
}
