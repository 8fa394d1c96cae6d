// Package users declares the account repository and its PostgreSQL and
// in-memory implementations.
package users

import (
	"context"

	"github.com/dmitrijs2005/storefront/internal/server/models"
)

// Repository stores storefront accounts. Emails are unique; lookups of a
// missing account return common.ErrorNotFound.
type Repository interface {
	// Create inserts user and fills in its ID and CreatedAt. A duplicate
	// email yields common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}
