// Package services contains the application services of the storefront
// client. Each service talks to the API through the authenticated client and
// keeps its local state in the client store.
package services

import (
	"context"

	"github.com/dmitrijs2005/storefront/internal/client/apiclient"
)

// API is the subset of *apiclient.Client the services use.
type API interface {
	Do(ctx context.Context, method, path string, in, out any, opts ...apiclient.CallOption) error
}
