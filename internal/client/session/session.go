// Package session decides at start-up (and on re-focus) whether the
// persisted credentials still describe a usable session.
package session

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/storefront/internal/client/apiclient"
	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/client/storage"
	"github.com/dmitrijs2005/storefront/internal/logging"
)

const ProfilePath = "/api/auth/me"

var errInvalidProfile = errors.New("profile response has no id or email")

// Outcome is the result of a bootstrap run. A zero Outcome is
// Unauthenticated; Authenticated outcomes always carry a valid profile.
type Outcome struct {
	profile *models.User
}

func Authenticated(u models.User) Outcome { return Outcome{profile: &u} }

func Unauthenticated() Outcome { return Outcome{} }

func (o Outcome) Authenticated() bool { return o.profile != nil }

// Profile returns the profile of an Authenticated outcome.
func (o Outcome) Profile() (models.User, bool) {
	if o.profile == nil {
		return models.User{}, false
	}
	return *o.profile, true
}

func (o Outcome) String() string {
	if o.profile == nil {
		return "unauthenticated"
	}
	return "authenticated"
}

// API is the part of apiclient.Client the bootstrap needs.
type API interface {
	Do(ctx context.Context, method, path string, in, out any, opts ...apiclient.CallOption) error
}

type Bootstrapper struct {
	store  storage.Store
	api    API
	logger logging.Logger
}

func NewBootstrapper(store storage.Store, api API, logger logging.Logger) *Bootstrapper {
	return &Bootstrapper{store: store, api: api, logger: logger.With("module", "session")}
}

// Run reads the credential pair and, when both are present, fetches the
// profile through the authenticated client. Every failure yields
// Unauthenticated; the cause goes to the log. Runs are independent and may
// overlap.
func (b *Bootstrapper) Run(ctx context.Context) Outcome {
	pair, err := storage.ReadPair(ctx, b.store)
	if err != nil {
		b.logger.Error(ctx, "session bootstrap: cannot read credentials", "error", err)
		return Unauthenticated()
	}
	if !pair.Complete() {
		b.logger.Debug(ctx, "session bootstrap: no stored session")
		return Unauthenticated()
	}

	var profile models.User
	if err := b.api.Do(ctx, http.MethodGet, ProfilePath, nil, &profile); err != nil {
		b.logger.Warn(ctx, "session bootstrap: profile fetch failed", "error", err)
		return Unauthenticated()
	}
	if !profile.Valid() {
		b.logger.Warn(ctx, "session bootstrap: profile fetch failed", "error", errInvalidProfile)
		return Unauthenticated()
	}

	b.logger.Info(ctx, "session bootstrap: authenticated", "user_id", profile.ID)
	return Authenticated(profile)
}

// Sink receives the outcome of a bootstrap run. state.AppState implements it.
type Sink interface {
	SetUser(models.User)
	ClearUser()
}

// Publish maps an outcome onto the sink.
func Publish(sink Sink, o Outcome) {
	if u, ok := o.Profile(); ok {
		sink.SetUser(u)
		return
	}
	sink.ClearUser()
}
