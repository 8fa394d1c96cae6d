package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/storefront/internal/client/apiclient"
	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/client/session"
	"github.com/dmitrijs2005/storefront/internal/client/storage"
	"github.com/dmitrijs2005/storefront/internal/common"
)

// AuthService defines the account operations of the CLI.
//
// Login persists the issued credential pair and then runs the session
// bootstrap, so the shared state only ever holds a profile the server
// confirmed. Logout forgets the pair and the profile.
//
// Register and Login bypass the auth stage: their 401 means bad
// credentials, not an ended session.
type AuthService interface {
	Register(ctx context.Context, email, name string, password []byte) (models.User, error)
	Login(ctx context.Context, email string, password []byte) (models.User, error)
	Logout(ctx context.Context) error
	Restore(ctx context.Context) session.Outcome
	Ping(ctx context.Context) error
}

type authService struct {
	api   API
	store storage.Store
	boot  *session.Bootstrapper
	sink  session.Sink
}

func NewAuthService(api API, store storage.Store, boot *session.Bootstrapper, sink session.Sink) AuthService {
	return &authService{api: api, store: store, boot: boot, sink: sink}
}

type registerRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

func validateCredentials(email string, password []byte) error {
	if !strings.Contains(email, "@") {
		return fmt.Errorf("%w: email must contain @", common.ErrorValidation)
	}
	if len(password) == 0 {
		return fmt.Errorf("%w: password is empty", common.ErrorValidation)
	}
	return nil
}

func (a *authService) Register(ctx context.Context, email, name string, password []byte) (models.User, error) {
	if err := validateCredentials(email, password); err != nil {
		return models.User{}, err
	}

	var u models.User
	req := registerRequest{Email: email, Name: name, Password: string(password)}
	if err := a.api.Do(ctx, http.MethodPost, "/api/auth/register", req, &u, apiclient.WithoutAuth()); err != nil {
		return models.User{}, fmt.Errorf("register error: %w", err)
	}
	return u, nil
}

func (a *authService) Login(ctx context.Context, email string, password []byte) (models.User, error) {
	if err := validateCredentials(email, password); err != nil {
		return models.User{}, err
	}

	var creds models.Credentials
	req := loginRequest{Email: email, Password: string(password)}
	if err := a.api.Do(ctx, http.MethodPost, "/api/auth/login", req, &creds, apiclient.WithoutAuth()); err != nil {
		return models.User{}, fmt.Errorf("login error: %w", err)
	}

	pair := storage.Pair{AccessToken: creds.AccessToken, RefreshToken: creds.RefreshToken}
	if err := storage.SavePair(ctx, a.store, pair); err != nil {
		return models.User{}, fmt.Errorf("saving credentials: %w", err)
	}
	if creds.User.ID != "" {
		if err := a.store.Set(ctx, common.UserIDKey, creds.User.ID); err != nil {
			return models.User{}, fmt.Errorf("saving user id: %w", err)
		}
	}

	outcome := a.Restore(ctx)
	u, ok := outcome.Profile()
	if !ok {
		return models.User{}, errors.New("login error: session could not be confirmed")
	}
	return u, nil
}

// LogoutPath revokes a refresh credential on the server.
const LogoutPath = "/api/auth/logout"

// Logout revokes the refresh credential on a best-effort basis and then
// forgets the local session. A failed revocation does not keep the session.
func (a *authService) Logout(ctx context.Context) error {
	if p, err := storage.ReadPair(ctx, a.store); err == nil && p.RefreshToken != "" {
		_ = a.api.Do(ctx, http.MethodPost, LogoutPath, refreshRequest{RefreshToken: p.RefreshToken}, nil)
	}

	if err := storage.ClearPair(ctx, a.store); err != nil {
		return fmt.Errorf("clearing credentials: %w", err)
	}
	if err := a.store.Remove(ctx, common.UserIDKey); err != nil {
		return fmt.Errorf("clearing user id: %w", err)
	}
	a.sink.ClearUser()
	return nil
}

// Restore runs the session bootstrap and publishes its outcome.
func (a *authService) Restore(ctx context.Context) session.Outcome {
	o := a.boot.Run(ctx)
	session.Publish(a.sink, o)
	return o
}

func (a *authService) Ping(ctx context.Context) error {
	var resp struct {
		Status string `json:"status"`
	}
	if err := a.api.Do(ctx, http.MethodGet, "/api/ping", nil, &resp); err != nil {
		return err
	}
	if resp.Status != "OK" {
		return common.ErrUnavailable
	}
	return nil
}
