// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login, and issuing/refreshing JWTs
// plus server-stored refresh tokens.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/cryptox"
	"github.com/dmitrijs2005/storefront/internal/server/auth"
	"github.com/dmitrijs2005/storefront/internal/server/config"
	"github.com/dmitrijs2005/storefront/internal/server/models"
	"github.com/dmitrijs2005/storefront/internal/server/repositories/repomanager"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// UserService provides authentication-related operations:
// - Register: create users with an argon2id password verifier
// - Login: verify credentials and mint tokens
// - Refresh: mint a new access token for a stored refresh token
// - Logout: revoke a refresh token
type UserService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
	now                          func() time.Time
}

// NewUserService constructs a UserService using repositories and server config.
// db may be nil when m is an in-memory manager.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                           db,
		repomanager:                  m,
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
		now:                          time.Now,
	}
}

// NormalizeEmail trims and lower-cases an email so lookups are
// case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new user. A malformed email or an empty password yields
// common.ErrorValidation; a taken email yields common.ErrorAlreadyExists.
func (s *UserService) Register(ctx context.Context, email, name string, password []byte) (*models.User, error) {
	email = NormalizeEmail(email)
	if !strings.Contains(email, "@") || len(password) == 0 {
		return nil, common.ErrorValidation
	}

	salt := common.GenerateRandByteArray(cryptox.SaltSize)
	user := &models.User{
		Email:    email,
		Name:     strings.TrimSpace(name),
		Salt:     salt,
		Verifier: cryptox.MakeVerifier(password, salt),
	}

	u, err := s.repomanager.Users(s.db).Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// Login verifies the password and, on success, returns a new TokenPair and
// the user's profile. Unknown emails and wrong passwords are
// indistinguishable: both yield common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, email string, password []byte) (*TokenPair, *models.User, error) {
	user, err := s.repomanager.Users(s.db).GetUserByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// burn the same argon2 cost as a real check
			cryptox.MakeVerifier(password, s.getRandomSalt())
			return nil, nil, common.ErrorUnauthorized
		}
		return nil, nil, common.ErrorInternal
	}
	if !cryptox.CheckVerifier(password, user.Salt, user.Verifier) {
		return nil, nil, common.ErrorUnauthorized
	}

	pair, err := s.generateTokenPair(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}
	return pair, user, nil
}

// Refresh returns a new access token for refreshToken. The refresh token is
// not rotated. Unknown tokens yield common.ErrInvalidToken, expired ones
// common.ErrRefreshTokenExpired (and are deleted).
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	repo := s.repomanager.RefreshTokens(s.db)

	token, err := repo.Find(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrInvalidToken
		}
		return "", fmt.Errorf("error searching refresh token: %w", err)
	}
	if token.Expired(s.now()) {
		_ = repo.Delete(ctx, refreshToken)
		return "", common.ErrRefreshTokenExpired
	}

	access, err := s.generateAccessToken(token.UserID)
	if err != nil {
		return "", common.ErrorInternal
	}
	return access, nil
}

// Logout revokes refreshToken. Revoking an unknown token is not an error.
func (s *UserService) Logout(ctx context.Context, refreshToken string) error {
	if err := s.repomanager.RefreshTokens(s.db).Delete(ctx, refreshToken); err != nil {
		return fmt.Errorf("error deleting refresh token: %w", err)
	}
	return nil
}

// Me returns the profile of userID. A user that no longer exists is treated
// as an invalid session.
func (s *UserService) Me(ctx context.Context, userID string) (*models.User, error) {
	u, err := s.repomanager.Users(s.db).GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}
	return u, nil
}

// --- helpers below ---

func (s *UserService) getRandomSalt() []byte { return common.GenerateRandByteArray(cryptox.SaltSize) }

func (s *UserService) generateAccessToken(userID string) (string, error) {
	return auth.GenerateToken(userID, s.jwtSecret, s.accessTokenValidityDuration)
}

func (s *UserService) generateRefreshToken() (string, error) {
	return common.MakeRandHexString(32)
}

func (s *UserService) generateTokenPair(ctx context.Context, userID string) (*TokenPair, error) {
	access, err := s.generateAccessToken(userID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := s.generateRefreshToken()
	if err != nil {
		return nil, common.ErrorInternal
	}
	repo := s.repomanager.RefreshTokens(s.db)
	now := s.now()
	if _, err := repo.PurgeExpired(ctx, userID, now); err != nil {
		return nil, common.ErrorInternal
	}
	t := &models.RefreshToken{UserID: userID, Token: refresh, Expires: now.Add(s.refreshTokenValidityDuration)}
	if err := repo.Create(ctx, t); err != nil {
		return nil, common.ErrorInternal
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
