package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/storefront/internal/common"
)

// ErrHalfPair is returned by SavePair when only one credential is given.
var ErrHalfPair = errors.New("credential pair must be saved whole")

// Pair is the credential pair. An empty field means the credential is absent.
type Pair struct {
	AccessToken  string
	RefreshToken string
}

// Complete reports whether both credentials are present.
func (p Pair) Complete() bool {
	return p.AccessToken != "" && p.RefreshToken != ""
}

// ReadString returns the value under key, treating a missing key and an
// empty value alike.
func ReadString(ctx context.Context, s Store, key string) (string, error) {
	v, ok, err := s.Get(ctx, key)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}
	return v, nil
}

func ReadPair(ctx context.Context, s Store) (Pair, error) {
	access, err := ReadString(ctx, s, common.AccessTokenKey)
	if err != nil {
		return Pair{}, fmt.Errorf("read access token: %w", err)
	}
	refresh, err := ReadString(ctx, s, common.RefreshTokenKey)
	if err != nil {
		return Pair{}, fmt.Errorf("read refresh token: %w", err)
	}
	return Pair{AccessToken: access, RefreshToken: refresh}, nil
}

// SavePair stores a freshly issued pair. The refresh token is written first
// so a concurrent reader that sees the new access token also sees a refresh
// token.
func SavePair(ctx context.Context, s Store, p Pair) error {
	if !p.Complete() {
		return ErrHalfPair
	}
	if err := s.Set(ctx, common.RefreshTokenKey, p.RefreshToken); err != nil {
		return fmt.Errorf("save refresh token: %w", err)
	}
	if err := s.Set(ctx, common.AccessTokenKey, p.AccessToken); err != nil {
		return fmt.Errorf("save access token: %w", err)
	}
	return nil
}

// SetGuarded writes key only while guardKey holds guardValue and reports
// whether it did. Stores without GuardedSetter get a write followed by a
// re-check; the write is undone when the guard changed in between.
func SetGuarded(ctx context.Context, s Store, guardKey, guardValue, key, value string) (bool, error) {
	if gs, ok := s.(GuardedSetter); ok {
		return gs.SetIf(ctx, guardKey, guardValue, key, value)
	}

	current, err := ReadString(ctx, s, guardKey)
	if err != nil || current != guardValue {
		return false, err
	}
	if err := s.Set(ctx, key, value); err != nil {
		return false, err
	}
	current, err = ReadString(ctx, s, guardKey)
	if err != nil {
		return false, err
	}
	if current != guardValue {
		if err := s.Remove(ctx, key); err != nil {
			return false, err
		}
		return false, nil
	}
	return true, nil
}

// ClearPair removes both credentials, atomically when the store supports it.
func ClearPair(ctx context.Context, s Store) error {
	if br, ok := s.(BatchRemover); ok {
		return br.RemoveAll(ctx, common.AccessTokenKey, common.RefreshTokenKey)
	}
	if err := s.Remove(ctx, common.AccessTokenKey); err != nil {
		return fmt.Errorf("remove access token: %w", err)
	}
	if err := s.Remove(ctx, common.RefreshTokenKey); err != nil {
		return fmt.Errorf("remove refresh token: %w", err)
	}
	return nil
}
