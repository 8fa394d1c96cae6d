package storage

import (
	"context"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/cryptox"
)

// saltKey holds the hex-encoded argon2 salt next to the sealed values.
const saltKey = "sealSalt"

// SealedStore encrypts values before handing them to the wrapped Store.
// Keys stay in clear text so a sealed database remains inspectable.
// Writes are serialised so SetIf is atomic with respect to other writes
// through the same SealedStore.
type SealedStore struct {
	mu    sync.Mutex
	inner Store
	key   []byte
}

// NewSealedStore derives the sealing key from passphrase and the salt kept
// in inner, generating and saving a salt on first use.
func NewSealedStore(ctx context.Context, inner Store, passphrase []byte) (*SealedStore, error) {
	salt, err := loadOrCreateSalt(ctx, inner)
	if err != nil {
		return nil, err
	}

	return &SealedStore{inner: inner, key: cryptox.DeriveKey(passphrase, salt)}, nil
}

func loadOrCreateSalt(ctx context.Context, inner Store) ([]byte, error) {
	v, ok, err := inner.Get(ctx, saltKey)
	if err != nil {
		return nil, err
	}
	if ok {
		salt, err := hex.DecodeString(v)
		if err != nil {
			return nil, fmt.Errorf("corrupt seal salt: %w", err)
		}
		return salt, nil
	}

	salt := common.GenerateRandByteArray(cryptox.SaltSize)
	if err := inner.Set(ctx, saltKey, hex.EncodeToString(salt)); err != nil {
		return nil, err
	}
	return salt, nil
}

func (s *SealedStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, ok, err := s.inner.Get(ctx, key)
	if err != nil || !ok {
		return "", ok, err
	}

	raw, err := base64.StdEncoding.DecodeString(v)
	if err != nil {
		return "", false, fmt.Errorf("failed to decode sealed[%s]: %w", key, err)
	}

	plain, err := cryptox.Open(s.key, raw)
	if err != nil {
		return "", false, fmt.Errorf("failed to open sealed[%s]: %w", key, err)
	}
	return string(plain), true, nil
}

func (s *SealedStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set(ctx, key, value)
}

// SetIf compares the opened guard value, since sealed values never compare
// equal as ciphertext.
func (s *SealedStore) SetIf(ctx context.Context, guardKey, guardValue, key, value string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, _, err := s.Get(ctx, guardKey)
	if err != nil {
		return false, err
	}
	if current != guardValue {
		return false, nil
	}
	if err := s.set(ctx, key, value); err != nil {
		return false, err
	}
	return true, nil
}

func (s *SealedStore) set(ctx context.Context, key, value string) error {
	sealed, err := cryptox.Seal(s.key, []byte(value))
	if err != nil {
		return fmt.Errorf("failed to seal[%s]: %w", key, err)
	}
	return s.inner.Set(ctx, key, base64.StdEncoding.EncodeToString(sealed))
}

func (s *SealedStore) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Remove(ctx, key)
}

func (s *SealedStore) RemoveAll(ctx context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if br, ok := s.inner.(BatchRemover); ok {
		return br.RemoveAll(ctx, keys...)
	}
	for _, k := range keys {
		if err := s.inner.Remove(ctx, k); err != nil {
			return err
		}
	}
	return nil
}
