// Package models defines server-side data models persisted by the
// repositories.
package models

import "time"

// User is a registered storefront account. Verifier is the argon2id hash of
// the password under Salt; the password itself is never stored.
type User struct {
	ID        string
	Email     string
	Name      string
	Salt      []byte
	Verifier  []byte
	CreatedAt time.Time
}
