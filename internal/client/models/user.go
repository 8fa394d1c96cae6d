// Package models defines the storefront data the client receives from the
// API. JSON names follow the API wire format.
package models

import "time"

// User is the profile returned by /api/auth/me.
type User struct {
	ID        string    `json:"_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// Valid reports whether the profile carries the fields the client relies on.
func (u User) Valid() bool {
	return u.ID != "" && u.Email != ""
}

// Credentials is the body of a successful login.
type Credentials struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         User   `json:"user"`
}
