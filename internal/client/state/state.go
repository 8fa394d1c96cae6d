// Package state holds application-wide state shared by the terminal client:
// the profile of the signed-in user. It is the sink session bootstrap
// publishes to.
package state

import (
	"sync"

	"github.com/dmitrijs2005/storefront/internal/client/models"
)

type AppState struct {
	mu   sync.RWMutex
	user *models.User
}

func New() *AppState {
	return &AppState{}
}

func (s *AppState) SetUser(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &u
}

func (s *AppState) ClearUser() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
}

// User returns a copy of the current profile and whether one is set.
func (s *AppState) User() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}
