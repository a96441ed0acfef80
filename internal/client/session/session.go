// Package session holds the authenticated identity for the lifetime of the
// process. The user record is replaced wholesale on login and cleared on
// logout; it is never partially updated.
package session

import "github.com/nextread/nextread-cli/internal/client/models"

// Session is created once at startup and injected into every screen that
// needs identity or capability checks.
type Session struct {
	user *models.User
}

func New() *Session {
	return &Session{}
}

// Login replaces the current identity unconditionally.
func (s *Session) Login(u *models.User) {
	s.user = u
}

// Logout clears the identity.
func (s *Session) Logout() {
	s.user = nil
}

// Current returns the authenticated user, or nil.
func (s *Session) Current() *models.User {
	return s.user
}

func (s *Session) IsAuthenticated() bool {
	return s.user != nil
}

// IsAdmin is the single capability check screens consume. They never inspect
// the raw role string.
func (s *Session) IsAdmin() bool {
	return s.user != nil && s.user.IsAdmin()
}
