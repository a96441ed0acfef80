package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nextread/nextread-cli/internal/client/models"
)

func TestSession_LoginLogout(t *testing.T) {
	s := New()
	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.Current())

	s.Login(&models.User{ID: 7, Name: "Alice", Role: models.RoleStudent})
	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, int64(7), s.Current().ID)
	assert.False(t, s.IsAdmin())

	s.Logout()
	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.Current())
}

func TestSession_IsAdmin(t *testing.T) {
	s := New()
	assert.False(t, s.IsAdmin(), "unauthenticated session is never admin")

	s.Login(&models.User{ID: 1, Role: models.RoleAdmin})
	assert.True(t, s.IsAdmin())
}

func TestSession_LoginReplacesWholesale(t *testing.T) {
	s := New()
	s.Login(&models.User{ID: 1, Name: "Old", Phone: "111"})
	s.Login(&models.User{ID: 2, Name: "New"})

	assert.Equal(t, int64(2), s.Current().ID)
	assert.Empty(t, s.Current().Phone)
}
