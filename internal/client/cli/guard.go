package cli

import (
	"context"
	"fmt"

	"github.com/nextread/nextread-cli/internal/client/session"
)

// Screen identifies a navigable screen.
type Screen string

const (
	ScreenLogin        Screen = "login"
	ScreenHome         Screen = "home"
	ScreenBook         Screen = "book"
	ScreenReservations Screen = "reservations"
	ScreenProfile      Screen = "profile"
	ScreenAdmin        Screen = "admin"
)

// Resolve applies the access rules to a navigation attempt and returns the
// screen that should actually render: unauthenticated sessions land on login,
// non-admins bounce off admin-only screens to home, and admins are kept on
// their dashboard instead of the student screens.
func Resolve(s *session.Session, target Screen, adminOnly bool) Screen {
	if !s.IsAuthenticated() {
		return ScreenLogin
	}
	if adminOnly && !s.IsAdmin() {
		return ScreenHome
	}
	if !adminOnly && s.IsAdmin() {
		return ScreenAdmin
	}
	return target
}

// guard resolves target and either lets the caller proceed (true) or runs the
// redirect screen and reports false.
func (a *App) guard(ctx context.Context, target Screen, adminOnly bool) (bool, error) {
	resolved := Resolve(a.session, target, adminOnly)
	if resolved == target {
		return true, nil
	}
	switch resolved {
	case ScreenLogin:
		fmt.Fprintln(a.out, "Please log in first.")
		return false, a.Login(ctx)
	case ScreenHome:
		fmt.Fprintln(a.out, "That screen is for administrators. Back to browsing.")
		return false, a.Browse(ctx)
	case ScreenAdmin:
		fmt.Fprintln(a.out, "Taking you to the admin dashboard.")
		return false, a.Admin(ctx)
	}
	return false, nil
}
