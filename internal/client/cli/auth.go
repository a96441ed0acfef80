package cli

import (
	"context"
	"fmt"

	"github.com/nextread/nextread-cli/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and exchanges them for the user record.
// On success the session identity is replaced wholesale. Screens treat API
// failures as messages, not errors: only input failures propagate.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	user, err := a.api.Login(ctx, email, string(password))
	if err != nil {
		fmt.Fprintf(a.out, "Login failed: %s\n", reason(err))
		return nil
	}

	a.session.Login(user)
	a.log.Info(ctx, "logged in", "user_id", user.ID)
	fmt.Fprintf(a.out, "Welcome, %s!\n", user.Name)

	if a.session.IsAdmin() {
		return a.Admin(ctx)
	}
	return nil
}

// Register collects the sign-up fields, validates them locally and creates
// the account. The user still logs in afterwards.
func (a *App) Register(ctx context.Context) error {
	var form models.RegisterForm
	var err error

	if form.Name, err = getSimpleText(a.reader, "Enter full name", a.out); err != nil {
		return err
	}
	if form.Email, err = getSimpleText(a.reader, "Enter email", a.out); err != nil {
		return err
	}
	if form.StudentID, err = getSimpleText(a.reader, "Enter student id", a.out); err != nil {
		return err
	}
	if form.Phone, err = getSimpleText(a.reader, "Enter phone (optional)", a.out); err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	form.Password = string(password)

	if err := form.Validate(); err != nil {
		fmt.Fprintf(a.out, "Cannot register: %s\n", err)
		return nil
	}

	user, err := a.api.Register(ctx, form)
	if err != nil {
		fmt.Fprintf(a.out, "Registration failed: %s\n", reason(err))
		return nil
	}

	fmt.Fprintf(a.out, "Account created for %s. You can log in now.\n", user.Email)
	return nil
}

// Logout clears the session.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout()
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
