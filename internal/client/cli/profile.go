package cli

import (
	"context"
	"fmt"
)

// Profile shows the session user and lets them edit their contact fields.
// The session identity is replaced with the merged record the service returns.
func (a *App) Profile(ctx context.Context) error {
	if ok, err := a.guard(ctx, ScreenProfile, false); !ok {
		return err
	}

	a.renderProfile()

	for {
		line, err := GetSimpleText(a.reader, "profile (edit | back)", a.out)
		if err != nil {
			return err
		}

		switch line {
		case "back":
			return nil
		case "edit":
			if err := a.editProfile(ctx); err != nil {
				return err
			}
		case "":
			a.renderProfile()
		default:
			fmt.Fprintln(a.out, "Unknown command:", line)
		}
	}
}

func (a *App) editProfile(ctx context.Context) error {
	current := a.session.Current()
	update := *current

	var err error
	if update.Name, err = GetWithDefault(a.reader, "Full name", current.Name, a.out); err != nil {
		return err
	}
	if update.Email, err = GetWithDefault(a.reader, "Email", current.Email, a.out); err != nil {
		return err
	}
	if update.StudentID, err = GetWithDefault(a.reader, "Student id", current.StudentID, a.out); err != nil {
		return err
	}
	if update.Phone, err = GetWithDefault(a.reader, "Phone", current.Phone, a.out); err != nil {
		return err
	}

	updated, err := a.api.UpdateUser(ctx, current.ID, &update)
	if err != nil {
		fmt.Fprintf(a.out, "Failed to update profile: %s\n", reason(err))
		return nil
	}

	a.session.Login(updated)
	fmt.Fprintln(a.out, "Profile updated.")
	a.renderProfile()
	return nil
}

func (a *App) renderProfile() {
	u := a.session.Current()
	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "Name:       %s\n", u.Name)
	fmt.Fprintf(a.out, "Email:      %s\n", u.Email)
	fmt.Fprintf(a.out, "Student id: %s\n", u.StudentID)
	if u.Phone != "" {
		fmt.Fprintf(a.out, "Phone:      %s\n", u.Phone)
	}
	if u.MembershipStatus != "" {
		fmt.Fprintf(a.out, "Membership: %s\n", u.MembershipStatus)
	}
	if !u.JoinDate.IsZero() {
		fmt.Fprintf(a.out, "Joined:     %s\n", formatDate(u.JoinDate))
	}
}
