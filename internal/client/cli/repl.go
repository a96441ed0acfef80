package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests provide a stub.
type execIface interface {
	isAuthenticated() bool
	isAdmin() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Browse(ctx context.Context) error
	Book(ctx context.Context, id string) error
	Reservations(ctx context.Context) error
	Profile(ctx context.Context) error
	Admin(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL reads a line, parses the first token as the command and dispatches
// to a screen. The loop exits on EOF or when the user types "exit" or "quit".
//
// Commands:
//
//	Not logged in:
//	  - help | register | login | exit | quit
//
//	Logged in:
//	  - browse          — catalogue with search, genre filter and carousel
//	  - book <id>       — detail screen with the reserve flow
//	  - reservations    — Active/Queue/History tabs, cancel
//	  - profile         — view and edit the account
//	  - admin           — dashboard (administrators)
//	  - logout | exit | quit
func runREPL(ctx context.Context, a execIface, statusFn func() string, r *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintf(w, "nextread %s> ", statusFn())

		line, readErr := r.ReadString('\n')
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if readErr != nil {
				return
			}
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isAdmin() {
				fmt.Fprintln(w, "Available commands: admin, profile, logout, exit")
			} else if a.isAuthenticated() {
				fmt.Fprintln(w, "Available commands: browse, book <id>, reservations, profile, logout, exit")
			} else {
				fmt.Fprintln(w, "Available commands: register, login, exit")
			}
		case "register":
			report(w, "register", a.Register(ctx))
		case "login":
			report(w, "login", a.Login(ctx))
		case "browse":
			report(w, "browse", a.Browse(ctx))
		case "book":
			if len(args) == 0 {
				fmt.Fprintln(w, "Usage: book <id>")
				break
			}
			report(w, "book", a.Book(ctx, args[0]))
		case "reservations":
			report(w, "reservations", a.Reservations(ctx))
		case "profile":
			report(w, "profile", a.Profile(ctx))
		case "admin":
			report(w, "admin", a.Admin(ctx))
		case "logout":
			report(w, "logout", a.Logout(ctx))
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}

		if readErr != nil {
			return
		}
	}
}

// report surfaces a screen failure once; screens have already printed the
// user-facing message for expected errors.
func report(w io.Writer, op string, err error) {
	if err != nil {
		fmt.Fprintf(w, "%s: %v\n", op, err)
	}
}
