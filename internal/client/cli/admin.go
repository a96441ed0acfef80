package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/nextread/nextread-cli/internal/client/models"
	"github.com/nextread/nextread-cli/internal/client/services"
)

type overview struct {
	totalBooks         int
	totalUsers         int
	activeReservations int
	availableBooks     int
}

// computeOverview aggregates the dashboard counts from the three list calls.
func computeOverview(books []models.Book, users []models.User, reservations []models.Reservation) overview {
	ov := overview{totalBooks: len(books), totalUsers: len(users)}
	for _, b := range books {
		if b.Available() {
			ov.availableBooks++
		}
	}
	for _, r := range reservations {
		if r.Status == models.ReservationActive {
			ov.activeReservations++
		}
	}
	return ov
}

// Admin is the dashboard screen. Admin-only; everyone else bounces to browse.
func (a *App) Admin(ctx context.Context) error {
	if ok, err := a.guard(ctx, ScreenAdmin, true); !ok {
		return err
	}

	a.renderOverview(a.loadOverview(ctx))

	for {
		line, err := GetSimpleText(a.reader, "admin (overview | books | users | reservations | back)", a.out)
		if err != nil {
			return err
		}

		switch line {
		case "back":
			return nil
		case "overview", "":
			a.renderOverview(a.loadOverview(ctx))
		case "books":
			if err := a.adminBooks(ctx); err != nil {
				return err
			}
		case "users":
			if err := a.adminUsers(ctx); err != nil {
				return err
			}
		case "reservations":
			if err := a.adminReservations(ctx); err != nil {
				return err
			}
		default:
			fmt.Fprintln(a.out, "Unknown command:", line)
		}
	}
}

// loadOverview issues the three list calls together and waits for all of them.
func (a *App) loadOverview(ctx context.Context) overview {
	var (
		wg           sync.WaitGroup
		books        []models.Book
		users        []models.User
		reservations []models.Reservation
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		var err error
		if books, err = a.api.ListBooks(ctx); err != nil {
			a.log.Warn(ctx, "overview books fetch failed", "error", err)
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if users, err = a.api.ListUsers(ctx); err != nil {
			a.log.Warn(ctx, "overview users fetch failed", "error", err)
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if reservations, err = a.api.ListReservations(ctx); err != nil {
			a.log.Warn(ctx, "overview reservations fetch failed", "error", err)
		}
	}()
	wg.Wait()

	return computeOverview(books, users, reservations)
}

func (a *App) renderOverview(ov overview) {
	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "Total books:         %d\n", ov.totalBooks)
	fmt.Fprintf(a.out, "Available books:     %d\n", ov.availableBooks)
	fmt.Fprintf(a.out, "Total users:         %d\n", ov.totalUsers)
	fmt.Fprintf(a.out, "Active reservations: %d\n", ov.activeReservations)
}

// --- books tab ---

func (a *App) adminBooks(ctx context.Context) error {
	query := ""
	books := a.reloadAdminBooks(ctx, query)

	for {
		line, err := GetSimpleText(a.reader,
			"admin/books (search <q> | add | edit <id> | delete <id> | back)", a.out)
		if err != nil {
			return err
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			a.renderAdminBooks(books, query)
			continue
		}

		switch parts[0] {
		case "back":
			return nil
		case "search":
			query = strings.Join(parts[1:], " ")
			a.renderAdminBooks(books, query)
		case "add":
			form, err := a.bookForm(nil)
			if err != nil {
				return err
			}
			if form == nil {
				continue
			}
			created, tier, cerr := a.catalog.Create(ctx, form.Book())
			if cerr != nil {
				fmt.Fprintf(a.out, "Failed to save book: %s\n", reason(cerr))
				continue
			}
			if tier == services.TierSnapshot {
				fmt.Fprintf(a.out, "Service unreachable; book #%d kept locally only.\n", created.ID)
			} else {
				fmt.Fprintf(a.out, "Book #%d created.\n", created.ID)
			}
			books = a.reloadAdminBooks(ctx, query)
			a.afterMutation(ctx)
		case "edit":
			if len(parts) < 2 {
				fmt.Fprintln(a.out, "Usage: edit <id>")
				continue
			}
			existing := a.findAdminBook(books, parts[1])
			if existing == nil {
				continue
			}
			form, err := a.bookForm(existing)
			if err != nil {
				return err
			}
			if form == nil {
				continue
			}
			book := form.Book()
			book.ID = existing.ID
			if _, uerr := a.api.UpdateBook(ctx, existing.ID, &book); uerr != nil {
				fmt.Fprintf(a.out, "Failed to save book: %s\n", reason(uerr))
				continue
			}
			fmt.Fprintf(a.out, "Book #%d updated.\n", existing.ID)
			books = a.reloadAdminBooks(ctx, query)
			a.afterMutation(ctx)
		case "delete":
			if len(parts) < 2 {
				fmt.Fprintln(a.out, "Usage: delete <id>")
				continue
			}
			target := a.findAdminBook(books, parts[1])
			if target == nil {
				continue
			}
			yes, err := Confirm(a.reader, "Are you sure you want to delete this book?", a.out)
			if err != nil {
				return err
			}
			if !yes {
				continue
			}
			if derr := a.api.DeleteBook(ctx, target.ID); derr != nil {
				fmt.Fprintf(a.out, "Failed to delete book: %s\n", reason(derr))
				continue
			}
			fmt.Fprintf(a.out, "Book #%d deleted.\n", target.ID)
			books = a.reloadAdminBooks(ctx, query)
			a.afterMutation(ctx)
		default:
			fmt.Fprintln(a.out, "Unknown command:", parts[0])
		}
	}
}

func (a *App) reloadAdminBooks(ctx context.Context, query string) []models.Book {
	books, err := a.api.ListBooks(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error loading books: %s\n", reason(err))
		return nil
	}
	a.renderAdminBooks(books, query)
	return books
}

// afterMutation re-fetches the overview so the dashboard counts never go
// stale behind a list edit.
func (a *App) afterMutation(ctx context.Context) {
	a.renderOverview(a.loadOverview(ctx))
}

func (a *App) findAdminBook(books []models.Book, idArg string) *models.Book {
	id, err := strconv.ParseInt(idArg, 10, 64)
	if err != nil {
		fmt.Fprintf(a.out, "Invalid book id %q.\n", idArg)
		return nil
	}
	for i := range books {
		if books[i].ID == id {
			return &books[i]
		}
	}
	fmt.Fprintf(a.out, "No book %d in the list.\n", id)
	return nil
}

func (a *App) renderAdminBooks(books []models.Book, query string) {
	filtered := models.FilterBooks(books, query, "")
	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "Books (%d of %d)\n", len(filtered), len(books))
	for _, b := range filtered {
		fmt.Fprintf(a.out, "  #%-6d %-35s %-20s %-10s %d/%d copies, %d queued\n",
			b.ID, b.Title, b.Author, b.Genre, b.AvailableCopies, b.TotalCopies, b.InQueue)
	}
}

// bookForm collects the shared create/edit form. A nil existing book means
// create. Returns (nil, nil) when validation rejected the input.
func (a *App) bookForm(existing *models.Book) (*models.BookForm, error) {
	form := &models.BookForm{Genre: models.Genres[0]}
	if existing != nil {
		form = &models.BookForm{
			Title:           existing.Title,
			Author:          existing.Author,
			ISBN:            existing.ISBN,
			Genre:           existing.Genre,
			Rating:          existing.Rating,
			TotalCopies:     existing.TotalCopies,
			AvailableCopies: existing.AvailableCopies,
			Description:     existing.Description,
		}
	}

	var err error
	if form.Title, err = GetWithDefault(a.reader, "Title", form.Title, a.out); err != nil {
		return nil, err
	}
	if form.Author, err = GetWithDefault(a.reader, "Author", form.Author, a.out); err != nil {
		return nil, err
	}
	if form.ISBN, err = GetWithDefault(a.reader, "ISBN", form.ISBN, a.out); err != nil {
		return nil, err
	}
	genreLabel := fmt.Sprintf("Genre (%s)", strings.Join(models.Genres, "/"))
	if form.Genre, err = GetWithDefault(a.reader, genreLabel, form.Genre, a.out); err != nil {
		return nil, err
	}
	if form.Rating, err = GetFloat(a.reader, "Rating (0-5)", form.Rating, a.out); err != nil {
		return nil, err
	}
	if form.TotalCopies, err = GetInt(a.reader, "Total copies", form.TotalCopies, a.out); err != nil {
		return nil, err
	}
	if form.AvailableCopies, err = GetInt(a.reader, "Available copies", form.AvailableCopies, a.out); err != nil {
		return nil, err
	}
	if form.Description, err = GetWithDefault(a.reader, "Description", form.Description, a.out); err != nil {
		return nil, err
	}

	if verr := form.Validate(); verr != nil {
		fmt.Fprintf(a.out, "Cannot save: %s\n", verr)
		return nil, nil
	}
	return form, nil
}

// --- users tab ---

// filterUsers matches the search text case-insensitively against name or email.
func filterUsers(users []models.User, query string) []models.User {
	if query == "" {
		return users
	}
	q := strings.ToLower(query)
	result := make([]models.User, 0, len(users))
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Name), q) ||
			strings.Contains(strings.ToLower(u.Email), q) {
			result = append(result, u)
		}
	}
	return result
}

func (a *App) adminUsers(ctx context.Context) error {
	users := a.reloadAdminUsers(ctx, "")
	query := ""

	for {
		line, err := GetSimpleText(a.reader,
			"admin/users (search <q> | edit <id> | delete <id> | back)", a.out)
		if err != nil {
			return err
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			a.renderAdminUsers(users, query)
			continue
		}

		switch parts[0] {
		case "back":
			return nil
		case "search":
			query = strings.Join(parts[1:], " ")
			a.renderAdminUsers(users, query)
		case "edit":
			if len(parts) < 2 {
				fmt.Fprintln(a.out, "Usage: edit <id>")
				continue
			}
			target := a.findAdminUser(users, parts[1])
			if target == nil {
				continue
			}
			if err := a.editAdminUser(ctx, target); err != nil {
				return err
			}
			users = a.reloadAdminUsers(ctx, query)
			a.afterMutation(ctx)
		case "delete":
			if len(parts) < 2 {
				fmt.Fprintln(a.out, "Usage: delete <id>")
				continue
			}
			target := a.findAdminUser(users, parts[1])
			if target == nil {
				continue
			}
			yes, err := Confirm(a.reader, "Are you sure you want to delete this user?", a.out)
			if err != nil {
				return err
			}
			if !yes {
				continue
			}
			if derr := a.api.DeleteUser(ctx, target.ID); derr != nil {
				fmt.Fprintf(a.out, "Failed to delete user: %s\n", reason(derr))
				continue
			}
			fmt.Fprintf(a.out, "User #%d deleted.\n", target.ID)
			users = a.reloadAdminUsers(ctx, query)
			a.afterMutation(ctx)
		default:
			fmt.Fprintln(a.out, "Unknown command:", parts[0])
		}
	}
}

func (a *App) editAdminUser(ctx context.Context, target *models.User) error {
	update := *target

	var err error
	if update.Name, err = GetWithDefault(a.reader, "Full name", update.Name, a.out); err != nil {
		return err
	}
	if update.Email, err = GetWithDefault(a.reader, "Email", update.Email, a.out); err != nil {
		return err
	}
	if update.StudentID, err = GetWithDefault(a.reader, "Student id", update.StudentID, a.out); err != nil {
		return err
	}
	if update.Phone, err = GetWithDefault(a.reader, "Phone", update.Phone, a.out); err != nil {
		return err
	}
	if update.MembershipStatus, err = GetWithDefault(a.reader, "Membership status", update.MembershipStatus, a.out); err != nil {
		return err
	}

	if _, uerr := a.api.UpdateUser(ctx, target.ID, &update); uerr != nil {
		fmt.Fprintf(a.out, "Failed to save user: %s\n", reason(uerr))
		return nil
	}
	fmt.Fprintf(a.out, "User #%d updated.\n", target.ID)
	return nil
}

func (a *App) reloadAdminUsers(ctx context.Context, query string) []models.User {
	users, err := a.api.ListUsers(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error loading users: %s\n", reason(err))
		return nil
	}
	a.renderAdminUsers(users, query)
	return users
}

func (a *App) findAdminUser(users []models.User, idArg string) *models.User {
	id, err := strconv.ParseInt(idArg, 10, 64)
	if err != nil {
		fmt.Fprintf(a.out, "Invalid user id %q.\n", idArg)
		return nil
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i]
		}
	}
	fmt.Fprintf(a.out, "No user %d in the list.\n", id)
	return nil
}

func (a *App) renderAdminUsers(users []models.User, query string) {
	filtered := filterUsers(users, query)
	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "Users (%d of %d)\n", len(filtered), len(users))
	for _, u := range filtered {
		fmt.Fprintf(a.out, "  #%-6d %-25s %-30s %-10s %s\n",
			u.ID, u.Name, u.Email, u.Role, u.MembershipStatus)
	}
}

// --- reservations tab ---

// filterReservations keeps rows matching status; "" means all.
func filterReservations(items []models.Reservation, status string) []models.Reservation {
	if status == "" {
		return items
	}
	result := make([]models.Reservation, 0, len(items))
	for _, r := range items {
		if r.Status == status {
			result = append(result, r)
		}
	}
	return result
}

func (a *App) adminReservations(ctx context.Context) error {
	items := a.reloadAdminReservations(ctx, "")
	status := ""

	for {
		line, err := GetSimpleText(a.reader,
			"admin/reservations (filter <Active|Queue|History|all> | return <id> | back)", a.out)
		if err != nil {
			return err
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			a.renderAdminReservations(items, status)
			continue
		}

		switch parts[0] {
		case "back":
			return nil
		case "filter":
			if len(parts) < 2 || strings.EqualFold(parts[1], "all") {
				status = ""
			} else {
				status = parts[1]
			}
			a.renderAdminReservations(items, status)
		case "return":
			if len(parts) < 2 {
				fmt.Fprintln(a.out, "Usage: return <id>")
				continue
			}
			id, convErr := strconv.ParseInt(parts[1], 10, 64)
			if convErr != nil {
				fmt.Fprintf(a.out, "Invalid reservation id %q.\n", parts[1])
				continue
			}
			target := findReservation(items, id)
			if target == nil {
				fmt.Fprintf(a.out, "No reservation %d in the list.\n", id)
				continue
			}
			if target.Status != models.ReservationActive {
				fmt.Fprintln(a.out, "Only active reservations can be marked returned.")
				continue
			}
			if rerr := a.api.ReturnBook(ctx, id); rerr != nil {
				fmt.Fprintf(a.out, "Failed to mark returned: %s\n", reason(rerr))
				continue
			}
			fmt.Fprintf(a.out, "Reservation #%d marked returned.\n", id)
			items = a.reloadAdminReservations(ctx, status)
			a.afterMutation(ctx)
		default:
			fmt.Fprintln(a.out, "Unknown command:", parts[0])
		}
	}
}

func (a *App) reloadAdminReservations(ctx context.Context, status string) []models.Reservation {
	items, err := a.api.ListReservations(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error loading reservations: %s\n", reason(err))
		return nil
	}
	a.renderAdminReservations(items, status)
	return items
}

func (a *App) renderAdminReservations(items []models.Reservation, status string) {
	filtered := filterReservations(items, status)
	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "Reservations (%d of %d)\n", len(filtered), len(items))
	for _, r := range filtered {
		userName, bookTitle := "?", "?"
		if r.User != nil {
			userName = r.User.Name
		}
		if r.Book != nil {
			bookTitle = r.Book.Title
		}
		fmt.Fprintf(a.out, "  #%-6d %-25s %-35s %-8s reserved %s\n",
			r.ID, userName, bookTitle, r.Status, formatDate(r.ReservedDate))
	}
}
