package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/nextread/nextread-cli/internal/client/models"
)

// actionLabel is the primary action text on the detail screen.
func actionLabel(b *models.Book) string {
	if b.Available() {
		return "Reserve Book"
	}
	return "Join Queue"
}

// Book is the detail screen with the reserve flow. After a successful reserve
// the book is re-fetched so displayed counts are the server's, never a local
// decrement; repeat submission is disabled for the rest of the visit.
func (a *App) Book(ctx context.Context, idArg string) error {
	if ok, err := a.guard(ctx, ScreenBook, false); !ok {
		return err
	}

	id, err := strconv.ParseInt(idArg, 10, 64)
	if err != nil {
		fmt.Fprintf(a.out, "Invalid book id %q.\n", idArg)
		return nil
	}

	book, err := a.api.GetBook(ctx, id)
	if err != nil {
		fmt.Fprintf(a.out, "Failed to load book details: %s\n", reason(err))
		return nil
	}

	reserved := false
	a.renderBook(book, reserved)

	for {
		line, err := GetSimpleText(a.reader, "book (reserve | refresh | back)", a.out)
		if err != nil {
			return err
		}

		switch line {
		case "back":
			return nil
		case "refresh":
			if book, err = a.reloadBook(ctx, id, book); err != nil {
				return err
			}
			a.renderBook(book, reserved)
		case "reserve":
			if reserved {
				fmt.Fprintln(a.out, "Already reserved during this visit. Check your reservations page.")
				continue
			}

			wasAvailable := book.Available()

			days, err := a.chooseBorrowDays()
			if err != nil {
				return err
			}

			if _, err := a.api.ReserveBook(ctx, a.session.Current().ID, book.ID, days); err != nil {
				fmt.Fprintf(a.out, "Failed to reserve book: %s\n", reason(err))
				continue
			}
			reserved = true

			if wasAvailable {
				fmt.Fprintln(a.out, "Book successfully reserved! Check your reservations page.")
			} else {
				fmt.Fprintln(a.out, "Added to the queue. You will get a copy when one frees up.")
			}

			if book, err = a.reloadBook(ctx, id, book); err != nil {
				return err
			}
			a.renderBook(book, reserved)
		case "":
			a.renderBook(book, reserved)
		default:
			fmt.Fprintln(a.out, "Unknown command:", line)
		}
	}
}

// reloadBook re-fetches the book; on failure the previous copy keeps rendering.
func (a *App) reloadBook(ctx context.Context, id int64, prev *models.Book) (*models.Book, error) {
	book, err := a.api.GetBook(ctx, id)
	if err != nil {
		fmt.Fprintf(a.out, "Failed to refresh book: %s\n", reason(err))
		return prev, nil
	}
	return book, nil
}

// chooseBorrowDays asks for a borrow duration until a valid one is entered.
// Empty input takes the default.
func (a *App) chooseBorrowDays() (int, error) {
	prompt := fmt.Sprintf("Borrow duration in days (%s, default %d)",
		joinInts(models.BorrowDurations), models.DefaultBorrowDays)
	for {
		text, err := GetSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return 0, err
		}
		if text == "" {
			return models.DefaultBorrowDays, nil
		}
		days, err := strconv.Atoi(text)
		if err != nil || !models.ValidBorrowDays(days) {
			fmt.Fprintf(a.out, "Choose one of: %s\n", joinInts(models.BorrowDurations))
			continue
		}
		return days, nil
	}
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, "/")
}

func (a *App) renderBook(b *models.Book, reserved bool) {
	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "%s — %s\n", b.Title, b.Author)
	if b.ISBN != "" {
		fmt.Fprintf(a.out, "ISBN: %s\n", b.ISBN)
	}
	if b.Genre != "" {
		fmt.Fprintf(a.out, "Genre: %s\n", b.Genre)
	}
	fmt.Fprintf(a.out, "Rating: %.1f\n", b.Rating)
	fmt.Fprintf(a.out, "Total copies: %d  Available: %d  In queue: %d\n",
		b.TotalCopies, b.AvailableCopies, b.InQueue)
	if b.Description != "" {
		fmt.Fprintln(a.out, b.Description)
	}

	if b.Available() {
		fmt.Fprintln(a.out, "This book is available for reservation.")
	} else {
		fmt.Fprintln(a.out, "This book is currently unavailable. You can join the queue.")
	}

	if reserved {
		fmt.Fprintln(a.out, "Primary action: [Book Reserved]")
	} else {
		fmt.Fprintf(a.out, "Primary action: [%s]\n", actionLabel(b))
	}
}
