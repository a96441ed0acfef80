package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/nextread/nextread-cli/internal/client/models"
)

var reservationTabs = []string{
	models.ReservationActive,
	models.ReservationQueue,
	models.ReservationHistory,
}

// Reservations is the my-reservations screen: one status tab at a time,
// re-fetched on every tab change.
func (a *App) Reservations(ctx context.Context) error {
	if ok, err := a.guard(ctx, ScreenReservations, false); !ok {
		return err
	}

	userID := a.session.Current().ID
	counts := a.loadReservationCounts(ctx, userID)

	tab := models.ReservationActive
	items := a.loadReservationTab(ctx, userID, tab)
	a.renderReservations(tab, items, counts)

	for {
		line, err := GetSimpleText(a.reader,
			"reservations (active | queue | history | cancel <id> | renew <id> | back)", a.out)
		if err != nil {
			return err
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			a.renderReservations(tab, items, counts)
			continue
		}

		switch parts[0] {
		case "back":
			return nil
		case "active", "queue", "history":
			tab = strings.ToUpper(parts[0][:1]) + parts[0][1:]
			items = a.loadReservationTab(ctx, userID, tab)
			counts[tab] = len(items)
			a.renderReservations(tab, items, counts)
		case "cancel":
			if len(parts) < 2 {
				fmt.Fprintln(a.out, "Usage: cancel <id>")
				continue
			}
			id, convErr := strconv.ParseInt(parts[1], 10, 64)
			if convErr != nil {
				fmt.Fprintf(a.out, "Invalid reservation id %q.\n", parts[1])
				continue
			}
			target := findReservation(items, id)
			if target == nil {
				fmt.Fprintf(a.out, "No reservation %d on this tab.\n", id)
				continue
			}
			if !target.CanCancel() {
				fmt.Fprintln(a.out, "History reservations cannot be cancelled.")
				continue
			}

			yes, err := Confirm(a.reader, "Are you sure you want to cancel this reservation?", a.out)
			if err != nil {
				return err
			}
			if !yes {
				fmt.Fprintln(a.out, "Cancellation aborted.")
				continue
			}

			if err := a.api.CancelReservation(ctx, id); err != nil {
				fmt.Fprintf(a.out, "Failed to cancel reservation: %s\n", reason(err))
				continue
			}
			fmt.Fprintln(a.out, "Reservation cancelled successfully!")

			items = a.loadReservationTab(ctx, userID, tab)
			counts[tab] = len(items)
			a.renderReservations(tab, items, counts)
		case "renew":
			// Renewal does not exist server-side yet; deliberately a no-op.
			fmt.Fprintln(a.out, "Renewal request submitted! (Feature to be implemented)")
		default:
			fmt.Fprintln(a.out, "Unknown command:", parts[0])
		}
	}
}

// loadReservationCounts fetches the three status lists together so the tab
// headers can show counts before any tab is opened.
func (a *App) loadReservationCounts(ctx context.Context, userID int64) map[string]int {
	var mu sync.Mutex
	var wg sync.WaitGroup
	counts := make(map[string]int, len(reservationTabs))

	for _, status := range reservationTabs {
		wg.Add(1)
		go func(status string) {
			defer wg.Done()
			items, err := a.api.ListUserReservations(ctx, userID, status)
			if err != nil {
				a.log.Warn(ctx, "reservation count fetch failed", "status", status, "error", err)
				return
			}
			mu.Lock()
			counts[status] = len(items)
			mu.Unlock()
		}(status)
	}
	wg.Wait()
	return counts
}

func (a *App) loadReservationTab(ctx context.Context, userID int64, status string) []models.Reservation {
	items, err := a.api.ListUserReservations(ctx, userID, status)
	if err != nil {
		fmt.Fprintf(a.out, "Failed to load reservations: %s\n", reason(err))
		return nil
	}
	return items
}

func findReservation(items []models.Reservation, id int64) *models.Reservation {
	for i := range items {
		if items[i].ID == id {
			return &items[i]
		}
	}
	return nil
}

func (a *App) renderReservations(tab string, items []models.Reservation, counts map[string]int) {
	fmt.Fprintln(a.out)
	headers := make([]string, 0, len(reservationTabs))
	for _, t := range reservationTabs {
		marker := " "
		if t == tab {
			marker = "*"
		}
		headers = append(headers, fmt.Sprintf("%s%s (%d)", marker, t, counts[t]))
	}
	fmt.Fprintln(a.out, strings.Join(headers, "  "))

	if len(items) == 0 {
		fmt.Fprintln(a.out, "Nothing here.")
		return
	}
	for _, r := range items {
		title := "?"
		if r.Book != nil {
			title = r.Book.Title
		}
		line := fmt.Sprintf("  #%-6d %-35s reserved %s", r.ID, title, formatDate(r.ReservedDate))
		if r.DueDate != nil {
			line += fmt.Sprintf("  due %s", formatDate(*r.DueDate))
		}
		if r.Queued() {
			line += fmt.Sprintf("  position %d", r.Position)
			if r.EstimatedWait != "" {
				line += fmt.Sprintf(" (~%s)", r.EstimatedWait)
			}
		}
		fmt.Fprintln(a.out, line)
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format("01/02/2006")
}
