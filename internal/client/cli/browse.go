package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/nextread/nextread-cli/internal/client/models"
	"github.com/nextread/nextread-cli/internal/client/services"
)

// The popular carousel shows a window of 4 over the first 8 catalogue entries.
const (
	popularWindow = 4
	popularLimit  = 8
)

// popularBooks returns at most the first eight entries of the catalogue.
func popularBooks(books []models.Book) []models.Book {
	if len(books) > popularLimit {
		return books[:popularLimit]
	}
	return books
}

// maxCarouselIndex is the largest index the window may start at. No wraparound.
func maxCarouselIndex(n int) int {
	if n <= popularWindow {
		return 0
	}
	return n - popularWindow
}

// carouselWindow slices the visible part of the carousel, clamping index into
// the valid range first.
func carouselWindow(popular []models.Book, index int) ([]models.Book, int) {
	max := maxCarouselIndex(len(popular))
	if index < 0 {
		index = 0
	}
	if index > max {
		index = max
	}
	end := index + popularWindow
	if end > len(popular) {
		end = len(popular)
	}
	return popular[index:end], index
}

// Browse is the catalogue screen: loaded once on entry, filtered client-side.
// Admins never see it; the guard keeps them on the dashboard.
func (a *App) Browse(ctx context.Context) error {
	if ok, err := a.guard(ctx, ScreenHome, false); !ok {
		return err
	}

	books, _ := a.loadCatalogue(ctx)

	query := ""
	genre := "All"
	index := 0
	a.renderBrowse(books, query, genre, index)

	for {
		line, err := GetSimpleText(a.reader,
			"browse (search <text> | genre <name> | next | prev | open <id> | reload | back)", a.out)
		if err != nil {
			return err
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			a.renderBrowse(books, query, genre, index)
			continue
		}

		switch parts[0] {
		case "back":
			return nil
		case "search":
			query = strings.Join(parts[1:], " ")
			a.renderBrowse(books, query, genre, index)
		case "genre":
			if len(parts) < 2 {
				fmt.Fprintf(a.out, "Genres: All, %s\n", strings.Join(models.Genres, ", "))
				continue
			}
			g := parts[1]
			if g != "All" && !models.ValidGenre(g) {
				fmt.Fprintf(a.out, "Unknown genre %q. Genres: All, %s\n", g, strings.Join(models.Genres, ", "))
				continue
			}
			genre = g
			a.renderBrowse(books, query, genre, index)
		case "next":
			_, index = carouselWindow(popularBooks(books), index+1)
			a.renderBrowse(books, query, genre, index)
		case "prev":
			_, index = carouselWindow(popularBooks(books), index-1)
			a.renderBrowse(books, query, genre, index)
		case "open":
			if len(parts) < 2 {
				fmt.Fprintln(a.out, "Usage: open <id>")
				continue
			}
			if err := a.Book(ctx, parts[1]); err != nil {
				return err
			}
			a.renderBrowse(books, query, genre, index)
		case "reload":
			books, _ = a.loadCatalogue(ctx)
			a.renderBrowse(books, query, genre, index)
		default:
			fmt.Fprintln(a.out, "Unknown command:", parts[0])
		}
	}
}

// loadCatalogue fetches through the two-tier read path and tells the user
// when they are looking at degraded data.
func (a *App) loadCatalogue(ctx context.Context) ([]models.Book, services.Tier) {
	books, tier := a.catalog.Load(ctx)
	switch tier {
	case services.TierSnapshot:
		fmt.Fprintln(a.out, "(service unreachable: showing the last saved catalogue)")
	case services.TierSeed:
		fmt.Fprintln(a.out, "(service unreachable: showing sample data)")
	}
	return books, tier
}

func (a *App) renderBrowse(books []models.Book, query, genre string, index int) {
	popular := popularBooks(books)
	window, index := carouselWindow(popular, index)

	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "Popular Books (%d-%d of %d)\n", index+1, index+len(window), len(popular))
	for _, b := range window {
		fmt.Fprintf(a.out, "  #%-6d %-35s %-20s %.1f\n", b.ID, b.Title, b.Author, b.Rating)
	}

	filtered := models.FilterBooks(books, query, genre)
	fmt.Fprintf(a.out, "\nCatalogue (query=%q genre=%s): %d of %d\n", query, genre, len(filtered), len(books))
	for _, b := range filtered {
		availability := "available"
		if !b.Available() {
			availability = "join queue"
		}
		fmt.Fprintf(a.out, "  #%-6d %-35s %-20s %-10s %s\n", b.ID, b.Title, b.Author, b.Genre, availability)
	}
}
