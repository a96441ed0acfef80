// Package models holds the wire types shared by the API client, the local
// snapshot store and the screens. Field names follow the service's JSON
// contract exactly.
package models

import "strings"

// Genres is the fixed genre list the service recognises. Screens offer an
// extra "All" choice on top of it; "All" is a filter sentinel, not a genre.
var Genres = []string{"Fiction", "Fantasy", "Mystery", "Science", "Romance", "History"}

// Book is a catalogue entry.
type Book struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title"`
	Author          string  `json:"author"`
	ISBN            string  `json:"isbn,omitempty"`
	Genre           string  `json:"genre"`
	Rating          float64 `json:"rating"`
	TotalCopies     int     `json:"totalCopies"`
	AvailableCopies int     `json:"availableCopies"`
	InQueue         int     `json:"inQueue"`
	Status          string  `json:"status,omitempty"`
	Description     string  `json:"description,omitempty"`
	CoverURL        string  `json:"coverUrl,omitempty"`
}

// Available reports whether at least one copy can be borrowed right now.
func (b *Book) Available() bool {
	return b.AvailableCopies > 0
}

// Matches reports whether the search text occurs in the title or the author,
// case-insensitively. An empty query matches everything.
func (b *Book) Matches(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(b.Title), q) ||
		strings.Contains(strings.ToLower(b.Author), q)
}

// ValidGenre reports whether g is one of the service genres. "All" is not.
func ValidGenre(g string) bool {
	for _, known := range Genres {
		if g == known {
			return true
		}
	}
	return false
}

// FilterBooks applies the search text and genre filter together. Genre ""
// and "All" both disable the genre filter.
func FilterBooks(books []Book, query, genre string) []Book {
	result := make([]Book, 0, len(books))
	for i := range books {
		if genre != "" && genre != "All" && books[i].Genre != genre {
			continue
		}
		if !books[i].Matches(query) {
			continue
		}
		result = append(result, books[i])
	}
	return result
}
