package cache

import "github.com/nextread/nextread-cli/internal/client/models"

// Seed returns the built-in catalogue used when the service is unreachable
// and no snapshot has ever been saved. Browsing stays possible, nothing more.
func Seed() []models.Book {
	return []models.Book{
		{ID: 1, Title: "The Example Book", Author: "Jane Doe", Rating: 4.5, Status: "Available"},
		{ID: 2, Title: "Another Book", Author: "John Smith", Rating: 4.0, Status: "Available"},
	}
}
