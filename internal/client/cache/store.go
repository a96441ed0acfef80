// Package cache persists the catalogue fallback snapshot so browsing keeps
// working while the service is unreachable. It holds exactly one snapshot,
// overwritten on each successful load; there is no eviction policy.
package cache

import (
	"context"
	"errors"

	"github.com/nextread/nextread-cli/internal/client/models"
)

// ErrNoSnapshot is returned by Load when no usable snapshot exists, either
// because nothing was ever saved or because the stored payload does not parse.
var ErrNoSnapshot = errors.New("no catalogue snapshot")

// Store is the snapshot surface consumed by the catalog service.
type Store interface {
	// Save overwrites the snapshot with the given catalogue.
	Save(ctx context.Context, books []models.Book) error

	// Load returns the last saved catalogue, or ErrNoSnapshot.
	Load(ctx context.Context) ([]models.Book, error)

	// Prepend inserts a book at the front of the snapshot, creating the
	// snapshot if necessary. Used by the offline create fallback.
	Prepend(ctx context.Context, book models.Book) error

	Close() error
}
