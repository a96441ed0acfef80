// Package services contains application services sitting between the screens
// and the API client. The catalog service owns the degraded-mode read path:
// remote first, then the persisted snapshot, then the built-in seed list.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/nextread/nextread-cli/internal/client/api"
	"github.com/nextread/nextread-cli/internal/client/cache"
	"github.com/nextread/nextread-cli/internal/client/models"
	"github.com/nextread/nextread-cli/internal/logging"
)

// Tier names which level of the read path actually served a request, so
// screens can tell the user when they are looking at stale or sample data.
type Tier int

const (
	TierRemote Tier = iota
	TierSnapshot
	TierSeed
)

func (t Tier) String() string {
	switch t {
	case TierRemote:
		return "remote"
	case TierSnapshot:
		return "snapshot"
	case TierSeed:
		return "seed"
	default:
		return "unknown"
	}
}

// CatalogService loads and creates catalogue entries with the offline
// fallback behavior layered on top of the plain API client.
type CatalogService struct {
	client api.Client
	store  cache.Store
	log    logging.Logger
	now    func() time.Time
}

func NewCatalogService(client api.Client, store cache.Store, log logging.Logger) *CatalogService {
	return &CatalogService{client: client, store: store, log: log, now: time.Now}
}

// Load fetches the catalogue from the service and persists it as the new
// snapshot. When the service fails for any reason, the last snapshot is
// served; with no usable snapshot, the seed list. Load never fails outright:
// the tier tells the caller what it got.
func (s *CatalogService) Load(ctx context.Context) ([]models.Book, Tier) {
	books, err := s.client.ListBooks(ctx)
	if err == nil {
		if serr := s.store.Save(ctx, books); serr != nil {
			s.log.Warn(ctx, "snapshot save failed", "error", serr)
		}
		return books, TierRemote
	}

	s.log.Warn(ctx, "catalogue fetch failed, using fallback", "error", err)

	cached, cerr := s.store.Load(ctx)
	if cerr == nil {
		return cached, TierSnapshot
	}
	return cache.Seed(), TierSeed
}

// Create stores a new book on the service and mirrors it into the snapshot.
// If the service call fails, the book is kept locally with a time-based id.
// Such records are never reconciled with the server's id space once
// connectivity returns; the caller learns about the divergence via the tier.
func (s *CatalogService) Create(ctx context.Context, book models.Book) (*models.Book, Tier, error) {
	created, err := s.client.CreateBook(ctx, &book)
	if err == nil {
		if perr := s.store.Prepend(ctx, *created); perr != nil {
			s.log.Warn(ctx, "snapshot update failed", "error", perr)
		}
		return created, TierRemote, nil
	}

	s.log.Warn(ctx, "remote create failed, keeping book locally", "error", err)

	book.ID = s.now().UnixMilli()
	if perr := s.store.Prepend(ctx, book); perr != nil {
		return nil, TierSnapshot, fmt.Errorf("create fallback: %w", perr)
	}
	return &book, TierSnapshot, nil
}
