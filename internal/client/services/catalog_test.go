package services

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nextread/nextread-cli/internal/client/cache"
	"github.com/nextread/nextread-cli/internal/client/models"
	"github.com/nextread/nextread-cli/internal/logging"
)

var errDown = errors.New("connection refused")

// stubClient fails every call unless a function field is set.
type stubClient struct {
	listBooks  func(ctx context.Context) ([]models.Book, error)
	createBook func(ctx context.Context, book *models.Book) (*models.Book, error)
}

func (c *stubClient) ListBooks(ctx context.Context) ([]models.Book, error) {
	if c.listBooks == nil {
		return nil, errDown
	}
	return c.listBooks(ctx)
}

func (c *stubClient) CreateBook(ctx context.Context, book *models.Book) (*models.Book, error) {
	if c.createBook == nil {
		return nil, errDown
	}
	return c.createBook(ctx, book)
}

func (c *stubClient) Login(context.Context, string, string) (*models.User, error) {
	return nil, errDown
}
func (c *stubClient) Register(context.Context, models.RegisterForm) (*models.User, error) {
	return nil, errDown
}
func (c *stubClient) ListBooksByGenre(context.Context, string) ([]models.Book, error) {
	return nil, errDown
}
func (c *stubClient) GetBook(context.Context, int64) (*models.Book, error) { return nil, errDown }
func (c *stubClient) UpdateBook(context.Context, int64, *models.Book) (*models.Book, error) {
	return nil, errDown
}
func (c *stubClient) DeleteBook(context.Context, int64) error              { return errDown }
func (c *stubClient) ListUsers(context.Context) ([]models.User, error)     { return nil, errDown }
func (c *stubClient) GetUser(context.Context, int64) (*models.User, error) { return nil, errDown }
func (c *stubClient) UpdateUser(context.Context, int64, *models.User) (*models.User, error) {
	return nil, errDown
}
func (c *stubClient) DeleteUser(context.Context, int64) error { return errDown }
func (c *stubClient) ListReservations(context.Context) ([]models.Reservation, error) {
	return nil, errDown
}
func (c *stubClient) ListUserReservations(context.Context, int64, string) ([]models.Reservation, error) {
	return nil, errDown
}
func (c *stubClient) ReserveBook(context.Context, int64, int64, int) (*models.Reservation, error) {
	return nil, errDown
}
func (c *stubClient) CancelReservation(context.Context, int64) error { return errDown }
func (c *stubClient) ReturnBook(context.Context, int64) error        { return errDown }

// memStore is an in-memory cache.Store.
type memStore struct {
	books    []models.Book
	saved    bool
	saveErr  error
	loadErr  error
	prepends int
}

func (m *memStore) Save(_ context.Context, books []models.Book) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.books = append([]models.Book(nil), books...)
	m.saved = true
	return nil
}

func (m *memStore) Load(context.Context) ([]models.Book, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if !m.saved {
		return nil, cache.ErrNoSnapshot
	}
	return m.books, nil
}

func (m *memStore) Prepend(_ context.Context, book models.Book) error {
	m.books = append([]models.Book{book}, m.books...)
	m.saved = true
	m.prepends++
	return nil
}

func (m *memStore) Close() error { return nil }

func newCatalog(client *stubClient, store *memStore) *CatalogService {
	return NewCatalogService(client, store, logging.New(logging.FormatText, "error", io.Discard))
}

func TestLoad_RemoteSavesSnapshot(t *testing.T) {
	remote := []models.Book{{ID: 1, Title: "The Hobbit"}}
	client := &stubClient{listBooks: func(context.Context) ([]models.Book, error) { return remote, nil }}
	store := &memStore{}

	books, tier := newCatalog(client, store).Load(context.Background())

	assert.Equal(t, TierRemote, tier)
	assert.Equal(t, remote, books)
	assert.Equal(t, remote, store.books, "snapshot mirrors the remote list")
}

func TestLoad_FallsBackToSnapshot(t *testing.T) {
	store := &memStore{saved: true, books: []models.Book{{ID: 2, Title: "Cached"}}}

	books, tier := newCatalog(&stubClient{}, store).Load(context.Background())

	assert.Equal(t, TierSnapshot, tier)
	require.Len(t, books, 1)
	assert.Equal(t, "Cached", books[0].Title)
}

func TestLoad_FallsBackToSeed(t *testing.T) {
	books, tier := newCatalog(&stubClient{}, &memStore{}).Load(context.Background())

	assert.Equal(t, TierSeed, tier)
	assert.Equal(t, cache.Seed(), books)
}

func TestLoad_SnapshotSaveFailureStillRemote(t *testing.T) {
	client := &stubClient{listBooks: func(context.Context) ([]models.Book, error) {
		return []models.Book{{ID: 1}}, nil
	}}
	store := &memStore{saveErr: errors.New("disk full")}

	books, tier := newCatalog(client, store).Load(context.Background())

	assert.Equal(t, TierRemote, tier)
	assert.Len(t, books, 1)
}

func TestCreate_RemoteMirrorsSnapshot(t *testing.T) {
	client := &stubClient{createBook: func(_ context.Context, book *models.Book) (*models.Book, error) {
		created := *book
		created.ID = 77
		return &created, nil
	}}
	store := &memStore{}

	created, tier, err := newCatalog(client, store).Create(context.Background(), models.Book{Title: "New"})

	require.NoError(t, err)
	assert.Equal(t, TierRemote, tier)
	assert.Equal(t, int64(77), created.ID)
	require.Len(t, store.books, 1)
	assert.Equal(t, int64(77), store.books[0].ID)
}

func TestCreate_OfflineAssignsTimeBasedID(t *testing.T) {
	store := &memStore{}
	svc := newCatalog(&stubClient{}, store)
	fixed := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	created, tier, err := svc.Create(context.Background(), models.Book{Title: "Offline"})

	require.NoError(t, err)
	assert.Equal(t, TierSnapshot, tier)
	assert.Equal(t, fixed.UnixMilli(), created.ID)
	require.Len(t, store.books, 1)
	assert.Equal(t, created.ID, store.books[0].ID)
}

func TestTier_String(t *testing.T) {
	assert.Equal(t, "remote", TierRemote.String())
	assert.Equal(t, "snapshot", TierSnapshot.String())
	assert.Equal(t, "seed", TierSeed.String())
}
