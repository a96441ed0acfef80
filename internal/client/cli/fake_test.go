package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/nextread/nextread-cli/internal/client/api"
	"github.com/nextread/nextread-cli/internal/client/cache"
	"github.com/nextread/nextread-cli/internal/client/config"
	"github.com/nextread/nextread-cli/internal/client/models"
	"github.com/nextread/nextread-cli/internal/client/services"
	"github.com/nextread/nextread-cli/internal/client/session"
	"github.com/nextread/nextread-cli/internal/logging"
)

type reserveCall struct {
	userID, bookID int64
	borrowDays     int
}

// fakeAPI is an in-memory api.Client. Setting down makes every call fail
// with a transport error.
type fakeAPI struct {
	down       bool
	failCreate bool

	books        []models.Book
	users        []models.User
	reservations []models.Reservation
	byStatus     map[string][]models.Reservation
	loginUser    *models.User

	reserveCalls []reserveCall
	cancelCalls  []int64
	returnCalls  []int64
	deletedBooks []int64
	deletedUsers []int64
}

var errFakeDown = errors.New("connection refused")

func (f *fakeAPI) Login(_ context.Context, email, password string) (*models.User, error) {
	if f.down {
		return nil, errFakeDown
	}
	if f.loginUser == nil {
		return nil, &api.Error{Status: http.StatusUnauthorized, Message: "Invalid email or password"}
	}
	return f.loginUser, nil
}

func (f *fakeAPI) Register(_ context.Context, form models.RegisterForm) (*models.User, error) {
	if f.down {
		return nil, errFakeDown
	}
	return &models.User{ID: 99, Name: form.Name, Email: form.Email, Role: models.RoleStudent}, nil
}

func (f *fakeAPI) ListBooks(context.Context) ([]models.Book, error) {
	if f.down {
		return nil, errFakeDown
	}
	return f.books, nil
}

func (f *fakeAPI) ListBooksByGenre(_ context.Context, genre string) ([]models.Book, error) {
	if f.down {
		return nil, errFakeDown
	}
	return models.FilterBooks(f.books, "", genre), nil
}

func (f *fakeAPI) GetBook(_ context.Context, id int64) (*models.Book, error) {
	if f.down {
		return nil, errFakeDown
	}
	for i := range f.books {
		if f.books[i].ID == id {
			b := f.books[i]
			return &b, nil
		}
	}
	return nil, &api.Error{Status: http.StatusNotFound, Message: "Book not found"}
}

func (f *fakeAPI) CreateBook(_ context.Context, book *models.Book) (*models.Book, error) {
	if f.down || f.failCreate {
		return nil, errFakeDown
	}
	created := *book
	created.ID = int64(len(f.books) + 1)
	f.books = append(f.books, created)
	return &created, nil
}

func (f *fakeAPI) UpdateBook(_ context.Context, id int64, book *models.Book) (*models.Book, error) {
	if f.down {
		return nil, errFakeDown
	}
	for i := range f.books {
		if f.books[i].ID == id {
			updated := *book
			updated.ID = id
			f.books[i] = updated
			return &updated, nil
		}
	}
	return nil, &api.Error{Status: http.StatusNotFound, Message: "Book not found"}
}

func (f *fakeAPI) DeleteBook(_ context.Context, id int64) error {
	if f.down {
		return errFakeDown
	}
	f.deletedBooks = append(f.deletedBooks, id)
	kept := f.books[:0]
	for _, b := range f.books {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	f.books = kept
	return nil
}

func (f *fakeAPI) ListUsers(context.Context) ([]models.User, error) {
	if f.down {
		return nil, errFakeDown
	}
	return f.users, nil
}

func (f *fakeAPI) GetUser(_ context.Context, id int64) (*models.User, error) {
	if f.down {
		return nil, errFakeDown
	}
	for i := range f.users {
		if f.users[i].ID == id {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, &api.Error{Status: http.StatusNotFound, Message: "User not found"}
}

func (f *fakeAPI) UpdateUser(_ context.Context, id int64, user *models.User) (*models.User, error) {
	if f.down {
		return nil, errFakeDown
	}
	updated := *user
	updated.ID = id
	return &updated, nil
}

func (f *fakeAPI) DeleteUser(_ context.Context, id int64) error {
	if f.down {
		return errFakeDown
	}
	f.deletedUsers = append(f.deletedUsers, id)
	return nil
}

func (f *fakeAPI) ListReservations(context.Context) ([]models.Reservation, error) {
	if f.down {
		return nil, errFakeDown
	}
	return f.reservations, nil
}

func (f *fakeAPI) ListUserReservations(_ context.Context, userID int64, status string) ([]models.Reservation, error) {
	if f.down {
		return nil, errFakeDown
	}
	return f.byStatus[status], nil
}

func (f *fakeAPI) ReserveBook(_ context.Context, userID, bookID int64, borrowDays int) (*models.Reservation, error) {
	if f.down {
		return nil, errFakeDown
	}
	f.reserveCalls = append(f.reserveCalls, reserveCall{userID, bookID, borrowDays})
	status := models.ReservationQueue
	for i := range f.books {
		if f.books[i].ID == bookID && f.books[i].AvailableCopies > 0 {
			f.books[i].AvailableCopies--
			status = models.ReservationActive
		}
	}
	return &models.Reservation{ID: int64(len(f.reserveCalls)), Status: status}, nil
}

func (f *fakeAPI) CancelReservation(_ context.Context, id int64) error {
	if f.down {
		return errFakeDown
	}
	f.cancelCalls = append(f.cancelCalls, id)
	for status, items := range f.byStatus {
		kept := items[:0]
		for _, r := range items {
			if r.ID != id {
				kept = append(kept, r)
			}
		}
		f.byStatus[status] = kept
	}
	return nil
}

func (f *fakeAPI) ReturnBook(_ context.Context, id int64) error {
	if f.down {
		return errFakeDown
	}
	f.returnCalls = append(f.returnCalls, id)
	return nil
}

var _ api.Client = (*fakeAPI)(nil)

// fakeStore is an in-memory cache.Store.
type fakeStore struct {
	books []models.Book
	saved bool
}

func (s *fakeStore) Save(_ context.Context, books []models.Book) error {
	s.books = append([]models.Book(nil), books...)
	s.saved = true
	return nil
}

func (s *fakeStore) Load(context.Context) ([]models.Book, error) {
	if !s.saved {
		return nil, cache.ErrNoSnapshot
	}
	return s.books, nil
}

func (s *fakeStore) Prepend(_ context.Context, book models.Book) error {
	s.books = append([]models.Book{book}, s.books...)
	s.saved = true
	return nil
}

func (s *fakeStore) Close() error { return nil }

// newTestApp wires an App around the fakes, feeding input as the stdin
// script and capturing output.
func newTestApp(t *testing.T, client api.Client, input string) (*App, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	logger := logging.New(logging.FormatText, "error", io.Discard)
	store := &fakeStore{}
	cfg := &config.Config{}
	cfg.LoadDefaults()

	return &App{
		config:  cfg,
		api:     client,
		catalog: services.NewCatalogService(client, store, logger),
		store:   store,
		session: session.New(),
		log:     logger,
		reader:  bufio.NewReader(strings.NewReader(input)),
		out:     out,
	}, out
}

func loginStudent(a *App) *models.User {
	u := &models.User{ID: 7, Name: "Alice Reader", Email: "alice@example.edu", Role: models.RoleStudent, StudentID: "S-1001"}
	a.session.Login(u)
	return u
}

func loginAdmin(a *App) *models.User {
	u := &models.User{ID: 1, Name: "Morgan Admin", Email: "admin@example.edu", Role: models.RoleAdmin}
	a.session.Login(u)
	return u
}

func catalogued() []models.Book {
	return []models.Book{
		{ID: 1, Title: "The Hobbit", Author: "J.R.R. Tolkien", Genre: "Fantasy", Rating: 4.8, TotalCopies: 3, AvailableCopies: 2},
		{ID: 2, Title: "Dune", Author: "Frank Herbert", Genre: "Science", Rating: 4.6, TotalCopies: 2, AvailableCopies: 0, InQueue: 3},
		{ID: 3, Title: "Gone Girl", Author: "Gillian Flynn", Genre: "Mystery", Rating: 4.1, TotalCopies: 4, AvailableCopies: 4},
	}
}
