// Package api implements the typed HTTP client for the NextRead service.
// Each method issues exactly one request; there are no retries, timeouts or
// local state. Failures are normalized: transport problems wrap ErrUnavailable,
// non-2xx responses become *Error carrying the response body text.
package api

import (
	"context"

	"github.com/nextread/nextread-cli/internal/client/models"
)

// Client is the remote operation surface consumed by screens and services.
type Client interface {
	// Auth
	Login(ctx context.Context, email, password string) (*models.User, error)
	Register(ctx context.Context, form models.RegisterForm) (*models.User, error)

	// Books
	ListBooks(ctx context.Context) ([]models.Book, error)
	ListBooksByGenre(ctx context.Context, genre string) ([]models.Book, error)
	GetBook(ctx context.Context, id int64) (*models.Book, error)
	CreateBook(ctx context.Context, book *models.Book) (*models.Book, error)
	UpdateBook(ctx context.Context, id int64, book *models.Book) (*models.Book, error)
	DeleteBook(ctx context.Context, id int64) error

	// Users
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, user *models.User) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) error

	// Reservations
	ListReservations(ctx context.Context) ([]models.Reservation, error)
	ListUserReservations(ctx context.Context, userID int64, status string) ([]models.Reservation, error)
	ReserveBook(ctx context.Context, userID, bookID int64, borrowDays int) (*models.Reservation, error)
	CancelReservation(ctx context.Context, id int64) error
	ReturnBook(ctx context.Context, id int64) error
}
