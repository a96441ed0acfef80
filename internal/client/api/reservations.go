package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/nextread/nextread-cli/internal/client/models"
)

type reserveRequest struct {
	UserID     int64 `json:"userId"`
	BookID     int64 `json:"bookId"`
	BorrowDays int   `json:"borrowDays"`
}

// ListReservations fetches every reservation (admin dashboard only).
func (c *HTTPClient) ListReservations(ctx context.Context) ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := c.doJSON(ctx, http.MethodGet, "/reservations", nil, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

// ListUserReservations fetches one user's reservations filtered by status
// (Active, Queue or History).
func (c *HTTPClient) ListUserReservations(ctx context.Context, userID int64, status string) ([]models.Reservation, error) {
	var reservations []models.Reservation
	path := fmt.Sprintf("/reservations/user/%d?status=%s", userID, url.QueryEscape(status))
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

// ReserveBook creates a reservation. The service decides whether it comes back
// Active (a copy was free) or Queue.
func (c *HTTPClient) ReserveBook(ctx context.Context, userID, bookID int64, borrowDays int) (*models.Reservation, error) {
	var reservation models.Reservation
	req := reserveRequest{UserID: userID, BookID: bookID, BorrowDays: borrowDays}
	if err := c.doJSON(ctx, http.MethodPost, "/reservations/reserve", req, &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

// CancelReservation removes a queued reservation or ends an active one early.
func (c *HTTPClient) CancelReservation(ctx context.Context, id int64) error {
	return c.doText(ctx, http.MethodDelete, fmt.Sprintf("/reservations/%d", id))
}

// ReturnBook marks an active reservation as returned.
func (c *HTTPClient) ReturnBook(ctx context.Context, id int64) error {
	return c.doText(ctx, http.MethodPut, fmt.Sprintf("/reservations/%d/return", id))
}
