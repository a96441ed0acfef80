package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nextread/nextread-cli/internal/client/models"
	"github.com/nextread/nextread-cli/internal/logging"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL+"/api", logging.New(logging.FormatText, "error", io.Discard))
}

func TestLogin_Success(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice@example.edu", req["email"])
		assert.Equal(t, "secret1", req["password"])

		json.NewEncoder(w).Encode(models.User{ID: 7, Name: "Alice", Email: req["email"], Role: models.RoleStudent})
	})

	user, err := c.Login(context.Background(), "alice@example.edu", "secret1")
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, models.RoleStudent, user.Role)
}

func TestLogin_BadCredentials(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Invalid email or password", http.StatusUnauthorized)
	})

	_, err := c.Login(context.Background(), "alice@example.edu", "wrong")
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Invalid email or password", apiErr.Message)
}

func TestError_EmptyBodyFallbackMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.ListBooks(context.Background())
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "API request failed", apiErr.Message)
}

func TestUnreachable_WrapsErrUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	c := NewHTTPClient(srv.URL+"/api", logging.New(logging.FormatText, "error", io.Discard))
	_, err := c.ListBooks(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestMalformedResponse_WrapsErrUnavailable(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "{not json")
	})

	_, err := c.GetBook(context.Background(), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestListBooksByGenre_QueryEscaped(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/books", r.URL.Path)
		assert.Equal(t, "Science Fiction", r.URL.Query().Get("genre"))
		json.NewEncoder(w).Encode([]models.Book{{ID: 2, Genre: "Science Fiction"}})
	})

	books, err := c.ListBooksByGenre(context.Background(), "Science Fiction")
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, int64(2), books[0].ID)
}

func TestReserveBook_RequestBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/reservations/reserve", r.URL.Path)

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.EqualValues(t, 7, req["userId"])
		assert.EqualValues(t, 3, req["bookId"])
		assert.EqualValues(t, 21, req["borrowDays"])

		json.NewEncoder(w).Encode(models.Reservation{ID: 42, Status: models.ReservationActive})
	})

	res, err := c.ReserveBook(context.Background(), 7, 3, 21)
	require.NoError(t, err)
	assert.Equal(t, int64(42), res.ID)
	assert.Equal(t, models.ReservationActive, res.Status)
}

func TestListUserReservations_PathAndStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/reservations/user/7", r.URL.Path)
		assert.Equal(t, models.ReservationQueue, r.URL.Query().Get("status"))
		json.NewEncoder(w).Encode([]models.Reservation{{ID: 5, Status: models.ReservationQueue, Position: 2}})
	})

	items, err := c.ListUserReservations(context.Background(), 7, models.ReservationQueue)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Position)
}

func TestCancelReservation_PlainTextAck(t *testing.T) {
	var gotMethod, gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		io.WriteString(w, "Reservation cancelled successfully")
	})

	require.NoError(t, c.CancelReservation(context.Background(), 5))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/reservations/5", gotPath)
}

func TestReturnBook_Path(t *testing.T) {
	var gotMethod, gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		io.WriteString(w, "ok")
	})

	require.NoError(t, c.ReturnBook(context.Background(), 12))
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/api/reservations/12/return", gotPath)
}

func TestDeleteBook_Path(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		io.WriteString(w, "Book deleted")
	})

	require.NoError(t, c.DeleteBook(context.Background(), 9))
	assert.Equal(t, "/api/books/9", gotPath)
}

func TestUpdateBook_RoundTrip(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/books/3", r.URL.Path)

		var book models.Book
		require.NoError(t, json.NewDecoder(r.Body).Decode(&book))
		book.ID = 3
		json.NewEncoder(w).Encode(book)
	})

	updated, err := c.UpdateBook(context.Background(), 3, &models.Book{Title: "Dune", TotalCopies: 4, AvailableCopies: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(3), updated.ID)
	assert.Equal(t, "Dune", updated.Title)
	assert.Equal(t, 1, updated.AvailableCopies)
}
