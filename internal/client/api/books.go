package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/nextread/nextread-cli/internal/client/models"
)

// ListBooks fetches the whole catalogue.
func (c *HTTPClient) ListBooks(ctx context.Context) ([]models.Book, error) {
	var books []models.Book
	if err := c.doJSON(ctx, http.MethodGet, "/books", nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// ListBooksByGenre fetches the catalogue filtered server-side by genre.
func (c *HTTPClient) ListBooksByGenre(ctx context.Context, genre string) ([]models.Book, error) {
	var books []models.Book
	path := "/books?genre=" + url.QueryEscape(genre)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// GetBook fetches a single book by id.
func (c *HTTPClient) GetBook(ctx context.Context, id int64) (*models.Book, error) {
	var book models.Book
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/books/%d", id), nil, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

// CreateBook stores a new book and returns it with the server-assigned id.
func (c *HTTPClient) CreateBook(ctx context.Context, book *models.Book) (*models.Book, error) {
	var created models.Book
	if err := c.doJSON(ctx, http.MethodPost, "/books", book, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateBook replaces the stored record and returns the result.
func (c *HTTPClient) UpdateBook(ctx context.Context, id int64, book *models.Book) (*models.Book, error) {
	var updated models.Book
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/books/%d", id), book, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteBook removes a book. The service acknowledges with plain text.
func (c *HTTPClient) DeleteBook(ctx context.Context, id int64) error {
	return c.doText(ctx, http.MethodDelete, fmt.Sprintf("/books/%d", id))
}
