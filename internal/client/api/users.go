package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nextread/nextread-cli/internal/client/models"
)

// ListUsers fetches all users (admin dashboard only).
func (c *HTTPClient) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.doJSON(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser fetches a single user by id.
func (c *HTTPClient) GetUser(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/users/%d", id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser writes the changed fields back and returns the merged record.
func (c *HTTPClient) UpdateUser(ctx context.Context, id int64, user *models.User) (*models.User, error) {
	var updated models.User
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/users/%d", id), user, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteUser removes a user. The service acknowledges with plain text.
func (c *HTTPClient) DeleteUser(ctx context.Context, id int64) error {
	return c.doText(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id))
}
