package api

import (
	"context"
	"net/http"

	"github.com/nextread/nextread-cli/internal/client/models"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for the authenticated user record.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	req := loginRequest{Email: email, Password: password}
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Register creates an account and returns the stored user record.
func (c *HTTPClient) Register(ctx context.Context, form models.RegisterForm) (*models.User, error) {
	var user models.User
	if err := c.doJSON(ctx, http.MethodPost, "/auth/register", form, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
