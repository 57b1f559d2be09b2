package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/estatehub/internal/client/models"
)

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Name            string      `json:"name"`
	Email           string      `json:"email"`
	Password        string      `json:"password"`
	ConfirmPassword string      `json:"confirmPassword"`
	Role            models.Role `json:"role"`
}

// Credentials is the body of POST /auth/login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult is the response of the register and login endpoints.
type AuthResult struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Token   string       `json:"token,omitempty"`
	User    *models.User `json:"user,omitempty"`
}

func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	raw, err := c.Do(ctx, "/auth/register", Request{Method: http.MethodPost, Body: req})
	if err != nil {
		return nil, err
	}
	return decodeAuthResult(raw)
}

func (c *HTTPClient) Login(ctx context.Context, creds Credentials) (*AuthResult, error) {
	raw, err := c.Do(ctx, "/auth/login", Request{Method: http.MethodPost, Body: creds})
	if err != nil {
		return nil, err
	}
	return decodeAuthResult(raw)
}

// Me returns the account the current token belongs to.
func (c *HTTPClient) Me(ctx context.Context) (*models.User, error) {
	raw, err := c.Do(ctx, "/auth/me", Request{Method: http.MethodGet})
	if err != nil {
		return nil, err
	}
	return decodeObject[models.User](raw, "user")
}

func decodeAuthResult(raw json.RawMessage) (*AuthResult, error) {
	var res AuthResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	return &res, nil
}
