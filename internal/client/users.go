package client

import (
	"context"

	"floodwatch-cli/internal/errors"
	"floodwatch-cli/pkg/models"
)

// Login authenticates against the identity backend and returns the bearer
// token plus the user record. Persisting the token is the caller's job.
func (c *Client) Login(ctx context.Context, username, password string) (*models.LoginResponse, error) {
	if username == "" {
		return nil, errors.NewValidationError("username is required")
	}
	if password == "" {
		return nil, errors.NewValidationError("password is required")
	}

	var respData models.LoginResponse

	resp, err := c.auth.R().
		SetContext(ctx).
		SetBody(models.LoginRequest{Username: username, Password: password}).
		SetResult(&respData).
		Post("/auth/login")

	if err := checkResponse(resp, err, "login failed"); err != nil {
		return nil, err
	}

	if respData.Token == "" {
		return nil, errors.NewTransportError("login succeeded but no token returned", resp.StatusCode(), nil)
	}

	return &respData, nil
}

// Register creates a new account. The account starts in Pending Verification
// until an admin approves it.
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	if req.Username == "" {
		return nil, errors.NewValidationError("username is required")
	}
	if req.Email == "" {
		return nil, errors.NewValidationError("email is required")
	}
	if req.Password == "" {
		return nil, errors.NewValidationError("password is required")
	}

	var respData models.User

	resp, err := c.auth.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&respData).
		Post("/auth/register")

	if err := checkResponse(resp, err, "registration failed"); err != nil {
		return nil, err
	}

	return &respData, nil
}

// GetUsers lists all accounts. Admin scope; the backend rejects the call for
// ordinary tokens.
func (c *Client) GetUsers(ctx context.Context) ([]models.User, error) {
	var respData []models.User

	resp, err := c.auth.R().
		SetContext(ctx).
		SetResult(&respData).
		Get("/users")

	if err := checkResponse(resp, err, "failed to get users"); err != nil {
		return nil, err
	}

	return respData, nil
}

// UpdateUserStatus requests a verification-status transition. Allowed
// transitions are not enforced here; the auth backend owns that rule.
func (c *Client) UpdateUserStatus(ctx context.Context, id, status string) (*models.User, error) {
	if id == "" {
		return nil, errors.NewValidationError("user id is required")
	}
	if status == "" {
		return nil, errors.NewValidationError("status is required")
	}

	var respData models.User

	resp, err := c.auth.R().
		SetContext(ctx).
		SetBody(models.UpdateUserStatusRequest{Status: status}).
		SetResult(&respData).
		Put("/users/" + id + "/status")

	if err := checkResponse(resp, err, "failed to update status for user "+id); err != nil {
		return nil, err
	}

	return &respData, nil
}
