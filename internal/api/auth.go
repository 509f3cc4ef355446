package api

import (
	"context"
	"net/url"
)

// LoginRequest is the credential payload for login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the payload for account creation
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Nom      string `json:"nom"`
	Prenom   string `json:"prenom"`
}

// Login authenticates with email and password.
//
// The returned token is NOT stored on the client; the session layer owns
// that decision so token and user are always set together.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var auth AuthResponse
	if err := c.post(ctx, "/api/auth/login", LoginRequest{Email: email, Password: password}, &auth); err != nil {
		return nil, err
	}
	return &auth, nil
}

// Register creates a new account. The backend logs the new user in as part
// of registration and returns a token alongside the user record.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var auth AuthResponse
	if err := c.post(ctx, "/api/auth/register", req, &auth); err != nil {
		return nil, err
	}
	return &auth, nil
}

// RefreshToken re-validates the current bearer token and returns a fresh
// token/user pair. Used on startup to restore a persisted session.
func (c *Client) RefreshToken(ctx context.Context) (*AuthResponse, error) {
	var auth AuthResponse
	if err := c.post(ctx, "/api/auth/refresh", nil, &auth); err != nil {
		return nil, err
	}
	return &auth, nil
}

// VerifyEmail redeems an email-verification token
func (c *Client) VerifyEmail(ctx context.Context, token string) error {
	query := url.Values{}
	query.Set("token", token)
	return c.get(ctx, "/api/auth/verify-email", query, nil)
}

// SendVerificationEmail asks the backend to send a fresh verification mail
// to the authenticated user
func (c *Client) SendVerificationEmail(ctx context.Context) error {
	return c.post(ctx, "/api/auth/send-verification", nil, nil)
}
