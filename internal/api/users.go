package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// ProfileUpdate carries the self-service profile fields
type ProfileUpdate struct {
	Nom       *string `json:"nom,omitempty"`
	Prenom    *string `json:"prenom,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// UserUpdate carries the admin-editable fields of a user record
type UserUpdate struct {
	Nom       *string `json:"nom,omitempty"`
	Prenom    *string `json:"prenom,omitempty"`
	Email     *string `json:"email,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	IsActive  *bool   `json:"is_active,omitempty"`
	Role      *Role   `json:"role,omitempty"`
}

// UserListOptions filters the admin user list
type UserListOptions struct {
	Page   int
	Limit  int
	Search string
	Role   string
}

// Me returns the authenticated user's own record
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.get(ctx, "/api/users/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile patches the authenticated user's own record and returns the
// server-confirmed result
func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (*User, error) {
	var user User
	if err := c.patch(ctx, "/api/users/me", update, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ChangePassword replaces the authenticated user's password
func (c *Client) ChangePassword(ctx context.Context, current, next string) error {
	body := map[string]string{
		"current_password": current,
		"new_password":     next,
	}
	return c.post(ctx, "/api/users/me/password", body, nil)
}

// DeleteAccount removes the authenticated user's own account
func (c *Client) DeleteAccount(ctx context.Context) error {
	return c.delete(ctx, "/api/users/me", nil)
}

// Users lists users (admin only)
func (c *Client) Users(ctx context.Context, opts UserListOptions) (*Page[AdminUser], error) {
	query := listQuery(opts.Page, opts.Limit)
	if opts.Search != "" {
		query.Set("search", opts.Search)
	}
	if opts.Role != "" {
		query.Set("role", opts.Role)
	}

	var page Page[AdminUser]
	if err := c.get(ctx, "/api/users", query, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// User fetches one user by id (admin only)
func (c *Client) User(ctx context.Context, id int64) (*User, error) {
	var user User
	if err := c.get(ctx, fmt.Sprintf("/api/users/%d", id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser patches a user record (admin only)
func (c *Client) UpdateUser(ctx context.Context, id int64, update UserUpdate) (*User, error) {
	var user User
	if err := c.patch(ctx, fmt.Sprintf("/api/users/%d", id), update, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser deactivates a user, or removes it permanently (admin only)
func (c *Client) DeleteUser(ctx context.Context, id int64, permanent bool) error {
	query := url.Values{}
	query.Set("permanent", strconv.FormatBool(permanent))
	return c.delete(ctx, fmt.Sprintf("/api/users/%d", id), query)
}

// DeleteUserAvatar removes a user's avatar (admin only)
func (c *Client) DeleteUserAvatar(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/users/%d/avatar", id), nil)
}

// AdhesionAction is a membership toggle direction
type AdhesionAction string

// Adhesion actions
const (
	AdhesionAdd    AdhesionAction = "add"
	AdhesionRemove AdhesionAction = "remove"
)

// ToggleAdhesion grants or revokes a user's membership flag (admin only)
func (c *Client) ToggleAdhesion(ctx context.Context, id int64, action AdhesionAction) error {
	body := map[string]string{"action": string(action)}
	return c.post(ctx, fmt.Sprintf("/api/users/%d/adhesion", id), body, nil)
}

// UserStats returns the admin user statistics
func (c *Client) UserStats(ctx context.Context) (*AdminUserStats, error) {
	var stats AdminUserStats
	if err := c.get(ctx, "/api/users/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// listQuery builds the shared page/limit query parameters
func listQuery(page, limit int) url.Values {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))
	return query
}
