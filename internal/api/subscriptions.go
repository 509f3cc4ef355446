package api

import (
	"context"
	"fmt"
	"strconv"
)

// SubscriptionListOptions filters the admin subscription list
type SubscriptionListOptions struct {
	Page   int
	Limit  int
	Status string
	Type   string
	UserID int64
}

// SubscriptionCreate is the payload for creating a subscription (admin only)
type SubscriptionCreate struct {
	UtilisateurID int64   `json:"utilisateur_id"`
	Type          string  `json:"type"`
	Nom           string  `json:"nom"`
	Description   string  `json:"description,omitempty"`
	DateDebut     string  `json:"date_debut"`
	DateFin       string  `json:"date_fin,omitempty"`
	Prix          float64 `json:"prix"`
}

// SubscriptionUpdate carries the admin-editable subscription fields
type SubscriptionUpdate struct {
	Type        *string  `json:"type,omitempty"`
	Nom         *string  `json:"nom,omitempty"`
	Description *string  `json:"description,omitempty"`
	DateDebut   *string  `json:"date_debut,omitempty"`
	DateFin     *string  `json:"date_fin,omitempty"`
	Prix        *float64 `json:"prix,omitempty"`
	Statut      *string  `json:"statut,omitempty"`
}

// MySubscriptions lists the authenticated user's subscriptions
func (c *Client) MySubscriptions(ctx context.Context, page, limit int, status string) (*Page[Abonnement], error) {
	query := listQuery(page, limit)
	if status != "" {
		query.Set("status", status)
	}

	var result Page[Abonnement]
	if err := c.get(ctx, "/api/subscriptions/me", query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ActiveSubscriptions lists the authenticated user's active subscriptions
func (c *Client) ActiveSubscriptions(ctx context.Context) ([]Abonnement, error) {
	var result []Abonnement
	if err := c.get(ctx, "/api/subscriptions/me/active", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// CancelSubscription cancels one of the authenticated user's subscriptions
func (c *Client) CancelSubscription(ctx context.Context, id int64) error {
	return c.post(ctx, fmt.Sprintf("/api/subscriptions/me/%d/cancel", id), nil, nil)
}

// Subscriptions lists all subscriptions (admin only)
func (c *Client) Subscriptions(ctx context.Context, opts SubscriptionListOptions) (*Page[Abonnement], error) {
	query := listQuery(opts.Page, opts.Limit)
	if opts.Status != "" {
		query.Set("status", opts.Status)
	}
	if opts.Type != "" {
		query.Set("type", opts.Type)
	}
	if opts.UserID > 0 {
		query.Set("user_id", strconv.FormatInt(opts.UserID, 10))
	}

	var result Page[Abonnement]
	if err := c.get(ctx, "/api/subscriptions", query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateSubscription creates a subscription for a user (admin only)
func (c *Client) CreateSubscription(ctx context.Context, create SubscriptionCreate) error {
	return c.post(ctx, "/api/subscriptions", create, nil)
}

// UpdateSubscription patches a subscription (admin only)
func (c *Client) UpdateSubscription(ctx context.Context, id int64, update SubscriptionUpdate) error {
	return c.patch(ctx, fmt.Sprintf("/api/subscriptions/%d", id), update, nil)
}

// DeleteSubscription removes a subscription (admin only)
func (c *Client) DeleteSubscription(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/subscriptions/%d", id), nil)
}

// SubscriptionStats returns revenue and per-type aggregates (admin only)
func (c *Client) SubscriptionStats(ctx context.Context) (*SubscriptionStats, error) {
	var stats SubscriptionStats
	if err := c.get(ctx, "/api/subscriptions/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
