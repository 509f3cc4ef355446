package api

import (
	"context"
	"fmt"
)

// MessageListOptions filters the mailbox listing
type MessageListOptions struct {
	Page   int
	Limit  int
	Unread bool
}

// Messages lists the authenticated user's received messages
func (c *Client) Messages(ctx context.Context, opts MessageListOptions) (*Page[Message], error) {
	query := listQuery(opts.Page, opts.Limit)
	if opts.Unread {
		query.Set("unread", "true")
	}

	var page Page[Message]
	if err := c.get(ctx, "/api/messages", query, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// SentMessages lists the authenticated user's sent messages
func (c *Client) SentMessages(ctx context.Context, page, limit int) (*Page[Message], error) {
	var result Page[Message]
	if err := c.get(ctx, "/api/messages/sent", listQuery(page, limit), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UnreadCount returns the number of unread messages
func (c *Client) UnreadCount(ctx context.Context) (int, error) {
	var payload struct {
		Count int `json:"count"`
	}
	if err := c.get(ctx, "/api/messages/unread/count", nil, &payload); err != nil {
		return 0, err
	}
	return payload.Count, nil
}

// Message fetches one message by id
func (c *Client) Message(ctx context.Context, id int64) (*Message, error) {
	var msg Message
	if err := c.get(ctx, fmt.Sprintf("/api/messages/%d", id), nil, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// SendMessage delivers a message to another member's mailbox
func (c *Client) SendMessage(ctx context.Context, destinataireID int64, sujet, contenu string) error {
	body := map[string]any{
		"destinataire_id": destinataireID,
		"sujet":           sujet,
		"contenu":         contenu,
	}
	return c.post(ctx, "/api/messages", body, nil)
}

// MarkRead flags a message read or unread
func (c *Client) MarkRead(ctx context.Context, id int64, read bool) error {
	return c.patch(ctx, fmt.Sprintf("/api/messages/%d/read", id), map[string]bool{"lu": read}, nil)
}

// MarkImportant flags or unflags a message as important
func (c *Client) MarkImportant(ctx context.Context, id int64, important bool) error {
	return c.patch(ctx, fmt.Sprintf("/api/messages/%d/important", id), map[string]bool{"important": important}, nil)
}

// DeleteMessage removes a message from the mailbox
func (c *Client) DeleteMessage(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/messages/%d", id), nil)
}

// Broadcast sends an announcement message to every member (admin only)
func (c *Client) Broadcast(ctx context.Context, sujet, contenu string) error {
	body := map[string]string{"sujet": sujet, "contenu": contenu}
	return c.post(ctx, "/api/messages/broadcast", body, nil)
}
