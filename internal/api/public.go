package api

import "context"

// Members lists the public member directory (no authentication required)
func (c *Client) Members(ctx context.Context) ([]PublicMember, error) {
	var members []PublicMember
	if err := c.get(ctx, "/api/public/members", nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// BDEMembers lists the association's board
func (c *Client) BDEMembers(ctx context.Context) ([]BDEMember, error) {
	var members []BDEMember
	if err := c.get(ctx, "/api/public/bde-members", nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// Annonces lists the public announcements
func (c *Client) Annonces(ctx context.Context) ([]Annonce, error) {
	var annonces []Annonce
	if err := c.get(ctx, "/api/public/annonces", nil, &annonces); err != nil {
		return nil, err
	}
	return annonces, nil
}
