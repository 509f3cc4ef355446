package api

import (
	"context"
	"fmt"
	"net/url"
)

// ReactionKind is one of the three GameJam reaction buttons
type ReactionKind string

// Reaction kinds
const (
	ReactionLike    ReactionKind = "like"
	ReactionDislike ReactionKind = "dislike"
	ReactionHeart   ReactionKind = "heart"
)

// Valid reports whether the kind is one the backend understands
func (k ReactionKind) Valid() bool {
	switch k {
	case ReactionLike, ReactionDislike, ReactionHeart:
		return true
	}
	return false
}

// ReactionSummary is the aggregate count for one game, computed server-side
type ReactionSummary struct {
	GameID   string `json:"game_id"`
	Likes    int    `json:"likes"`
	Dislikes int    `json:"dislikes"`
	Hearts   int    `json:"hearts"`
}

// UserReaction is the viewer's own reaction flags for one game
type UserReaction struct {
	GameID  string `json:"game_id"`
	Like    bool   `json:"like"`
	Dislike bool   `json:"dislike"`
	Heart   bool   `json:"heart"`
}

// VoterReaction is the privileged per-user breakdown visible to admins
type VoterReaction struct {
	GameID     string `json:"game_id"`
	UserID     int64  `json:"user_id"`
	UserPrenom string `json:"user_prenom"`
	UserNom    string `json:"user_nom"`
	Like       bool   `json:"like"`
	Dislike    bool   `json:"dislike"`
	Heart      bool   `json:"heart"`
}

// ReactionsPayload is the flat server snapshot for one edition.
//
// userReactions is only populated for authenticated viewers, adminDetails
// only for admin/founder viewers; summaries are always present.
type ReactionsPayload struct {
	Summaries     []ReactionSummary `json:"summaries"`
	UserReactions []UserReaction    `json:"userReactions"`
	AdminDetails  []VoterReaction   `json:"adminDetails"`
}

// GameJamReactions fetches the full reaction snapshot for an edition
func (c *Client) GameJamReactions(ctx context.Context, edition string) (*ReactionsPayload, error) {
	var payload ReactionsPayload
	path := fmt.Sprintf("/api/gamejam/%s/reactions", url.PathEscape(edition))
	if err := c.get(ctx, path, nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// ToggleGameJamReaction flips the viewer's reaction of the given kind on a
// game and returns the fresh snapshot recomputed by the server. The client
// never predicts the new counts.
func (c *Client) ToggleGameJamReaction(ctx context.Context, edition, gameID string, kind ReactionKind) (*ReactionsPayload, error) {
	body := map[string]string{
		"game_id":  gameID,
		"reaction": string(kind),
	}

	var payload ReactionsPayload
	path := fmt.Sprintf("/api/gamejam/%s/reactions", url.PathEscape(edition))
	if err := c.post(ctx, path, body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}
