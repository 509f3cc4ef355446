// Package reaction maintains the client-side view of GameJam reactions for
// one edition: aggregate counts per game, the viewer's own reactions, and
// the privileged per-voter breakdown.
//
// The server is the only party that computes counts. Every mutation returns
// a fresh snapshot and the aggregator replaces its whole state with it;
// there is no local increment or optimistic patching.
package reaction

import (
	"context"
	"sync"

	"github.com/binharry/binharry-cli/internal/api"
	"github.com/binharry/binharry-cli/internal/errors"
	"github.com/binharry/binharry-cli/internal/log"
)

// Summary is the aggregate reaction counts for one game
type Summary struct {
	Likes    int
	Dislikes int
	Hearts   int
}

// Own is the viewer's reaction flags for one game
type Own struct {
	Like    bool
	Dislike bool
	Heart   bool
}

// Has reports whether the given kind is set
func (o Own) Has(kind api.ReactionKind) bool {
	switch kind {
	case api.ReactionLike:
		return o.Like
	case api.ReactionDislike:
		return o.Dislike
	case api.ReactionHeart:
		return o.Heart
	}
	return false
}

// Aggregator holds the reaction snapshot for a single edition.
//
// All methods are safe for concurrent use. Network calls run outside the
// lock; a response only lands if the state generation it started from is
// still current, so a Reset while a call is in flight discards its result.
type Aggregator struct {
	client       *api.Client
	edition      string
	canSeeVoters func() bool
	logger       *log.Logger

	mu        sync.Mutex
	epoch     uint64
	loaded    bool
	summaries map[string]Summary
	own       map[string]Own
	voters    map[string][]api.VoterReaction
	order     []string
	inflight  map[string]struct{}
}

// NewAggregator creates an aggregator for the given edition. canSeeVoters
// gates the Voters accessor; pass nil to always deny.
func NewAggregator(client *api.Client, edition string, canSeeVoters func() bool, logger *log.Logger) (*Aggregator, error) {
	if edition == "" {
		return nil, errors.NewEditionRequiredError()
	}
	if canSeeVoters == nil {
		canSeeVoters = func() bool { return false }
	}
	if logger == nil {
		logger = log.DefaultLogger()
	}
	return &Aggregator{
		client:       client,
		edition:      edition,
		canSeeVoters: canSeeVoters,
		logger:       logger,
		summaries:    map[string]Summary{},
		own:          map[string]Own{},
		voters:       map[string][]api.VoterReaction{},
		inflight:     map[string]struct{}{},
	}, nil
}

// Edition returns the edition key this aggregator serves
func (a *Aggregator) Edition() string { return a.edition }

// Loaded reports whether at least one snapshot has landed since the last
// Reset
func (a *Aggregator) Loaded() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loaded
}

// Load fetches the current snapshot and replaces the whole state with it.
// On failure the previous snapshot stays visible.
func (a *Aggregator) Load(ctx context.Context) error {
	a.mu.Lock()
	epoch := a.epoch
	a.mu.Unlock()

	payload, err := a.client.GameJamReactions(ctx, a.edition)
	if err != nil {
		return err
	}

	a.apply(epoch, payload)
	return nil
}

// Toggle flips the viewer's reaction of the given kind on a game and applies
// the snapshot the server returns.
//
// A second toggle for the same (game, kind) pair while the first is still
// outstanding is suppressed locally and never reaches the wire; toggles for
// other pairs proceed independently.
func (a *Aggregator) Toggle(ctx context.Context, gameID string, kind api.ReactionKind) error {
	if !kind.Valid() {
		return errors.NewReactionKindError(string(kind))
	}
	if a.client.Token() == "" {
		return errors.NewAuthRequiredError("toggling a reaction")
	}

	key := gameID + "-" + string(kind)

	a.mu.Lock()
	if _, busy := a.inflight[key]; busy {
		a.mu.Unlock()
		return errors.NewReactionInFlightError(gameID, string(kind))
	}
	a.inflight[key] = struct{}{}
	epoch := a.epoch
	a.mu.Unlock()

	defer func() {
		a.mu.Lock()
		delete(a.inflight, key)
		a.mu.Unlock()
	}()

	payload, err := a.client.ToggleGameJamReaction(ctx, a.edition, gameID, kind)
	if err != nil {
		return err
	}

	a.apply(epoch, payload)
	return nil
}

// Summary returns the aggregate counts for a game. Unknown games report
// zero counts.
func (a *Aggregator) Summary(gameID string) Summary {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.summaries[gameID]
}

// OwnReaction returns the viewer's reaction flags for a game. Anonymous
// viewers and unknown games report all-false.
func (a *Aggregator) OwnReaction(gameID string) Own {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.own[gameID]
}

// Voters returns the per-user breakdown for a game, or nil when the viewer
// is not allowed to see it. The local gate mirrors the server one so a
// stale snapshot cannot leak the breakdown after a role change.
func (a *Aggregator) Voters(gameID string) []api.VoterReaction {
	if !a.canSeeVoters() {
		return nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	entries := a.voters[gameID]
	if len(entries) == 0 {
		return nil
	}
	out := make([]api.VoterReaction, len(entries))
	copy(out, entries)
	return out
}

// GameIDs returns the ids of all games present in the current snapshot,
// in the order the server sent them.
func (a *Aggregator) GameIDs() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.order...)
}

// Reset clears the snapshot and invalidates every outstanding call's
// pending response. Used on login, logout and edition switch, where a
// snapshot fetched under the previous identity must not land.
func (a *Aggregator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.epoch++
	a.loaded = false
	a.summaries = map[string]Summary{}
	a.own = map[string]Own{}
	a.voters = map[string][]api.VoterReaction{}
	a.order = nil
}

// apply replaces the whole snapshot, unless the state generation moved on
// while the call was in flight.
func (a *Aggregator) apply(epoch uint64, payload *api.ReactionsPayload) {
	summaries := make(map[string]Summary, len(payload.Summaries))
	order := make([]string, 0, len(payload.Summaries))
	for _, s := range payload.Summaries {
		summaries[s.GameID] = Summary{Likes: s.Likes, Dislikes: s.Dislikes, Hearts: s.Hearts}
		order = append(order, s.GameID)
	}

	own := make(map[string]Own, len(payload.UserReactions))
	for _, r := range payload.UserReactions {
		own[r.GameID] = Own{Like: r.Like, Dislike: r.Dislike, Heart: r.Heart}
	}

	voters := make(map[string][]api.VoterReaction, len(payload.AdminDetails))
	for _, v := range payload.AdminDetails {
		voters[v.GameID] = append(voters[v.GameID], v)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if epoch != a.epoch {
		a.logger.Debug("discarding stale reaction snapshot", "edition", a.edition)
		return
	}
	a.loaded = true
	a.summaries = summaries
	a.own = own
	a.voters = voters
	a.order = order
}
