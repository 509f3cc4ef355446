package reaction

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/binharry/binharry-cli/internal/api"
	"github.com/binharry/binharry-cli/internal/errors"
)

const (
	waitTimeout = 5 * time.Second
	waitTick    = 5 * time.Millisecond
)

func newTestServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()

	listener, err := net.Listen("tcp4", "127.0.0.1:0")
	if err != nil {
		t.Skipf("unable to start test server: %v", err)
	}

	server := httptest.NewUnstartedServer(handler)
	server.Listener.Close()
	server.Listener = listener
	server.Start()
	t.Cleanup(server.Close)

	return server
}

func writePayload(t *testing.T, w http.ResponseWriter, payload api.ReactionsPayload) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]any{"success": true, "data": payload}); err != nil {
		t.Errorf("failed to encode response: %v", err)
	}
}

func samplePayload() api.ReactionsPayload {
	return api.ReactionsPayload{
		Summaries: []api.ReactionSummary{
			{GameID: "2026-top-1", Likes: 12, Dislikes: 1, Hearts: 4},
			{GameID: "2026-top-2", Likes: 7, Hearts: 2},
		},
		UserReactions: []api.UserReaction{
			{GameID: "2026-top-1", Like: true},
		},
		AdminDetails: []api.VoterReaction{
			{GameID: "2026-top-1", UserID: 3, UserPrenom: "Marie", UserNom: "Dupont", Like: true},
			{GameID: "2026-top-1", UserID: 5, UserPrenom: "Luc", UserNom: "Martin", Heart: true},
		},
	}
}

func newTestAggregator(t *testing.T, handler http.Handler, canSeeVoters func() bool) *Aggregator {
	t.Helper()
	server := newTestServer(t, handler)
	client := api.NewClient(server.URL)
	client.SetToken("tok-test")
	agg, err := NewAggregator(client, "2026", canSeeVoters, nil)
	require.NoError(t, err)
	return agg
}

func TestNewAggregatorRequiresEdition(t *testing.T) {
	_, err := NewAggregator(api.NewClient("http://127.0.0.1:1"), "", nil, nil)
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
}

func TestLoadReplacesSnapshot(t *testing.T) {
	agg := newTestAggregator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/gamejam/2026/reactions", r.URL.Path)
		writePayload(t, w, samplePayload())
	}), nil)

	require.NoError(t, agg.Load(context.Background()))
	assert.True(t, agg.Loaded())

	assert.Equal(t, Summary{Likes: 12, Dislikes: 1, Hearts: 4}, agg.Summary("2026-top-1"))
	assert.Equal(t, Summary{Likes: 7, Hearts: 2}, agg.Summary("2026-top-2"))
	assert.Equal(t, Summary{}, agg.Summary("unknown"), "unknown game reports zero counts")

	own := agg.OwnReaction("2026-top-1")
	assert.True(t, own.Has(api.ReactionLike))
	assert.False(t, own.Has(api.ReactionHeart))

	assert.Equal(t, []string{"2026-top-1", "2026-top-2"}, agg.GameIDs())
}

func TestLoadFailureKeepsPriorState(t *testing.T) {
	var fail atomic.Bool
	agg := newTestAggregator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "boom"})
			return
		}
		writePayload(t, w, samplePayload())
	}), nil)

	require.NoError(t, agg.Load(context.Background()))

	fail.Store(true)
	require.Error(t, agg.Load(context.Background()))

	assert.True(t, agg.Loaded())
	assert.Equal(t, Summary{Likes: 12, Dislikes: 1, Hearts: 4}, agg.Summary("2026-top-1"))
}

func TestAnonymousSnapshot(t *testing.T) {
	agg := newTestAggregator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload := samplePayload()
		payload.UserReactions = nil
		payload.AdminDetails = nil
		writePayload(t, w, payload)
	}), nil)

	require.NoError(t, agg.Load(context.Background()))
	assert.Equal(t, Own{}, agg.OwnReaction("2026-top-1"))
	assert.Nil(t, agg.Voters("2026-top-1"))
	assert.Equal(t, 12, agg.Summary("2026-top-1").Likes, "counts stay visible to anonymous viewers")
}

func TestToggleAppliesServerSnapshot(t *testing.T) {
	agg := newTestAggregator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			writePayload(t, w, samplePayload())
			return
		}

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "2026-top-1", body["game_id"])
		assert.Equal(t, "heart", body["reaction"])

		payload := samplePayload()
		payload.Summaries[0].Hearts = 5
		payload.UserReactions[0].Heart = true
		writePayload(t, w, payload)
	}), nil)

	require.NoError(t, agg.Load(context.Background()))
	require.NoError(t, agg.Toggle(context.Background(), "2026-top-1", api.ReactionHeart))

	assert.Equal(t, 5, agg.Summary("2026-top-1").Hearts)
	assert.True(t, agg.OwnReaction("2026-top-1").Has(api.ReactionHeart))
}

func TestToggleRejectsUnknownKind(t *testing.T) {
	var calls int32
	agg := newTestAggregator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}), nil)

	err := agg.Toggle(context.Background(), "2026-top-1", api.ReactionKind("applause"))
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
	assert.EqualValues(t, 0, atomic.LoadInt32(&calls))
}

func TestToggleRequiresSession(t *testing.T) {
	var calls int32
	server := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	client := api.NewClient(server.URL)
	agg, err := NewAggregator(client, "2026", nil, nil)
	require.NoError(t, err)

	err = agg.Toggle(context.Background(), "2026-top-1", api.ReactionLike)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeAuthRequired, errors.Code(err))
	assert.EqualValues(t, 0, atomic.LoadInt32(&calls), "anonymous toggles never reach the wire")
}

func TestToggleSuppressesDuplicateInFlight(t *testing.T) {
	release := make(chan struct{})
	var calls int32

	agg := newTestAggregator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		<-release
		writePayload(t, w, samplePayload())
	}), nil)

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- agg.Toggle(context.Background(), "2026-top-1", api.ReactionLike)
	}()

	// Wait for the first toggle to hit the (blocked) handler.
	waitFor(t, func() bool { return atomic.LoadInt32(&calls) == 1 })

	err := agg.Toggle(context.Background(), "2026-top-1", api.ReactionLike)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeReactionInFlight, errors.Code(err))

	close(release)
	require.NoError(t, <-firstDone)

	assert.EqualValues(t, 1, atomic.LoadInt32(&calls), "the duplicate must never reach the wire")

	// Once resolved, the pair is free again.
	require.NoError(t, agg.Toggle(context.Background(), "2026-top-1", api.ReactionLike))
}

func TestToggleDifferentPairsProceedIndependently(t *testing.T) {
	release := make(chan struct{})
	var calls int32

	agg := newTestAggregator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		<-release
		writePayload(t, w, samplePayload())
	}), nil)

	var wg sync.WaitGroup
	errs := make([]error, 3)
	for i, args := range []struct {
		gameID string
		kind   api.ReactionKind
	}{
		{"2026-top-1", api.ReactionLike},
		{"2026-top-1", api.ReactionHeart},
		{"2026-top-2", api.ReactionLike},
	} {
		wg.Add(1)
		go func(i int, gameID string, kind api.ReactionKind) {
			defer wg.Done()
			errs[i] = agg.Toggle(context.Background(), gameID, kind)
		}(i, args.gameID, args.kind)
	}

	waitFor(t, func() bool { return atomic.LoadInt32(&calls) == 3 })
	close(release)
	wg.Wait()

	for i, err := range errs {
		assert.NoError(t, err, "toggle %d", i)
	}
}

func TestResetDiscardsInFlightResponse(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})

	agg := newTestAggregator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case entered <- struct{}{}:
			<-release
		default:
		}
		writePayload(t, w, samplePayload())
	}), nil)

	done := make(chan error, 1)
	go func() {
		done <- agg.Load(context.Background())
	}()

	<-entered
	agg.Reset()
	close(release)

	require.NoError(t, <-done)

	assert.False(t, agg.Loaded(), "a snapshot from before the reset must not land")
	assert.Equal(t, Summary{}, agg.Summary("2026-top-1"))
	assert.Empty(t, agg.GameIDs())
}

func TestResetClearsState(t *testing.T) {
	agg := newTestAggregator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writePayload(t, w, samplePayload())
	}), func() bool { return true })

	require.NoError(t, agg.Load(context.Background()))
	require.NotEmpty(t, agg.Voters("2026-top-1"))

	agg.Reset()

	assert.False(t, agg.Loaded())
	assert.Equal(t, Own{}, agg.OwnReaction("2026-top-1"))
	assert.Nil(t, agg.Voters("2026-top-1"))

	// The aggregator stays usable after a reset.
	require.NoError(t, agg.Load(context.Background()))
	assert.True(t, agg.Loaded())
}

func TestVotersGatedByRole(t *testing.T) {
	allowed := false
	agg := newTestAggregator(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writePayload(t, w, samplePayload())
	}), func() bool { return allowed })

	require.NoError(t, agg.Load(context.Background()))

	assert.Nil(t, agg.Voters("2026-top-1"), "plain members never see the breakdown")

	allowed = true
	voters := agg.Voters("2026-top-1")
	require.Len(t, voters, 2)
	assert.Equal(t, "Marie", voters[0].UserPrenom)
	assert.Nil(t, agg.Voters("2026-top-2"), "games without voters report nil")
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	assert.Eventually(t, cond, waitTimeout, waitTick)
}
