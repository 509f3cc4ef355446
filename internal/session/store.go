// Package session is the single source of truth for who the current actor
// is. It owns the bearer token and the user identity, persists them across
// runs, and guarantees the two are always set or cleared together.
package session

import (
	"context"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/binharry/binharry-cli/internal/api"
	"github.com/binharry/binharry-cli/internal/errors"
	"github.com/binharry/binharry-cli/internal/log"
)

// MinPasswordLength is the local minimum enforced before registration is
// sent to the server
const MinPasswordLength = 8

// Store owns the authentication state. All mutation goes through the
// login/register/refresh/logout/update operations; the gateway reads the
// token but never writes it.
type Store struct {
	client *api.Client
	logger *log.Logger

	mu    chan struct{} // buffered(1); held across the token+user replace
	token string
	user  *api.User

	refresh singleflight.Group
}

// NewStore creates a session store bound to the given gateway and registers
// the auth-rejection teardown hook: any call that comes back
// authentication-rejected clears the session, so dependent views observe
// "logged out" rather than a transient error.
func NewStore(client *api.Client, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.DefaultLogger()
	}
	s := &Store{
		client: client,
		logger: logger,
		mu:     make(chan struct{}, 1),
	}
	client.OnAuthRejected(s.teardown)
	return s
}

func (s *Store) lock()   { s.mu <- struct{}{} }
func (s *Store) unlock() { <-s.mu }

// IsAuthenticated reports whether a validated session is present
func (s *Store) IsAuthenticated() bool {
	s.lock()
	defer s.unlock()
	return s.token != "" && s.user != nil
}

// Token returns the current bearer token, or "" when anonymous
func (s *Store) Token() string {
	s.lock()
	defer s.unlock()
	return s.token
}

// CurrentUser returns a copy of the current user, or nil when anonymous
func (s *Store) CurrentUser() *api.User {
	s.lock()
	defer s.unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Role returns the current user's role, or RoleUser's zero value when
// anonymous
func (s *Store) Role() api.Role {
	s.lock()
	defer s.unlock()
	if s.user == nil {
		return ""
	}
	return s.user.Role
}

// CanSeeVoters reports whether the current viewer may see the per-user
// reaction breakdown
func (s *Store) CanSeeVoters() bool {
	return s.Role().CanSeeVoters()
}

// Login authenticates with the backend. On success token and user are
// replaced atomically and persisted; on failure prior state is untouched.
func (s *Store) Login(ctx context.Context, email, password string) (*api.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, errors.NewFieldRequiredError("email")
	}
	if password == "" {
		return nil, errors.NewFieldRequiredError("password")
	}

	auth, err := s.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	s.establish(auth)
	s.logger.Info("logged in", "email", auth.User.Email, "role", string(auth.User.Role))
	return s.CurrentUser(), nil
}

// Register creates an account and establishes a session (the backend logs
// the new user in as part of registration).
//
// Local validation: all fields non-empty and password at least
// MinPasswordLength characters. The confirm-password match is checked by
// the form layer before calling here; a mismatch never reaches the wire.
func (s *Store) Register(ctx context.Context, email, password, nom, prenom string) (*api.User, error) {
	email = strings.TrimSpace(email)
	switch {
	case email == "":
		return nil, errors.NewFieldRequiredError("email")
	case nom == "":
		return nil, errors.NewFieldRequiredError("nom")
	case prenom == "":
		return nil, errors.NewFieldRequiredError("prenom")
	case len(password) < MinPasswordLength:
		return nil, errors.NewPasswordTooShortError(MinPasswordLength)
	}

	auth, err := s.client.Register(ctx, api.RegisterRequest{
		Email:    email,
		Password: password,
		Nom:      nom,
		Prenom:   prenom,
	})
	if err != nil {
		return nil, err
	}

	s.establish(auth)
	s.logger.Info("registered", "email", auth.User.Email)
	return s.CurrentUser(), nil
}

// Logout clears the session unconditionally. It always succeeds; a failure
// to remove the persisted file is logged, not returned.
func (s *Store) Logout() {
	s.teardown()
	s.logger.Info("logged out")
}

// Refresh restores a persisted session by re-validating the stored token
// against the backend. Absence of a token leaves the store anonymous.
// A rejected or unreachable-but-invalid token behaves as logout: the store
// never keeps a session it could not verify. Connectivity errors are
// returned without establishing a session so the caller can distinguish
// "offline" from "logged out".
//
// Concurrent refreshes are collapsed into one backend call.
func (s *Store) Refresh(ctx context.Context) error {
	_, err, _ := s.refresh.Do("refresh", func() (any, error) {
		return nil, s.refreshOnce(ctx)
	})
	return err
}

func (s *Store) refreshOnce(ctx context.Context) error {
	creds, ok, err := LoadCredentials()
	if err != nil {
		// A corrupt file cannot be re-validated; fail safe.
		s.teardown()
		return err
	}
	if !ok {
		return nil
	}

	s.client.SetToken(creds.Token)

	auth, err := s.client.RefreshToken(ctx)
	if err != nil {
		if errors.IsConnectivity(err) {
			// Unverifiable, not rejected: drop the in-memory session but
			// keep the persisted token for the next attempt.
			s.clearMemory()
			return err
		}
		s.teardown()
		return err
	}

	s.establish(auth)
	s.logger.Debug("session restored", "email", auth.User.Email)
	return nil
}

// UpdateUser merges server-confirmed profile fields into the in-memory
// user record. It never touches the token and never fabricates a session:
// merging into an anonymous store is a no-op.
func (s *Store) UpdateUser(update api.ProfileUpdate) {
	s.lock()
	defer s.unlock()
	if s.user == nil {
		return
	}
	if update.Nom != nil {
		s.user.Nom = *update.Nom
	}
	if update.Prenom != nil {
		s.user.Prenom = *update.Prenom
	}
	if update.AvatarURL != nil {
		s.user.AvatarURL = update.AvatarURL
	}
}

// ReplaceUser swaps the in-memory user for a fresh server-confirmed record.
// The token is left untouched.
func (s *Store) ReplaceUser(user *api.User) {
	s.lock()
	defer s.unlock()
	if s.user == nil || user == nil {
		return
	}
	u := *user
	s.user = &u
}

// establish atomically replaces token and user together and persists the
// token.
func (s *Store) establish(auth *api.AuthResponse) {
	s.lock()
	user := auth.User
	s.token = auth.Token
	s.user = &user
	s.unlock()

	s.client.SetToken(auth.Token)

	if err := SaveCredentials(Credentials{Token: auth.Token, Email: auth.User.Email}); err != nil {
		s.logger.Warn("failed to persist credentials", "error", err.Error())
	}
}

// clearMemory drops the in-memory session but keeps the persisted file
func (s *Store) clearMemory() {
	s.lock()
	s.token = ""
	s.user = nil
	s.unlock()
	s.client.ClearToken()
}

// teardown clears everything: memory, gateway token, persisted file
func (s *Store) teardown() {
	s.clearMemory()
	if err := ClearCredentials(); err != nil {
		s.logger.Warn("failed to clear credentials", "error", err.Error())
	}
}
