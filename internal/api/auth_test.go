package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
)

func TestLogin(t *testing.T) {
	server := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method: %s", r.Method)
		}

		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		if req.Email != "jo@binharry.fr" {
			t.Errorf("unexpected email: %s", req.Email)
		}
		if req.Password != "motdepasse" {
			t.Errorf("unexpected password: %s", req.Password)
		}

		writeSuccess(t, w, AuthResponse{
			Token: "fresh-token",
			User:  User{ID: 7, Email: req.Email, Nom: "Doe", Prenom: "Jo", Role: RoleUser, IsActive: 1},
		})
	}))

	client := NewClient(server.URL)

	auth, err := client.Login(context.Background(), "jo@binharry.fr", "motdepasse")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if auth.Token != "fresh-token" {
		t.Errorf("unexpected token: %s", auth.Token)
	}
	if auth.User.ID != 7 {
		t.Errorf("unexpected user id: %d", auth.User.ID)
	}

	// Login must not set the client token; the session layer owns that.
	if client.Token() != "" {
		t.Errorf("Login must not store the token on the client, got %q", client.Token())
	}
}

func TestRegister(t *testing.T) {
	server := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/register" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}

		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		if req.Nom != "Doe" || req.Prenom != "Jo" {
			t.Errorf("unexpected name fields: %s %s", req.Prenom, req.Nom)
		}

		writeSuccess(t, w, AuthResponse{
			Token: "register-token",
			User:  User{ID: 8, Email: req.Email, Nom: req.Nom, Prenom: req.Prenom, Role: RoleUser, IsActive: 1},
		})
	}))

	client := NewClient(server.URL)

	auth, err := client.Register(context.Background(), RegisterRequest{
		Email:    "jo@binharry.fr",
		Password: "motdepasse",
		Nom:      "Doe",
		Prenom:   "Jo",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if auth.Token != "register-token" {
		t.Errorf("unexpected token: %s", auth.Token)
	}
	if auth.User.Role != RoleUser {
		t.Errorf("unexpected role: %s", auth.User.Role)
	}
}

func TestRefreshTokenSendsCurrentBearer(t *testing.T) {
	server := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/refresh" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer persisted-token" {
			t.Errorf("refresh must carry the persisted token, got %q", got)
		}

		writeSuccess(t, w, AuthResponse{
			Token: "rotated-token",
			User:  User{ID: 7, Email: "jo@binharry.fr", Role: RoleUser, IsActive: 1},
		})
	}))

	client := NewClient(server.URL)
	client.SetToken("persisted-token")

	auth, err := client.RefreshToken(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if auth.Token != "rotated-token" {
		t.Errorf("unexpected token: %s", auth.Token)
	}
}

func TestVerifyEmail(t *testing.T) {
	server := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/verify-email" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("token"); got != "verif-abc" {
			t.Errorf("unexpected token param: %q", got)
		}
		writeSuccess(t, w, nil)
	}))

	client := NewClient(server.URL)

	if err := client.VerifyEmail(context.Background(), "verif-abc"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
