package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/binharry/binharry-cli/internal/session"
)

// LoginInput holds the values collected by the login form
type LoginInput struct {
	Email    string
	Password string
}

// RegisterInput holds the values collected by the registration form
type RegisterInput struct {
	Email    string
	Password string
	Nom      string
	Prenom   string
}

// ComposeInput holds the values collected by the message compose form
type ComposeInput struct {
	Sujet   string
	Contenu string
}

// ChangePasswordInput holds the values collected by the password change form
type ChangePasswordInput struct {
	Current string
	New     string
}

// RequiredValidator rejects empty or whitespace-only input
func RequiredValidator(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s est requis", field)
		}
		return nil
	}
}

// PasswordValidator enforces the minimum password length locally, before
// anything reaches the server
func PasswordValidator(s string) error {
	if len(s) < session.MinPasswordLength {
		return fmt.Errorf("le mot de passe doit faire au moins %d caractères", session.MinPasswordLength)
	}
	return nil
}

// MatchValidator rejects input that differs from the referenced value.
// The confirm-password field uses it; a mismatch never reaches the wire.
func MatchValidator(other *string) func(string) error {
	return func(s string) error {
		if s != *other {
			return fmt.Errorf("les mots de passe ne correspondent pas")
		}
		return nil
	}
}

// RunLoginForm collects login credentials interactively
func RunLoginForm() (LoginInput, error) {
	var in LoginInput

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Email").
			Placeholder("prenom.nom@example.com").
			Validate(RequiredValidator("email")).
			Value(&in.Email),
		huh.NewInput().
			Title("Mot de passe").
			EchoMode(huh.EchoModePassword).
			Validate(RequiredValidator("mot de passe")).
			Value(&in.Password),
	))

	if err := form.Run(); err != nil {
		return LoginInput{}, fmt.Errorf("prompt failed: %w", err)
	}
	return in, nil
}

// RunRegisterForm collects the registration fields, enforcing the password
// length and confirm-match locally
func RunRegisterForm() (RegisterInput, error) {
	var in RegisterInput
	var confirm string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Prénom").
				Validate(RequiredValidator("prénom")).
				Value(&in.Prenom),
			huh.NewInput().
				Title("Nom").
				Validate(RequiredValidator("nom")).
				Value(&in.Nom),
			huh.NewInput().
				Title("Email").
				Placeholder("prenom.nom@example.com").
				Validate(RequiredValidator("email")).
				Value(&in.Email),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Mot de passe").
				EchoMode(huh.EchoModePassword).
				Validate(PasswordValidator).
				Value(&in.Password),
			huh.NewInput().
				Title("Confirmer le mot de passe").
				EchoMode(huh.EchoModePassword).
				Validate(MatchValidator(&in.Password)).
				Value(&confirm),
		),
	)

	if err := form.Run(); err != nil {
		return RegisterInput{}, fmt.Errorf("prompt failed: %w", err)
	}
	return in, nil
}

// RunComposeForm collects the subject and body of a message
func RunComposeForm() (ComposeInput, error) {
	var in ComposeInput

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Sujet").
			Validate(RequiredValidator("sujet")).
			Value(&in.Sujet),
		huh.NewText().
			Title("Message").
			Validate(RequiredValidator("message")).
			Value(&in.Contenu),
	))

	if err := form.Run(); err != nil {
		return ComposeInput{}, fmt.Errorf("prompt failed: %w", err)
	}
	return in, nil
}

// RunChangePasswordForm collects the current and new password
func RunChangePasswordForm() (ChangePasswordInput, error) {
	var in ChangePasswordInput
	var confirm string

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Mot de passe actuel").
			EchoMode(huh.EchoModePassword).
			Validate(RequiredValidator("mot de passe actuel")).
			Value(&in.Current),
		huh.NewInput().
			Title("Nouveau mot de passe").
			EchoMode(huh.EchoModePassword).
			Validate(PasswordValidator).
			Value(&in.New),
		huh.NewInput().
			Title("Confirmer le nouveau mot de passe").
			EchoMode(huh.EchoModePassword).
			Validate(MatchValidator(&in.New)).
			Value(&confirm),
	))

	if err := form.Run(); err != nil {
		return ChangePasswordInput{}, fmt.Errorf("prompt failed: %w", err)
	}
	return in, nil
}
