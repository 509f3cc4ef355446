package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findCommand(t *testing.T, parent *cobra.Command, name string) *cobra.Command {
	t.Helper()
	for _, c := range parent.Commands() {
		if c.Name() == name {
			return c
		}
	}
	t.Fatalf("command %q not registered under %q", name, parent.Name())
	return nil
}

func TestCommandTree(t *testing.T) {
	topLevel := []string{
		"auth", "profile", "mailbox", "subscriptions",
		"admin", "members", "bde", "annonces",
		"gamejam", "boutique", "version",
	}
	for _, name := range topLevel {
		findCommand(t, rootCmd, name)
	}
}

func TestAuthSubcommands(t *testing.T) {
	auth := findCommand(t, rootCmd, "auth")
	for _, name := range []string{"login", "register", "logout", "status", "verify-email"} {
		findCommand(t, auth, name)
	}

	login := findCommand(t, auth, "login")
	assert.NotNil(t, login.Flags().Lookup("email"))
	assert.NotNil(t, login.Flags().Lookup("password"))
}

func TestAdminSubcommands(t *testing.T) {
	admin := findCommand(t, rootCmd, "admin")
	users := findCommand(t, admin, "users")
	for _, name := range []string{"list", "show", "update", "delete", "adhesion", "delete-avatar"} {
		findCommand(t, users, name)
	}

	subs := findCommand(t, admin, "subscriptions")
	for _, name := range []string{"list", "create", "update", "delete"} {
		findCommand(t, subs, name)
	}

	findCommand(t, admin, "broadcast")
	findCommand(t, admin, "stats")

	del := findCommand(t, users, "delete")
	assert.NotNil(t, del.Flags().Lookup("permanent"))
}

func TestGamejamSubcommands(t *testing.T) {
	gj := findCommand(t, rootCmd, "gamejam")
	for _, name := range []string{"editions", "games", "reactions", "react"} {
		findCommand(t, gj, name)
	}
}

func TestGlobalFlags(t *testing.T) {
	for _, name := range []string{"api-url", "output", "no-color", "verbose"} {
		require.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
}

func TestResolveEdition(t *testing.T) {
	edition, err := resolveEdition(nil)
	require.NoError(t, err)
	assert.Equal(t, "2026", edition.Year)

	edition, err = resolveEdition([]string{"2026"})
	require.NoError(t, err)
	assert.Equal(t, "2026", edition.Year)

	_, err = resolveEdition([]string{"1999"})
	assert.Error(t, err)
}

func TestParseID(t *testing.T) {
	id, err := parseID("42", "user")
	require.NoError(t, err)
	assert.EqualValues(t, 42, id)

	_, err = parseID("abc", "user")
	assert.Error(t, err)

	_, err = parseID("-3", "user")
	assert.Error(t, err)
}
