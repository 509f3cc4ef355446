package session

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/binharry/binharry-cli/internal/config"
	"github.com/binharry/binharry-cli/internal/errors"
)

// credentialsFileName is the fixed key under which the bearer token lives
const credentialsFileName = "auth.json"

// Credentials is the persisted session record
type Credentials struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

// CredentialsPath returns the location of the credentials file
func CredentialsPath() (string, error) {
	dir, err := config.Home()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, credentialsFileName), nil
}

// SaveCredentials persists the token to disk with owner-only permissions
func SaveCredentials(creds Credentials) error {
	path, err := CredentialsPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeSessionSave, "cannot create credentials directory", err)
	}

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeSessionSave, "cannot encode credentials", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return errors.Wrap(errors.ErrCodeSessionSave, "cannot write credentials file", err)
	}
	return nil
}

// LoadCredentials reads the persisted token. A missing file is not an
// error: it returns empty credentials and false.
func LoadCredentials() (Credentials, bool, error) {
	path, err := CredentialsPath()
	if err != nil {
		return Credentials{}, false, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Credentials{}, false, nil
	}
	if err != nil {
		return Credentials{}, false, errors.Wrap(errors.ErrCodeSessionLoad, "cannot read credentials file", err)
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return Credentials{}, false, errors.Wrap(errors.ErrCodeSessionLoad, "corrupt credentials file", err).
			WithSuggestion("Run 'binharry auth logout' to discard it")
	}

	if creds.Token == "" {
		return Credentials{}, false, nil
	}
	return creds, true, nil
}

// ClearCredentials removes the persisted token. Removing an absent file
// succeeds.
func ClearCredentials() error {
	path, err := CredentialsPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeSessionClear, "cannot remove credentials file", err)
	}
	return nil
}
