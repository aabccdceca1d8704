package session

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/sabhahq/sabha/internal/api"
	"github.com/sabhahq/sabha/internal/errors"
)

// persistedSession is the on-disk layout. Token and user live in one
// file so they can never survive independently of each other.
type persistedSession struct {
	Token string    `json:"token"`
	User  *api.User `json:"user,omitempty"`
}

func readSessionFile(path string) (persistedSession, error) {
	var persisted persistedSession

	data, err := os.ReadFile(path)
	if err != nil {
		return persisted, err
	}

	if err := json.Unmarshal(data, &persisted); err != nil {
		return persistedSession{}, errors.Wrap(errors.ErrCodeSessionCorrupt, "persisted session is not valid JSON", err)
	}

	return persisted, nil
}

func writeSessionFile(path string, persisted persistedSession) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return errors.Wrap(errors.ErrCodeSessionPersist, "failed to create session directory", err)
	}

	data, err := json.MarshalIndent(persisted, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeSessionPersist, "failed to encode session", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return errors.Wrap(errors.ErrCodeSessionPersist, "failed to write session file", err)
	}

	return nil
}

func removeSessionFile(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeSessionPersist, "failed to remove session file", err)
	}
	return nil
}
