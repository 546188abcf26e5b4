package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/zalando/go-keyring"
)

const (
	keyringService = "agri-cli"
	keyringUser    = "bearer-token"
	fallbackFile   = ".session"
)

var (
	// fallbackMode indicates if we're using file-based storage (headless systems)
	fallbackMode    bool
	fallbackModeMu  sync.Mutex
	fallbackChecked bool
)

// checkKeyringAvailable tests if the system keyring is available
func checkKeyringAvailable() bool {
	fallbackModeMu.Lock()
	defer fallbackModeMu.Unlock()

	if fallbackChecked {
		return !fallbackMode
	}

	testKey := "agri-keyring-test"
	if err := keyring.Set(keyringService, testKey, "test"); err != nil {
		fallbackMode = true
		fallbackChecked = true
		return false
	}
	_ = keyring.Delete(keyringService, testKey)

	fallbackChecked = true
	return true
}

func fallbackPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDirName, fallbackFile), nil
}

// StoreToken saves the bearer credential in the system keyring, falling
// back to a file under ~/.agri on headless systems.
func StoreToken(token string) error {
	if checkKeyringAvailable() {
		if err := keyring.Set(keyringService, keyringUser, token); err != nil {
			return fmt.Errorf("failed to store token in keyring: %w", err)
		}
		return nil
	}

	path, err := fallbackPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(token), 0600)
}

// LoadToken returns the stored bearer credential, or "" when not logged in.
func LoadToken() (string, error) {
	if checkKeyringAvailable() {
		token, err := keyring.Get(keyringService, keyringUser)
		if err == keyring.ErrNotFound {
			return "", nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to read token from keyring: %w", err)
		}
		return token, nil
	}

	path, err := fallbackPath()
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return string(data), nil
}

// ClearToken removes the stored credential from both locations.
func ClearToken() error {
	if checkKeyringAvailable() {
		if err := keyring.Delete(keyringService, keyringUser); err != nil && err != keyring.ErrNotFound {
			return err
		}
	}

	path, err := fallbackPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
