package cli

import (
	"errors"
	"mediconnect-portal/internal/app/config"
	"mediconnect-portal/internal/pkg/constvars"
	"os"
	"path/filepath"
	"strings"
)

// SessionFile keeps the portal session id between CLI invocations.
type SessionFile struct {
	Path string
}

func NewSessionFile(internalConfig *config.InternalConfig) (*SessionFile, error) {
	if internalConfig.Session.CLISessionFile != "" {
		return &SessionFile{Path: internalConfig.Session.CLISessionFile}, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return &SessionFile{Path: filepath.Join(home, constvars.CLISessionDir, constvars.CLISessionFileName)}, nil
}

// Load returns "" when nobody is logged in.
func (f *SessionFile) Load() (string, error) {
	raw, err := os.ReadFile(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}

func (f *SessionFile) Save(sessionID string) error {
	err := os.MkdirAll(filepath.Dir(f.Path), 0o700)
	if err != nil {
		return err
	}
	return os.WriteFile(f.Path, []byte(sessionID+"\n"), 0o600)
}

func (f *SessionFile) Clear() error {
	err := os.Remove(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
