package tokenstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// fileKey matches the key the browser dashboard used in local storage, so a
// file written by one panelauth consumer is readable by another.
const fileKey = "authToken"

// File persists the token as a small JSON document on disk with 0600
// permissions. Writes go through a temp file and rename so a crash mid-write
// never leaves a truncated document behind.
type File struct {
	mu   sync.Mutex
	path string
}

// NewFile creates a file-backed store at path. The parent directory is
// created on first Save.
func NewFile(path string) (*File, error) {
	if path == "" {
		return nil, fmt.Errorf("tokenstore: empty file path")
	}
	return &File{path: path}, nil
}

type fileDocument struct {
	AuthToken string `json:"authToken"`
}

// Load implements [Store].
func (f *File) Load(_ context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	raw, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("tokenstore: read %s: %w", f.path, err)
	}

	var doc fileDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		// A corrupt document is indistinguishable from "logged out".
		return "", ErrNotFound
	}
	if doc.AuthToken == "" {
		return "", ErrNotFound
	}
	return doc.AuthToken, nil
}

// Save implements [Store].
func (f *File) Save(_ context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	raw, err := json.Marshal(fileDocument{AuthToken: token})
	if err != nil {
		return fmt.Errorf("tokenstore: encode token: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("tokenstore: create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".authtoken-*")
	if err != nil {
		return fmt.Errorf("tokenstore: temp file: %w", err)
	}
	tmpName := tmp.Name()
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("tokenstore: chmod temp file: %w", err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("tokenstore: write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("tokenstore: close temp file: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("tokenstore: replace %s: %w", f.path, err)
	}
	return nil
}

// Clear implements [Store].
func (f *File) Clear(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	err := os.Remove(f.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("tokenstore: remove %s: %w", f.path, err)
	}
	return nil
}
