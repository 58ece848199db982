package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"youtube-summarizer/domain/model"
	"youtube-summarizer/domain/repository"
)

// TokenFileStore persists the AuthToken as JSON on disk. Deleting the file
// forces the next run into interactive login.
type TokenFileStore struct {
	path string
}

func NewTokenFileStore(path string) repository.ITokenStore {
	return &TokenFileStore{path: path}
}

// Load returns the stored token, or (nil, nil) when none exists yet.
func (s *TokenFileStore) Load() (*model.AuthToken, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read token cache %s: %w", s.path, err)
	}
	var token model.AuthToken
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("decode token cache %s: %w", s.path, err)
	}
	return &token, nil
}

func (s *TokenFileStore) Save(token *model.AuthToken) error {
	data, err := json.MarshalIndent(token, "", "  ")
	if err != nil {
		return fmt.Errorf("encode token: %w", err)
	}
	// 0600: the file holds live credentials
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write token cache %s: %w", s.path, err)
	}
	return nil
}

func (s *TokenFileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove token cache %s: %w", s.path, err)
	}
	return nil
}
