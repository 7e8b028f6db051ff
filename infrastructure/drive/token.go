package drive

import (
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
)

// TokenStore persists OAuth2 credentials between runs so the interactive
// authorization flow only runs when no refreshable token is cached.
type TokenStore interface {
	// Load returns the cached token, or an error satisfying
	// errors.Is(err, os.ErrNotExist) when nothing is cached.
	Load() (*oauth2.Token, error)

	// Save replaces the cached token.
	Save(token *oauth2.Token) error
}

// FileTokenStore keeps the token as JSON in a single local file.
type FileTokenStore struct {
	path string
}

// NewFileTokenStore creates a store backed by the file at path.
func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

var _ TokenStore = (*FileTokenStore)(nil)

func (s *FileTokenStore) Load() (*oauth2.Token, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read token cache: %w", err)
	}

	var token oauth2.Token
	if err = json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("failed to parse token cache %q: %w", s.path, err)
	}
	return &token, nil
}

func (s *FileTokenStore) Save(token *oauth2.Token) error {
	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}

	// Token material is a secret; keep the cache owner-readable only.
	if err = os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write token cache %q: %w", s.path, err)
	}
	return nil
}
