package drive

import (
	"context"
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
)

// scopes granted during authorization. Changing them invalidates cached tokens.
var scopes = []string{drive.DriveScope}

// oauthConfigFromFile reads the local client-secret descriptor consumed by
// the interactive authorization flow.
func oauthConfigFromFile(secretsPath string) (*oauth2.Config, error) {
	data, err := os.ReadFile(secretsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read client secret file %q: %w", secretsPath, err)
	}

	cfg, err := google.ConfigFromJSON(data, scopes...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse client secret file: %w", err)
	}
	return cfg, nil
}

// loadOrAuthorize returns a usable token: the cached one if still valid, a
// refreshed one if the cache holds a refresh token, or a freshly authorized
// one via the interactive flow. Refreshed and new tokens are re-persisted.
func loadOrAuthorize(
	ctx context.Context,
	cfg *oauth2.Config,
	tokens TokenStore,
) (*oauth2.Token, error) {
	cached, loadErr := tokens.Load()
	if loadErr == nil {
		if cached.Valid() {
			return cached, nil
		}
		if cached.RefreshToken != "" {
			refreshed, refreshErr := cfg.TokenSource(ctx, cached).Token()
			if refreshErr == nil {
				persist(tokens, refreshed)
				return refreshed, nil
			}
			logger.Warnf("Failed to refresh cached token: %v", refreshErr)
		}
	}

	token, err := authorizeInteractively(ctx, cfg)
	if err != nil {
		return nil, err
	}
	persist(tokens, token)
	return token, nil
}

// authorizeInteractively runs the installed-app flow: the user opens the
// authorization URL in a browser and pastes the resulting code. This is the
// only step that needs a human present.
func authorizeInteractively(ctx context.Context, cfg *oauth2.Config) (*oauth2.Token, error) {
	authURL := cfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Printf("Open the following link in your browser, then paste the authorization code:\n%v\n", authURL)

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		return nil, fmt.Errorf("failed to read authorization code: %w", err)
	}

	token, err := cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	return token, nil
}

func persist(tokens TokenStore, token *oauth2.Token) {
	if err := tokens.Save(token); err != nil {
		logger.Warnf("Failed to persist credentials: %v", err)
	}
}
