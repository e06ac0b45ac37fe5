package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/content-archive-api/internal/config"
)

// Provider is the name under which accounts are keyed in the store.
const Provider = "discord"

// ErrUnauthorized signals that the identity provider rejected the
// access token; the resolver reacts by attempting a refresh.
var ErrUnauthorized = errors.New("identity provider rejected token")

// Profile is the portion of the provider's /users/@me response we care
// about.
type Profile struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	GlobalName string `json:"global_name,omitempty"`
	Avatar     string `json:"avatar,omitempty"`
}

// DisplayName prefers the global display name over the raw username.
func (p *Profile) DisplayName() string {
	if p.GlobalName != "" {
		return p.GlobalName
	}
	return p.Username
}

// DiscordClient talks to the Discord HTTP API for profile probes and
// refresh-token grants.
type DiscordClient struct {
	apiBaseURL  string
	cdnBaseURL  string
	oauthConfig *oauth2.Config
	httpClient  *http.Client
}

// NewDiscordClient creates a client from the Discord config section
func NewDiscordClient(cfg config.DiscordConfig) *DiscordClient {
	return &DiscordClient{
		apiBaseURL: cfg.APIBaseURL,
		cdnBaseURL: cfg.CDNBaseURL,
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint: oauth2.Endpoint{
				TokenURL:  cfg.TokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// FetchProfile probes the provider's current-user endpoint with a bearer
// token. A 401/403 response maps to ErrUnauthorized so the caller can
// distinguish an expired token from a transport failure.
func (c *DiscordClient) FetchProfile(ctx context.Context, accessToken string) (*Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiBaseURL+"/users/@me", nil)
	if err != nil {
		return nil, fmt.Errorf("building profile request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling profile endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("profile endpoint returned status %d", resp.StatusCode)
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("decoding profile response: %w", err)
	}
	if profile.ID == "" {
		return nil, fmt.Errorf("profile response missing user id")
	}
	return &profile, nil
}

// RefreshToken exchanges a refresh token for a new access/refresh pair
// at the provider's token endpoint.
func (c *DiscordClient) RefreshToken(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	source := c.oauthConfig.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
	token, err := source.Token()
	if err != nil {
		return nil, fmt.Errorf("refresh grant: %w", err)
	}
	return token, nil
}

// AvatarURL builds the CDN avatar URL from a user id and avatar hash.
// An empty hash means the provider reports no avatar.
func (c *DiscordClient) AvatarURL(userID, avatarHash string) string {
	if avatarHash == "" {
		return ""
	}
	return fmt.Sprintf("%s/avatars/%s/%s.png", c.cdnBaseURL, userID, avatarHash)
}
