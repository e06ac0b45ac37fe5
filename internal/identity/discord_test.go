package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/content-archive-api/internal/config"
)

func discordTestClient(apiURL string) *DiscordClient {
	return NewDiscordClient(config.DiscordConfig{
		ClientID:     "client",
		ClientSecret: "secret",
		APIBaseURL:   apiURL,
		TokenURL:     apiURL + "/oauth2/token",
		CDNBaseURL:   "https://cdn.discordapp.com",
		Timeout:      2 * time.Second,
	})
}

func TestFetchProfile_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/@me", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"42","username":"jane","global_name":"Jane","avatar":"abc"}`))
	}))
	t.Cleanup(srv.Close)

	profile, err := discordTestClient(srv.URL).FetchProfile(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "42", profile.ID)
	assert.Equal(t, "Jane", profile.DisplayName())
}

func TestFetchProfile_UnauthorizedStatuses(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))
		_, err := discordTestClient(srv.URL).FetchProfile(context.Background(), "expired")
		srv.Close()
		assert.ErrorIs(t, err, ErrUnauthorized, "status %d", status)
	}
}

func TestFetchProfile_ServerErrorIsNotUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	_, err := discordTestClient(srv.URL).FetchProfile(context.Background(), "tok")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnauthorized)
}

func TestFetchProfile_MissingID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"username":"jane"}`))
	}))
	t.Cleanup(srv.Close)

	_, err := discordTestClient(srv.URL).FetchProfile(context.Background(), "tok")
	assert.Error(t, err)
}

func TestRefreshToken_GrantExchange(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.Form.Get("grant_type"))
		assert.Equal(t, "old-refresh", r.Form.Get("refresh_token"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"new-access","refresh_token":"new-refresh","token_type":"Bearer","expires_in":3600}`))
	}))
	t.Cleanup(srv.Close)

	token, err := discordTestClient(srv.URL).RefreshToken(context.Background(), "old-refresh")
	require.NoError(t, err)
	assert.Equal(t, "new-access", token.AccessToken)
	assert.Equal(t, "new-refresh", token.RefreshToken)
	assert.True(t, token.Expiry.After(time.Now()))
}

func TestAvatarURL(t *testing.T) {
	c := discordTestClient("https://discord.example/api")
	assert.Equal(t, "https://cdn.discordapp.com/avatars/42/abc.png", c.AvatarURL("42", "abc"))
	assert.Equal(t, "", c.AvatarURL("42", ""))
}
