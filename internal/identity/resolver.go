package identity

import (
	"context"
	"errors"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"

	"github.com/content-archive-api/internal/apperror"
	"github.com/content-archive-api/internal/models"
	"github.com/content-archive-api/internal/repository"
)

// ProviderClient is the slice of the identity-provider API the resolver
// needs; DiscordClient is the production implementation.
type ProviderClient interface {
	FetchProfile(ctx context.Context, accessToken string) (*Profile, error)
	RefreshToken(ctx context.Context, refreshToken string) (*oauth2.Token, error)
	AvatarURL(userID, avatarHash string) string
}

// RefreshedProfile is the outcome of a successful profile refresh.
type RefreshedProfile struct {
	Name      string `json:"name"`
	AvatarURL string `json:"image"`
}

// refreshState drives the probe/refresh/retry sequence. Making the
// transitions explicit keeps the retry-once semantics testable.
type refreshState int

const (
	stateProbing refreshState = iota
	stateRefreshing
	stateRetrying
	stateDone
	stateFailed
)

type cachedAuthor struct {
	author    *models.Author
	fetchedAt time.Time
}

// Resolver turns stored author fields into live author identities. It
// owns the only externally-visible side effects of the core beyond the
// article record itself: refreshed tokens and cached profile fields are
// written back to the account store.
type Resolver struct {
	provider  ProviderClient
	users     repository.UserRepository
	accounts  repository.AccountRepository
	cache     *lru.Cache[string, cachedAuthor]
	group     singleflight.Group
	staleness time.Duration
	log       zerolog.Logger
}

// NewResolver creates a Resolver with a bounded author cache
func NewResolver(provider ProviderClient, users repository.UserRepository, accounts repository.AccountRepository, cacheSize int, staleness time.Duration, log zerolog.Logger) (*Resolver, error) {
	cache, err := lru.New[string, cachedAuthor](cacheSize)
	if err != nil {
		return nil, err
	}
	return &Resolver{
		provider:  provider,
		users:     users,
		accounts:  accounts,
		cache:     cache,
		staleness: staleness,
		log:       log.With().Str("component", "identity").Logger(),
	}, nil
}

// RefreshProfile probes the provider with the stored access token,
// refreshing it once if rejected, and persists any changed avatar or
// display name back to the cached user record. A user with no linked
// account yields apperror.ErrNotFound; any other failure yields
// apperror.ErrTokenRefreshFailed and leaves the record untouched.
func (r *Resolver) RefreshProfile(ctx context.Context, userID string) (*RefreshedProfile, error) {
	account, err := r.accounts.GetByUserAndProvider(ctx, userID, Provider)
	if err != nil {
		return nil, apperror.Persistence("loading account", err)
	}
	if account == nil || account.AccessToken == "" {
		return nil, apperror.NotFound("provider account", userID)
	}

	accessToken := account.AccessToken
	var profile *Profile
	var lastErr error

	state := stateProbing
	for state != stateDone && state != stateFailed {
		switch state {
		case stateProbing:
			profile, lastErr = r.provider.FetchProfile(ctx, accessToken)
			switch {
			case lastErr == nil:
				state = stateDone
			case errors.Is(lastErr, ErrUnauthorized) && account.RefreshToken != "":
				state = stateRefreshing
			default:
				state = stateFailed
			}

		case stateRefreshing:
			token, err := r.provider.RefreshToken(ctx, account.RefreshToken)
			if err != nil {
				lastErr = err
				state = stateFailed
				break
			}

			refreshToken := token.RefreshToken
			if refreshToken == "" {
				refreshToken = account.RefreshToken
			}
			if err := r.accounts.UpdateTokens(ctx, Provider, account.ProviderAccountID,
				token.AccessToken, refreshToken, token.Expiry.Unix()); err != nil {
				r.log.Error().Err(err).Str("user_id", userID).Msg("Failed to persist refreshed tokens")
			}

			accessToken = token.AccessToken
			state = stateRetrying

		case stateRetrying:
			profile, lastErr = r.provider.FetchProfile(ctx, accessToken)
			if lastErr == nil {
				state = stateDone
			} else {
				state = stateFailed
			}
		}
	}

	if state == stateFailed {
		return nil, apperror.TokenRefresh("could not obtain a usable token", lastErr)
	}

	refreshed := &RefreshedProfile{
		Name:      profile.DisplayName(),
		AvatarURL: r.provider.AvatarURL(profile.ID, profile.Avatar),
	}

	// Persist only when something actually changed.
	user, err := r.users.GetByID(ctx, userID)
	if err == nil && user != nil && (user.Name != refreshed.Name || user.Image != refreshed.AvatarURL) {
		if err := r.users.UpdateProfile(ctx, userID, refreshed.Name, refreshed.AvatarURL); err != nil {
			r.log.Error().Err(err).Str("user_id", userID).Msg("Failed to persist refreshed profile")
		}
	}

	return refreshed, nil
}

// ResolveForArticle parses an article's author field and, when it
// carries an external subject id, enriches it with the live avatar from
// the cached user record. Results are held in a bounded LRU keyed by
// slug; concurrent resolutions of the same slug collapse into one
// lookup. Serving a value one write behind is acceptable.
func (r *Resolver) ResolveForArticle(ctx context.Context, article *models.Article) *models.Author {
	author := ParseAuthor(article.Author, "")
	if !author.HasSubject() {
		return author
	}

	if cached, ok := r.cache.Get(article.Slug); ok && time.Since(cached.fetchedAt) < r.staleness {
		return cached.author
	}

	resolved, err, _ := r.group.Do(article.Slug, func() (any, error) {
		enriched := r.enrich(ctx, author)
		r.cache.Add(article.Slug, cachedAuthor{author: enriched, fetchedAt: time.Now()})
		return enriched, nil
	})
	if err != nil {
		return author
	}
	return resolved.(*models.Author)
}

// enrich overlays the stored author with the live profile of the linked
// account. Every failure degrades to the parsed author as stored; a
// stale cached profile triggers a background refresh whose errors are
// swallowed, leaving the cache stale rather than propagating.
func (r *Resolver) enrich(ctx context.Context, author *models.Author) *models.Author {
	account, err := r.accounts.GetByProviderAccount(ctx, Provider, author.DiscordID)
	if err != nil || account == nil {
		return author
	}

	user, err := r.users.GetByID(ctx, account.UserID)
	if err != nil || user == nil {
		return author
	}

	if time.Since(user.UpdatedAt) > r.staleness {
		userID := account.UserID
		go func() {
			refreshCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if _, err := r.RefreshProfile(refreshCtx, userID); err != nil {
				r.log.Debug().Err(err).Str("user_id", userID).Msg("Background profile refresh failed")
			}
		}()
	}

	enriched := *author
	if user.Image != "" {
		enriched.Image = user.Image
	}
	if user.Name != "" {
		enriched.Name = user.Name
	}
	return &enriched
}
