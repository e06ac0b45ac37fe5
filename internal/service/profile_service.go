package service

import (
	"context"

	"github.com/content-archive-api/internal/identity"
	"github.com/rs/zerolog"
)

// profileService is the concrete implementation of ProfileService
type profileService struct {
	resolver *identity.Resolver
	log      zerolog.Logger
}

func newProfileService(resolver *identity.Resolver, log zerolog.Logger) *profileService {
	return &profileService{
		resolver: resolver,
		log:      log.With().Str("service", "profile").Logger(),
	}
}

// RefreshAvatar re-reads the provider profile for a user and returns
// the current display name and avatar URL.
func (s *profileService) RefreshAvatar(ctx context.Context, userID string) (*identity.RefreshedProfile, error) {
	profile, err := s.resolver.RefreshProfile(ctx, userID)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("Profile refresh failed")
		return nil, err
	}
	s.log.Info().Str("user_id", userID).Msg("Profile refreshed")
	return profile, nil
}
