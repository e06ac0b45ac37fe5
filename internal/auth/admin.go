package auth

import "github.com/content-archive-api/internal/config"

// AdminChecker answers whether a signed-in identity belongs to the
// configured admin allowlists.
type AdminChecker struct {
	discordIDs map[string]struct{}
	emails     map[string]struct{}
}

func NewAdminChecker(cfg config.AdminConfig) *AdminChecker {
	c := &AdminChecker{
		discordIDs: make(map[string]struct{}, len(cfg.DiscordIDs)),
		emails:     make(map[string]struct{}, len(cfg.Emails)),
	}
	for _, id := range cfg.DiscordIDs {
		c.discordIDs[id] = struct{}{}
	}
	for _, email := range cfg.Emails {
		c.emails[email] = struct{}{}
	}
	return c
}

// IsAdmin reports whether the identity is on either allowlist.
// Anonymous callers are never admins.
func (c *AdminChecker) IsAdmin(id *Identity) bool {
	if id == nil {
		return false
	}
	if _, ok := c.discordIDs[id.ID]; ok {
		return true
	}
	if id.Email != "" {
		if _, ok := c.emails[id.Email]; ok {
			return true
		}
	}
	return false
}
