package models

// Author is the logical identity embedded in an article's author column.
// The stored representation is either a plain legacy display name or a
// JSON payload carrying the name plus an optional provider subject id and
// a cached avatar URL.
type Author struct {
	Name      string `json:"name"`
	DiscordID string `json:"discord_id,omitempty"`
	Image     string `json:"image,omitempty"`
}

// HasSubject reports whether the author carries an external subject id
// that can be cross-referenced against the account store.
func (a *Author) HasSubject() bool {
	return a != nil && a.DiscordID != ""
}
