package identity

import (
	"encoding/json"

	"github.com/content-archive-api/internal/models"
)

// unknownAuthorName is used when a structured payload carries no name.
const unknownAuthorName = "Unknown Author"

// ParseAuthor interprets a stored author field, which is either a legacy
// plain display name or a JSON payload with name, external subject id
// and cached avatar. It is total: malformed JSON degrades to the
// name-only interpretation, and it never fails. liveImage, when set,
// takes precedence over the payload's stored avatar.
func ParseAuthor(field string, liveImage string) *models.Author {
	if field == "" {
		return nil
	}

	var parsed models.Author
	if err := json.Unmarshal([]byte(field), &parsed); err != nil {
		return &models.Author{Name: field, Image: liveImage}
	}

	if parsed.Name == "" {
		parsed.Name = field
	}
	if liveImage != "" {
		parsed.Image = liveImage
	}
	return &parsed
}

// NormalizeAuthor applies the same field defaults to an author that
// arrived already structured rather than as a stored string.
func NormalizeAuthor(a models.Author, liveImage string) *models.Author {
	if a.Name == "" {
		a.Name = unknownAuthorName
	}
	if liveImage != "" {
		a.Image = liveImage
	}
	return &a
}

// SerializeAuthor is the inverse of ParseAuthor at the persistence
// boundary: the structured payload becomes JSON, a bare name stays a
// plain string so legacy rows and new rows read the same way.
func SerializeAuthor(a *models.Author) string {
	if a == nil {
		return ""
	}
	if a.DiscordID == "" && a.Image == "" {
		return a.Name
	}
	raw, err := json.Marshal(a)
	if err != nil {
		return a.Name
	}
	return string(raw)
}
