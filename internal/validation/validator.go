package validation

import (
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/content-archive-api/internal/models"
)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// Validator provides validation methods for incoming article payloads
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateImport validates an article import request
func (v *Validator) ValidateImport(req *models.ImportRequest) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(req.Title) == "" {
		errors = append(errors, ValidationError{Field: "title", Message: "title is required"})
	}

	if strings.TrimSpace(req.Content) == "" {
		errors = append(errors, ValidationError{Field: "content", Message: "content is required"})
	}

	if req.Slug == "" {
		errors = append(errors, ValidationError{Field: "slug", Message: "slug is required"})
	} else if !slugRegex.MatchString(req.Slug) {
		errors = append(errors, ValidationError{Field: "slug", Message: "slug must be kebab-case (lowercase letters, numbers, hyphens)", Value: req.Slug})
	}

	if req.MediaType != "" && req.MediaType != string(models.MediaKindImage) && req.MediaType != string(models.MediaKindVideo) {
		errors = append(errors, ValidationError{Field: "media_type", Message: "media_type must be one of: image, video", Value: req.MediaType})
	}

	if req.PublishedDate == "" {
		errors = append(errors, ValidationError{Field: "published_date", Message: "published_date is required"})
	} else if _, err := parseDate(req.PublishedDate); err != nil {
		errors = append(errors, ValidationError{Field: "published_date", Message: "invalid ISO 8601 date format", Value: req.PublishedDate})
	}

	if req.ImageURL != "" && !isValidURL(req.ImageURL) {
		errors = append(errors, ValidationError{Field: "image_url", Message: "invalid URL", Value: req.ImageURL})
	}

	if req.SourceURL != "" && !isValidURL(req.SourceURL) {
		errors = append(errors, ValidationError{Field: "source_url", Message: "invalid URL", Value: req.SourceURL})
	}

	return errors
}

// ValidateUpdate validates a partial article update
func (v *Validator) ValidateUpdate(req *models.UpdateArticleRequest) []ValidationError {
	var errors []ValidationError

	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		errors = append(errors, ValidationError{Field: "title", Message: "title must not be empty"})
	}

	if req.Content != nil && strings.TrimSpace(*req.Content) == "" {
		errors = append(errors, ValidationError{Field: "content", Message: "content must not be empty"})
	}

	if req.MediaType != nil && *req.MediaType != string(models.MediaKindImage) && *req.MediaType != string(models.MediaKindVideo) {
		errors = append(errors, ValidationError{Field: "media_type", Message: "media_type must be one of: image, video", Value: *req.MediaType})
	}

	if req.PublishedDate != nil && *req.PublishedDate != "" {
		if _, err := parseDate(*req.PublishedDate); err != nil {
			errors = append(errors, ValidationError{Field: "published_date", Message: "invalid ISO 8601 date format", Value: *req.PublishedDate})
		}
	}

	return errors
}

// ParsePublishedDate parses an incoming published date, accepting RFC3339
// timestamps and bare dates.
func ParsePublishedDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := parseDate(value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

func isValidURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}
