package models

import (
	"time"
)

// MediaKind classifies the preview media attached to an article.
type MediaKind string

const (
	MediaKindImage MediaKind = "image"
	MediaKindVideo MediaKind = "video"
)

// Article represents a persisted article in the archive
type Article struct {
	ID            int64      `json:"id" db:"id"`
	Title         string     `json:"title" db:"title"`
	Subtitle      string     `json:"subtitle,omitempty" db:"subtitle"`
	Slug          string     `json:"slug" db:"slug"`
	Content       string     `json:"content" db:"content"`
	ImageURL      string     `json:"image_url,omitempty" db:"image_url"`
	MediaType     MediaKind  `json:"media_type,omitempty" db:"media_type"`
	Author        string     `json:"author" db:"author"`
	Category      string     `json:"category" db:"category"`
	PublishedDate *time.Time `json:"published_date,omitempty" db:"published_date"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

// Published reports whether the article has a publication timestamp.
// Absence means the article is an unpublished draft.
func (a *Article) Published() bool {
	return a.PublishedDate != nil
}

// ImportRequest is the inbound payload accepted by POST /v1/articles/import
type ImportRequest struct {
	Title         string `json:"title"`
	Subtitle      string `json:"subtitle,omitempty"`
	Content       string `json:"content"`
	ImageURL      string `json:"image_url,omitempty"`
	SourceURL     string `json:"source_url,omitempty"`
	MediaType     string `json:"media_type,omitempty"`
	Author        string `json:"author,omitempty"`
	Category      string `json:"category,omitempty"`
	PublishedDate string `json:"published_date"`
	Slug          string `json:"slug"`
}

// UpdateArticleRequest carries the mutable fields for PUT /v1/articles/:id.
// Nil pointers mean "leave unchanged"; id and slug are immutable.
type UpdateArticleRequest struct {
	Title         *string `json:"title,omitempty"`
	Subtitle      *string `json:"subtitle,omitempty"`
	Content       *string `json:"content,omitempty"`
	ImageURL      *string `json:"image_url,omitempty"`
	MediaType     *string `json:"media_type,omitempty"`
	Category      *string `json:"category,omitempty"`
	PublishedDate *string `json:"published_date,omitempty"`
}

// BulkDeleteRequest is the payload for POST /v1/articles/bulk-delete
type BulkDeleteRequest struct {
	IDs []int64 `json:"ids"`
}

// ArticleListParams holds query parameters for article listings
type ArticleListParams struct {
	Author string `form:"author"`
	Query  string `form:"q"`
}
