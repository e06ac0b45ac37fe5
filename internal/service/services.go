package service

import (
	"context"

	"github.com/content-archive-api/internal/auth"
	"github.com/content-archive-api/internal/config"
	"github.com/content-archive-api/internal/content"
	"github.com/content-archive-api/internal/identity"
	"github.com/content-archive-api/internal/models"
	"github.com/content-archive-api/internal/repository"
	"github.com/content-archive-api/internal/scraper"
	"github.com/rs/zerolog"
)

// ArticleDetail is an article enriched for display: resolved author
// profile plus the source links referenced by the body.
type ArticleDetail struct {
	*models.Article
	AuthorProfile *models.Author   `json:"author_profile,omitempty"`
	Sources       []content.Source `json:"sources,omitempty"`
}

// ArticleService defines the interface for article operations
type ArticleService interface {
	Import(ctx context.Context, req *models.ImportRequest, caller *auth.Identity) (*models.Article, error)
	GetBySlug(ctx context.Context, slug string) (*ArticleDetail, error)
	List(ctx context.Context, params models.ArticleListParams) ([]*models.Article, error)
	Update(ctx context.Context, id int64, req *models.UpdateArticleRequest, caller *auth.Identity) (*models.Article, error)
	Delete(ctx context.Context, id int64, caller *auth.Identity) error
	BulkDelete(ctx context.Context, ids []int64, caller *auth.Identity) (int64, error)
}

// ProfileService defines the interface for provider profile operations
type ProfileService interface {
	RefreshAvatar(ctx context.Context, userID string) (*identity.RefreshedProfile, error)
}

// Services holds all service interfaces
type Services struct {
	Article ArticleService
	Profile ProfileService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, resolver *identity.Resolver, extractor *scraper.Extractor, admins *auth.AdminChecker, cfg *config.Config, log zerolog.Logger) *Services {
	return &Services{
		Article: newArticleService(repos, resolver, extractor, admins, cfg, log),
		Profile: newProfileService(resolver, log),
	}
}
