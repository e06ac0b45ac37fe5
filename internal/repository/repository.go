package repository

import (
	"context"

	"github.com/content-archive-api/internal/database"
	"github.com/content-archive-api/internal/models"
)

// ArticleRepository defines the interface for article data operations
type ArticleRepository interface {
	Insert(ctx context.Context, article *models.Article) error
	Update(ctx context.Context, article *models.Article) error
	GetByID(ctx context.Context, id int64) (*models.Article, error)
	GetBySlug(ctx context.Context, slug string) (*models.Article, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context) ([]*models.Article, error)
	Search(ctx context.Context, query string) ([]*models.Article, error)
	Delete(ctx context.Context, id int64) error
	DeleteMany(ctx context.Context, ids []int64) (int64, error)
}

// UserRepository defines the interface for the cached identity records
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	UpdateProfile(ctx context.Context, id, name, image string) error
}

// AccountRepository defines the interface for provider credential lookups
type AccountRepository interface {
	GetByUserAndProvider(ctx context.Context, userID, provider string) (*models.Account, error)
	GetByProviderAccount(ctx context.Context, provider, providerAccountID string) (*models.Account, error)
	UpdateTokens(ctx context.Context, provider, providerAccountID, accessToken, refreshToken string, expiresAt int64) error
}

// Repositories holds all repository interfaces
type Repositories struct {
	Article ArticleRepository
	User    UserRepository
	Account AccountRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Article: NewArticleRepo(db),
		User:    NewUserRepo(db),
		Account: NewAccountRepo(db),
	}
}
