package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/content-archive-api/internal/database"
	"github.com/content-archive-api/internal/models"
)

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	db *database.DB
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *database.DB) ArticleRepository {
	return &articleRepo{db: db}
}

const articleColumns = `id, title, subtitle, slug, content, image_url, media_type, author, category, published_date, created_at, updated_at`

// Insert persists a new article and assigns its store id
func (r *articleRepo) Insert(ctx context.Context, article *models.Article) error {
	query := `
		INSERT INTO articles (title, subtitle, slug, content, image_url, media_type, author, category, published_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query,
		article.Title, article.Subtitle, article.Slug, article.Content,
		article.ImageURL, article.MediaType, article.Author, article.Category,
		article.PublishedDate, now,
	).Scan(&article.ID, &article.CreatedAt, &article.UpdatedAt)
}

// Update rewrites the mutable fields of an existing article
func (r *articleRepo) Update(ctx context.Context, article *models.Article) error {
	query := `
		UPDATE articles
		SET title = $2, subtitle = $3, content = $4, image_url = $5,
		    media_type = $6, author = $7, category = $8, published_date = $9,
		    updated_at = $10
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query,
		article.ID, article.Title, article.Subtitle, article.Content,
		article.ImageURL, article.MediaType, article.Author, article.Category,
		article.PublishedDate, time.Now(),
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// GetByID retrieves an article by ID; nil means not found
func (r *articleRepo) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+articleColumns+` FROM articles WHERE id = $1`, id)
	return scanArticle(row)
}

// GetBySlug retrieves an article by slug; nil means not found
func (r *articleRepo) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+articleColumns+` FROM articles WHERE slug = $1`, slug)
	return scanArticle(row)
}

// SlugExists checks if an article with the given slug exists
func (r *articleRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM articles WHERE slug = $1)", slug).Scan(&exists)
	return exists, err
}

// List returns all articles ordered by published date descending
func (r *articleRepo) List(ctx context.Context) ([]*models.Article, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+articleColumns+` FROM articles ORDER BY published_date DESC NULLS LAST`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanArticles(rows)
}

// likeEscaper neutralizes LIKE metacharacters so user queries match
// literally. Backslash is the default ESCAPE character in Postgres.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Search performs a case-insensitive substring match across title,
// subtitle and content, newest published first. An empty query matches
// everything.
func (r *articleRepo) Search(ctx context.Context, query string) ([]*models.Article, error) {
	if query == "" {
		return r.List(ctx)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+articleColumns+` FROM articles
		WHERE title ILIKE '%' || $1 || '%'
		   OR subtitle ILIKE '%' || $1 || '%'
		   OR content ILIKE '%' || $1 || '%'
		ORDER BY published_date DESC NULLS LAST
	`, likeEscaper.Replace(query))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanArticles(rows)
}

// Delete removes an article by id. Deleting a missing row is not an
// error; the caller treats it as idempotent success.
func (r *articleRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM articles WHERE id = $1", id)
	return err
}

// DeleteMany removes the given ids and reports how many rows went away
func (r *articleRepo) DeleteMany(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res, err := r.db.ExecContext(ctx, "DELETE FROM articles WHERE id = ANY($1)", pq.Array(ids))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArticle(row rowScanner) (*models.Article, error) {
	var article models.Article
	var publishedDate sql.NullTime

	err := row.Scan(
		&article.ID, &article.Title, &article.Subtitle, &article.Slug,
		&article.Content, &article.ImageURL, &article.MediaType,
		&article.Author, &article.Category, &publishedDate,
		&article.CreatedAt, &article.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if publishedDate.Valid {
		article.PublishedDate = &publishedDate.Time
	}
	return &article, nil
}

func scanArticles(rows *sql.Rows) ([]*models.Article, error) {
	var articles []*models.Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}
