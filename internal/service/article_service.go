package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/content-archive-api/internal/apperror"
	"github.com/content-archive-api/internal/auth"
	"github.com/content-archive-api/internal/category"
	"github.com/content-archive-api/internal/config"
	"github.com/content-archive-api/internal/content"
	"github.com/content-archive-api/internal/database"
	"github.com/content-archive-api/internal/identity"
	"github.com/content-archive-api/internal/models"
	"github.com/content-archive-api/internal/repository"
	"github.com/content-archive-api/internal/scraper"
	"github.com/content-archive-api/internal/slug"
	"github.com/content-archive-api/internal/urlnorm"
	"github.com/content-archive-api/internal/validation"
	"github.com/rs/zerolog"
)

// articleService is the concrete implementation of ArticleService
type articleService struct {
	repos     *repository.Repositories
	resolver  *identity.Resolver
	extractor *scraper.Extractor
	admins    *auth.AdminChecker
	cfg       *config.Config
	log       zerolog.Logger
}

func newArticleService(repos *repository.Repositories, resolver *identity.Resolver, extractor *scraper.Extractor, admins *auth.AdminChecker, cfg *config.Config, log zerolog.Logger) *articleService {
	return &articleService{
		repos:     repos,
		resolver:  resolver,
		extractor: extractor,
		admins:    admins,
		cfg:       cfg,
		log:       log.With().Str("service", "article").Logger(),
	}
}

// Import ingests one article: resolves preview media, cleans the body,
// classifies it, allocates a unique slug and persists the result. Media
// and classification are best-effort; only validation, slug exhaustion
// and storage failures abort the ingest.
func (s *articleService) Import(ctx context.Context, req *models.ImportRequest, caller *auth.Identity) (*models.Article, error) {
	publishedDate, err := validation.ParsePublishedDate(req.PublishedDate)
	if err != nil {
		return nil, apperror.Validation("published_date", "invalid ISO 8601 date format")
	}

	imageURL, mediaType := s.resolveMedia(ctx, req)

	body := content.StripMediaArtifacts(req.Content, imageURL)

	cat := req.Category
	if cat == "" {
		cat = category.Classify(req.Title, body, req.Subtitle)
	}

	desired := req.Slug
	if desired == "" {
		desired = slug.GenerateWithFallback(req.Title, "article")
	}
	allocated, err := slug.Allocate(ctx, desired, s.repos.Article.SlugExists)
	if err != nil {
		return nil, err
	}

	article := &models.Article{
		Title:         req.Title,
		Subtitle:      req.Subtitle,
		Slug:          allocated,
		Content:       body,
		ImageURL:      imageURL,
		MediaType:     mediaType,
		Author:        s.stampAuthor(req, caller),
		Category:      cat,
		PublishedDate: publishedDate,
	}

	if err := s.repos.Article.Insert(ctx, article); err != nil {
		if !database.IsUniqueViolation(err) {
			return nil, apperror.Persistence("insert article", err)
		}
		// The slug probe raced a concurrent insert. The unique index is
		// the source of truth, so allocate again and retry once.
		s.log.Warn().Str("slug", allocated).Msg("Slug conflict on insert, reallocating")
		allocated, err = slug.Allocate(ctx, desired, s.repos.Article.SlugExists)
		if err != nil {
			return nil, err
		}
		article.Slug = allocated
		if err := s.repos.Article.Insert(ctx, article); err != nil {
			return nil, apperror.Persistence("insert article", err)
		}
	}

	s.log.Info().
		Int64("article_id", article.ID).
		Str("slug", article.Slug).
		Str("category", article.Category).
		Msg("Article imported")

	return article, nil
}

// resolveMedia picks the preview image for an import. An explicit
// image_url wins; otherwise the source page is scraped; the configured
// placeholder covers everything else.
func (s *articleService) resolveMedia(ctx context.Context, req *models.ImportRequest) (string, models.MediaKind) {
	mediaType := models.MediaKind(req.MediaType)

	if req.ImageURL != "" {
		if mediaType == "" {
			mediaType = models.MediaKindImage
		}
		return urlnorm.StripSizeSuffix(urlnorm.Normalize(req.ImageURL)), mediaType
	}

	if req.SourceURL != "" {
		preview := s.extractor.ExtractPreview(ctx, req.SourceURL)
		if preview.URL != "" {
			if mediaType == "" {
				mediaType = preview.Kind
			}
			return urlnorm.StripSizeSuffix(preview.URL), mediaType
		}
		if mediaType == "" {
			mediaType = preview.Kind
		}
	}

	if mediaType == "" {
		mediaType = models.MediaKindImage
	}
	return s.cfg.Scrape.PlaceholderImage, mediaType
}

// stampAuthor records who authored the import. A signed-in caller
// always wins over whatever the payload claims.
func (s *articleService) stampAuthor(req *models.ImportRequest, caller *auth.Identity) string {
	if caller != nil && caller.ID != "" {
		return identity.SerializeAuthor(&models.Author{
			Name:      caller.Name,
			DiscordID: caller.ID,
			Image:     caller.Image,
		})
	}
	return req.Author
}

func (s *articleService) GetBySlug(ctx context.Context, slugValue string) (*ArticleDetail, error) {
	article, err := s.repos.Article.GetBySlug(ctx, slugValue)
	if err != nil {
		return nil, apperror.Persistence("get article", err)
	}
	if article == nil {
		return nil, apperror.NotFound("article", slugValue)
	}

	detail := &ArticleDetail{Article: article}
	detail.AuthorProfile = s.resolver.ResolveForArticle(ctx, article)
	detail.Sources = content.Process(article.Content).Sources
	return detail, nil
}

func (s *articleService) List(ctx context.Context, params models.ArticleListParams) ([]*models.Article, error) {
	var (
		articles []*models.Article
		err      error
	)
	if params.Query != "" {
		articles, err = s.repos.Article.Search(ctx, params.Query)
	} else {
		articles, err = s.repos.Article.List(ctx)
	}
	if err != nil {
		return nil, apperror.Persistence("list articles", err)
	}

	if params.Author != "" {
		articles = filterByAuthor(articles, params.Author)
	}
	return articles, nil
}

// filterByAuthor matches either the parsed author name or the provider
// subject id, so both legacy plain-string rows and structured rows are
// found.
func filterByAuthor(articles []*models.Article, wanted string) []*models.Article {
	filtered := make([]*models.Article, 0, len(articles))
	for _, article := range articles {
		author := identity.ParseAuthor(article.Author, "")
		if author == nil {
			continue
		}
		if author.Name == wanted || author.DiscordID == wanted {
			filtered = append(filtered, article)
		}
	}
	return filtered
}

func (s *articleService) Update(ctx context.Context, id int64, req *models.UpdateArticleRequest, caller *auth.Identity) (*models.Article, error) {
	article, err := s.repos.Article.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Persistence("get article", err)
	}
	if article == nil {
		return nil, apperror.NotFound("article", id)
	}
	if !s.canModify(article, caller) {
		return nil, apperror.Forbidden("not the article author")
	}

	if req.Title != nil {
		article.Title = *req.Title
	}
	if req.Subtitle != nil {
		article.Subtitle = *req.Subtitle
	}
	if req.Content != nil {
		article.Content = *req.Content
	}
	if req.ImageURL != nil {
		article.ImageURL = urlnorm.StripSizeSuffix(urlnorm.Normalize(*req.ImageURL))
	}
	if req.MediaType != nil {
		article.MediaType = models.MediaKind(*req.MediaType)
	}
	if req.Category != nil {
		article.Category = *req.Category
	}
	if req.PublishedDate != nil {
		published, err := validation.ParsePublishedDate(*req.PublishedDate)
		if err != nil {
			return nil, apperror.Validation("published_date", "invalid ISO 8601 date format")
		}
		article.PublishedDate = published
	}

	if err := s.repos.Article.Update(ctx, article); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("article", id)
		}
		return nil, apperror.Persistence("update article", err)
	}
	return article, nil
}

// Delete removes an article. A missing row is treated as success so
// repeated deletes stay idempotent.
func (s *articleService) Delete(ctx context.Context, id int64, caller *auth.Identity) error {
	article, err := s.repos.Article.GetByID(ctx, id)
	if err != nil {
		return apperror.Persistence("get article", err)
	}
	if article == nil {
		return nil
	}
	if !s.canModify(article, caller) {
		return apperror.Forbidden("not the article author")
	}
	if err := s.repos.Article.Delete(ctx, id); err != nil {
		return apperror.Persistence("delete article", err)
	}
	s.log.Info().Int64("article_id", id).Msg("Article deleted")
	return nil
}

// BulkDelete removes every listed article the caller may modify and
// reports how many rows went away. IDs the caller does not own are
// skipped rather than failing the whole batch.
func (s *articleService) BulkDelete(ctx context.Context, ids []int64, caller *auth.Identity) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	allowed := make([]int64, 0, len(ids))
	for _, id := range ids {
		article, err := s.repos.Article.GetByID(ctx, id)
		if err != nil {
			return 0, apperror.Persistence("get article", err)
		}
		if article == nil {
			continue
		}
		if s.canModify(article, caller) {
			allowed = append(allowed, id)
		}
	}
	if len(allowed) == 0 {
		return 0, nil
	}

	deleted, err := s.repos.Article.DeleteMany(ctx, allowed)
	if err != nil {
		return 0, apperror.Persistence("bulk delete articles", err)
	}
	s.log.Info().Int64("deleted", deleted).Int("requested", len(ids)).Msg("Articles bulk deleted")
	return deleted, nil
}

// canModify implements the ownership rule: admins may touch anything,
// authors may touch their own rows. Structured authors match on the
// provider subject id; legacy rows fall back to a name comparison.
func (s *articleService) canModify(article *models.Article, caller *auth.Identity) bool {
	if s.admins.IsAdmin(caller) {
		return true
	}
	if caller == nil {
		return false
	}
	author := identity.ParseAuthor(article.Author, "")
	if author == nil {
		return false
	}
	if author.DiscordID != "" {
		return author.DiscordID == caller.ID
	}
	return author.Name != "" && author.Name == caller.Name
}
