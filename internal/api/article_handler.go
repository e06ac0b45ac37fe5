package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/content-archive-api/internal/apperror"
	"github.com/content-archive-api/internal/auth"
	"github.com/content-archive-api/internal/config"
	"github.com/content-archive-api/internal/models"
	"github.com/content-archive-api/internal/service"
	"github.com/content-archive-api/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ArticleHandler handles article HTTP endpoints
type ArticleHandler struct {
	services  *service.Services
	validator *validation.Validator
	cfg       *config.Config
	log       zerolog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(services *service.Services, cfg *config.Config, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		services:  services,
		validator: validation.NewValidator(),
		cfg:       cfg,
		log:       log.With().Str("handler", "article").Logger(),
	}
}

// ImportArticle handles POST /v1/articles/import
func (h *ArticleHandler) ImportArticle(c *gin.Context) {
	var req models.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON payload"})
		return
	}

	if errs := h.validator.ValidateImport(&req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Validation failed",
			"details": errs,
		})
		return
	}

	article, err := h.services.Article.Import(c.Request.Context(), &req, auth.CurrentIdentity(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, article)
}

// ListArticles handles GET /v1/articles
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	var params models.ArticleListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	articles, err := h.services.Article.List(c.Request.Context(), params)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"articles": articles,
		"count":    len(articles),
	})
}

// SearchArticles handles GET /v1/search
func (h *ArticleHandler) SearchArticles(c *gin.Context) {
	// An empty query matches everything.
	query := c.Query("q")
	articles, err := h.services.Article.List(c.Request.Context(), models.ArticleListParams{Query: query})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"articles": articles,
		"count":    len(articles),
		"query":    query,
	})
}

// GetArticle handles GET /v1/articles/:slug
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	detail, err := h.services.Article.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// UpdateArticle handles PUT /v1/articles/:id
func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req models.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON payload"})
		return
	}

	if errs := h.validator.ValidateUpdate(&req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Validation failed",
			"details": errs,
		})
		return
	}

	article, err := h.services.Article.Update(c.Request.Context(), id, &req, auth.CurrentIdentity(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

// DeleteArticle handles DELETE /v1/articles/:id
func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.services.Article.Delete(c.Request.Context(), id, auth.CurrentIdentity(c)); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// BulkDeleteArticles handles POST /v1/articles/bulk-delete
func (h *ArticleHandler) BulkDeleteArticles(c *gin.Context) {
	var req models.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON payload"})
		return
	}
	if len(req.IDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ids must not be empty"})
		return
	}

	deleted, err := h.services.Article.BulkDelete(c.Request.Context(), req.IDs, auth.CurrentIdentity(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

func (h *ArticleHandler) parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article id"})
		return 0, false
	}
	return id, true
}

func (h *ArticleHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperror.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperror.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperror.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, apperror.ErrSlugExhausted):
		// Retrying with a different title is the caller's fix, so
		// this is a client error rather than a conflict.
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Msg("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
