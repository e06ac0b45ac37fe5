package api

import (
	"errors"
	"net/http"

	"github.com/content-archive-api/internal/apperror"
	"github.com/content-archive-api/internal/auth"
	"github.com/content-archive-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ProfileHandler handles provider profile endpoints
type ProfileHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(services *service.Services, log zerolog.Logger) *ProfileHandler {
	return &ProfileHandler{
		services: services,
		log:      log.With().Str("handler", "profile").Logger(),
	}
}

// RefreshAvatar handles POST /v1/profile/refresh-avatar for the
// signed-in user.
func (h *ProfileHandler) RefreshAvatar(c *gin.Context) {
	caller := auth.CurrentIdentity(c)
	h.refresh(c, caller.ID)
}

// RefreshAvatarByID handles GET /v1/profile/refresh-avatar?userId=
func (h *ProfileHandler) RefreshAvatarByID(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}
	h.refresh(c, userID)
}

func (h *ProfileHandler) refresh(c *gin.Context, userID string) {
	profile, err := h.services.Profile.RefreshAvatar(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, apperror.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperror.ErrTokenRefreshFailed):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		default:
			h.log.Error().Err(err).Str("user_id", userID).Msg("Avatar refresh failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, profile)
}
