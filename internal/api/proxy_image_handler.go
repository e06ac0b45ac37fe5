package api

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/content-archive-api/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// allowedProxyHosts limits the image proxy to the media CDN the archive
// actually links to. Anything else is rejected to keep this from
// becoming an open relay.
var allowedProxyHosts = map[string]bool{
	"pbs.twimg.com":   true,
	"video.twimg.com": true,
}

// ProxyImageHandler fetches CDN media server-side for clients the CDN
// refuses to serve directly.
type ProxyImageHandler struct {
	client    *http.Client
	userAgent string
	log       zerolog.Logger
}

// NewProxyImageHandler creates a new ProxyImageHandler
func NewProxyImageHandler(cfg *config.Config, log zerolog.Logger) *ProxyImageHandler {
	return &ProxyImageHandler{
		client:    &http.Client{Timeout: cfg.Scrape.Timeout},
		userAgent: cfg.Scrape.UserAgent,
		log:       log.With().Str("handler", "proxy_image").Logger(),
	}
}

// ProxyImage handles GET /v1/proxy-image
func (h *ProxyImageHandler) ProxyImage(c *gin.Context) {
	raw := c.Query("url")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url is required"})
		return
	}

	target, err := url.Parse(raw)
	if err != nil || !allowedProxyHosts[strings.ToLower(target.Host)] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url host not allowed"})
		return
	}

	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, target.String(), nil)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid url"})
		return
	}
	req.Header.Set("User-Agent", h.userAgent)
	req.Header.Set("Referer", "https://twitter.com/")

	resp, err := h.client.Do(req)
	if err != nil {
		h.log.Warn().Err(err).Str("url", target.String()).Msg("Upstream fetch failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "upstream fetch failed"})
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.JSON(http.StatusBadGateway, gin.H{"error": "upstream returned non-OK status"})
		return
	}

	c.Header("Cache-Control", "public, max-age=86400")
	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.DataFromReader(http.StatusOK, resp.ContentLength, contentType, resp.Body, nil)
}
