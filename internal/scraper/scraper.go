// Package scraper extracts a representative preview image or video URL
// from a social-media page by scanning its markup for meta tags.
package scraper

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/net/html"

	"github.com/content-archive-api/internal/models"
	"github.com/content-archive-api/internal/urlnorm"
)

// Config contains extractor configuration
type Config struct {
	Timeout   time.Duration
	UserAgent string
}

// DefaultConfig returns default extractor configuration
func DefaultConfig() Config {
	return Config{
		Timeout:   8 * time.Second,
		UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	}
}

// PreviewMedia is the result of an extraction attempt. URL is empty when
// nothing usable was found; Kind is meaningful only when URL is set.
type PreviewMedia struct {
	URL  string
	Kind models.MediaKind
}

// Extractor fetches pages and pulls preview media out of their markup
type Extractor struct {
	config     Config
	httpClient *http.Client
	log        zerolog.Logger
}

// New creates a new Extractor instance
func New(config Config, log zerolog.Logger) *Extractor {
	return &Extractor{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		log: log.With().Str("component", "scraper").Logger(),
	}
}

// ExtractPreview resolves the preview media for a source URL. It is
// best-effort: network failures, non-200 responses and pages without a
// usable tag all yield an empty URL, never an error. The media kind is
// derived from the source host regardless of extraction success.
func (e *Extractor) ExtractPreview(ctx context.Context, sourceURL string) PreviewMedia {
	normalized := urlnorm.Normalize(sourceURL)

	result := PreviewMedia{Kind: models.MediaKindImage}
	host := ""
	if u, err := url.Parse(normalized); err == nil {
		host = strings.ToLower(u.Host)
	}
	if urlnorm.IsVideoHost(host) {
		result.Kind = models.MediaKindVideo
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, normalized, nil)
	if err != nil {
		e.log.Debug().Str("url", sourceURL).Err(err).Msg("Invalid source URL")
		return result
	}
	req.Header.Set("User-Agent", e.config.UserAgent)

	resp, err := e.httpClient.Do(req)
	if err != nil {
		e.log.Debug().Str("url", normalized).Err(err).Msg("Preview fetch failed")
		return result
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		e.log.Debug().Str("url", normalized).Int("status", resp.StatusCode).Msg("Preview fetch returned non-200")
		return result
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		e.log.Debug().Str("url", normalized).Err(err).Msg("Failed to parse markup")
		return result
	}

	meta := collectMeta(doc)
	result.URL = pickPreviewURL(host, meta)
	return result
}

// pickPreviewURL applies the platform-specific fallback chain.
// The microblogging platform consults only og:image, and its result goes
// back through CDN size-suffix stripping; everywhere else the chain is
// og:image, then twitter:image, then (short-video platforms only) the
// og:video poster.
func pickPreviewURL(host string, meta map[string]string) string {
	if urlnorm.IsMicroblogHost(host) {
		return urlnorm.StripSizeSuffix(meta["og:image"])
	}

	if v := meta["og:image"]; v != "" {
		return v
	}
	if v := meta["twitter:image"]; v != "" {
		return v
	}
	if isTikTok(host) {
		if v := meta["og:video:poster"]; v != "" {
			return v
		}
	}
	return ""
}

func isTikTok(host string) bool {
	return host == "tiktok.com" || strings.HasSuffix(host, ".tiktok.com")
}

// collectMeta walks the parsed document and gathers meta tag content by
// property/name attribute.
func collectMeta(doc *html.Node) map[string]string {
	meta := make(map[string]string)

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "meta" {
			var key, content string
			for _, attr := range n.Attr {
				switch attr.Key {
				case "property", "name":
					key = strings.ToLower(attr.Val)
				case "content":
					content = attr.Val
				}
			}
			if key != "" && content != "" {
				if _, seen := meta[key]; !seen {
					meta[key] = content
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return meta
}
