package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"golang.org/x/net/html"

	"github.com/content-archive-api/internal/models"
)

func newTestExtractor() *Extractor {
	cfg := DefaultConfig()
	cfg.Timeout = 2 * time.Second
	return New(cfg, zerolog.Nop())
}

func servePage(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestExtractPreview_OGImage(t *testing.T) {
	srv := servePage(t, `<html><head>
		<meta property="og:image" content="https://cdn.example/pic.jpg" />
		<meta name="twitter:image" content="https://cdn.example/other.jpg" />
	</head><body></body></html>`)

	preview := newTestExtractor().ExtractPreview(context.Background(), srv.URL)
	assert.Equal(t, "https://cdn.example/pic.jpg", preview.URL)
	assert.Equal(t, models.MediaKindImage, preview.Kind)
}

func TestExtractPreview_TwitterImageFallback(t *testing.T) {
	srv := servePage(t, `<html><head>
		<meta name="twitter:image" content="https://cdn.example/card.jpg" />
	</head><body></body></html>`)

	preview := newTestExtractor().ExtractPreview(context.Background(), srv.URL)
	assert.Equal(t, "https://cdn.example/card.jpg", preview.URL)
}

func TestExtractPreview_SendsBrowserUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte("<html></html>"))
	}))
	t.Cleanup(srv.Close)

	newTestExtractor().ExtractPreview(context.Background(), srv.URL)
	assert.Contains(t, gotUA, "Mozilla/5.0")
}

func TestExtractPreview_Non200YieldsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	preview := newTestExtractor().ExtractPreview(context.Background(), srv.URL)
	assert.Empty(t, preview.URL)
}

func TestExtractPreview_UnreachableYieldsEmpty(t *testing.T) {
	preview := newTestExtractor().ExtractPreview(context.Background(), "http://127.0.0.1:1/nothing")
	assert.Empty(t, preview.URL)
	assert.Equal(t, models.MediaKindImage, preview.Kind)
}

func TestExtractPreview_VideoHostKind(t *testing.T) {
	// The fetch fails, but the kind still reflects the source host.
	preview := newTestExtractor().ExtractPreview(context.Background(), "https://www.tiktok.com/@user/video/1")
	assert.Equal(t, models.MediaKindVideo, preview.Kind)
}

func TestPickPreviewURL_MicroblogOnlyOGImage(t *testing.T) {
	meta := map[string]string{
		"og:image":      "https://pbs.twimg.com/media/abc.jpg:large",
		"twitter:image": "https://pbs.twimg.com/media/ignored.jpg",
	}
	got := pickPreviewURL("twitter.com", meta)
	assert.Equal(t, "https://pbs.twimg.com/media/abc.jpg", got)

	// twitter:image is not consulted on the microblog host.
	got = pickPreviewURL("twitter.com", map[string]string{"twitter:image": "https://pbs.twimg.com/media/x.jpg"})
	assert.Empty(t, got)
}

func TestPickPreviewURL_TikTokPoster(t *testing.T) {
	meta := map[string]string{"og:video:poster": "https://cdn.tiktok.example/poster.jpg"}
	got := pickPreviewURL("www.tiktok.com", meta)
	assert.Equal(t, "https://cdn.tiktok.example/poster.jpg", got)

	// The poster is a short-video-platform fallback only.
	assert.Empty(t, pickPreviewURL("example.com", meta))
}

func TestCollectMeta_FirstValueWins(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(`<html><head>
		<meta property="og:image" content="first.jpg" />
		<meta property="og:image" content="second.jpg" />
		<meta property="empty" content="" />
	</head></html>`))
	assert.NoError(t, err)

	meta := collectMeta(doc)
	assert.Equal(t, "first.jpg", meta["og:image"])
	_, ok := meta["empty"]
	assert.False(t, ok)
}
