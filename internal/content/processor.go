// Package content cleans article body text for display and pulls the
// embedded URLs out as citable sources.
package content

import (
	"net/url"
	"regexp"
	"strings"
)

// Source is a link extracted from an article body, titled by hostname.
type Source struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

// Processed is the display form of an article body.
type Processed struct {
	Content         string   `json:"content"`
	Sources         []Source `json:"sources"`
	HasValidContent bool     `json:"has_valid_content"`
}

var (
	urlRegex          = regexp.MustCompile(`https?://\S+`)
	boldRegex         = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	blankLinesRegex   = regexp.MustCompile(`\n\s*\n`)
	trailingPunctCut  = regexp.MustCompile(`[.,;:!?'")\]]+$`)
	discordCDNDomains = []string{"cdn.discordapp.com", "media.discordapp.net"}
)

// Process extracts sources from the raw body, strips bold markdown and
// embedded URLs, and collapses leftover blank lines.
func Process(raw string) Processed {
	var sources []Source
	seen := make(map[string]bool)

	for _, match := range urlRegex.FindAllString(raw, -1) {
		clean := trailingPunctCut.ReplaceAllString(match, "")
		if clean == "" || seen[clean] {
			continue
		}
		seen[clean] = true
		sources = append(sources, Source{URL: clean, Title: sourceTitle(clean)})
	}

	cleaned := boldRegex.ReplaceAllString(raw, "$1")
	cleaned = strings.TrimSpace(urlRegex.ReplaceAllString(cleaned, ""))
	cleaned = blankLinesRegex.ReplaceAllString(cleaned, "\n\n")

	return Processed{
		Content:         cleaned,
		Sources:         sources,
		HasValidContent: len(cleaned) > 0,
	}
}

// StripMediaArtifacts removes upload artifacts from a body: exact
// occurrences of the resolved preview URL and any link pointing at the
// identity provider's media CDN. These are not citable sources.
func StripMediaArtifacts(body, previewURL string) string {
	if previewURL != "" {
		body = strings.ReplaceAll(body, previewURL, "")
	}

	body = urlRegex.ReplaceAllStringFunc(body, func(match string) string {
		clean := trailingPunctCut.ReplaceAllString(match, "")
		if isDiscordCDN(clean) {
			return ""
		}
		return match
	})

	body = blankLinesRegex.ReplaceAllString(body, "\n\n")
	return strings.TrimSpace(body)
}

func isDiscordCDN(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	host := strings.ToLower(u.Host)
	for _, domain := range discordCDNDomains {
		if host == domain {
			return true
		}
	}
	return false
}

func sourceTitle(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	return strings.TrimPrefix(u.Host, "www.")
}
