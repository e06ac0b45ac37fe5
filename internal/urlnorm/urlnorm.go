// Package urlnorm canonicalizes social-media URLs into the stable form
// used for deduplication and page fetching.
package urlnorm

import (
	"net/url"
	"regexp"
	"strings"
)

// Alternate front ends for the microblogging platform. All of them serve
// the same paths as the canonical host.
var mirrorHosts = map[string]string{
	"x.com":         "twitter.com",
	"www.x.com":     "twitter.com",
	"fxtwitter.com": "twitter.com",
	"vxtwitter.com": "twitter.com",
	"fixupx.com":    "twitter.com",
	"fixvx.com":     "twitter.com",
	"twittpr.com":   "twitter.com",
}

// sizeSuffixRegex matches the trailing CDN size-variant suffix, e.g.
// ".../abc.jpg:large". Only the suffix itself is stripped.
var sizeSuffixRegex = regexp.MustCompile(`:(large|medium|small|thumb|orig)$`)

// Normalize canonicalizes a social-media URL. It is total: unrecognized
// or unparsable input passes through unchanged.
func Normalize(raw string) string {
	if raw == "" {
		return raw
	}

	out := raw

	if host := hostOf(out); host != "" {
		if canonical, ok := mirrorHosts[host]; ok {
			out = rewriteHost(out, canonical)
		}
	}

	out = StripSizeSuffix(out)

	if isShortVideoHost(hostOf(out)) {
		out = stripQuery(out)
	}

	return out
}

// StripSizeSuffix removes a trailing CDN size-variant token
// (":large", ":orig", and so on) from an image or video URL.
func StripSizeSuffix(raw string) string {
	return sizeSuffixRegex.ReplaceAllString(raw, "")
}

// IsMicroblogHost reports whether host belongs to the microblogging
// platform (canonical host or one of its mirrors).
func IsMicroblogHost(host string) bool {
	host = strings.ToLower(host)
	if host == "twitter.com" || strings.HasSuffix(host, ".twitter.com") {
		return true
	}
	_, mirror := mirrorHosts[host]
	return mirror
}

// IsVideoHost reports whether host belongs to a video-centric platform,
// which determines the media kind of an extracted preview.
func IsVideoHost(host string) bool {
	return isShortVideoHost(host) || isLongVideoHost(host)
}

func isShortVideoHost(host string) bool {
	host = strings.ToLower(host)
	return host == "tiktok.com" || strings.HasSuffix(host, ".tiktok.com")
}

func isLongVideoHost(host string) bool {
	host = strings.ToLower(host)
	return host == "youtube.com" || strings.HasSuffix(host, ".youtube.com") || host == "youtu.be"
}

func hostOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Host)
}

func rewriteHost(raw, canonical string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	u.Host = canonical
	return u.String()
}

// stripQuery reduces a URL to scheme+host+path; a parse failure returns
// the input unchanged rather than failing.
func stripQuery(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u.String()
}
