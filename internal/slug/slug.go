// Package slug generates URL-safe article identifiers and allocates
// unique ones against the persistence layer.
package slug

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/content-archive-api/internal/apperror"
)

// MaxAttempts is the inclusive upper bound on numeric suffixes tried
// before allocation gives up.
const MaxAttempts = 100

const maxLength = 100

var (
	nonAlnumRegex = regexp.MustCompile(`[^a-z0-9-]+`)
	hyphenRegex   = regexp.MustCompile(`-+`)
)

// Generate creates a URL-friendly slug from a string
func Generate(s string) string {
	if s == "" {
		return ""
	}

	s = strings.ToLower(s)
	s = transliterate(s)

	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "_", "-")

	s = nonAlnumRegex.ReplaceAllString(s, "")
	s = hyphenRegex.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if len(s) > maxLength {
		s = s[:maxLength]
		s = strings.TrimRight(s, "-")
	}

	return s
}

// GenerateWithFallback generates a slug, falling back to a default if the
// input produces an empty slug
func GenerateWithFallback(s, fallback string) string {
	if out := Generate(s); out != "" {
		return out
	}
	return Generate(fallback)
}

// transliterate decomposes unicode characters and drops combining marks,
// reducing accented characters to their ASCII base.
func transliterate(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}

// ExistsFunc probes the store for a slug. It is consulted before insert
// as an optimization only; the store's unique constraint remains the
// authority under concurrent writers.
type ExistsFunc func(ctx context.Context, slug string) (bool, error)

// Allocate returns desired if free, otherwise the first free candidate
// among desired-1 through desired-100. Exhausting the suffix space yields
// apperror.ErrSlugExhausted; probe failures surface as persistence errors.
func Allocate(ctx context.Context, desired string, exists ExistsFunc) (string, error) {
	for attempt := 0; attempt <= MaxAttempts; attempt++ {
		candidate := desired
		if attempt > 0 {
			candidate = fmt.Sprintf("%s-%d", desired, attempt)
		}

		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", apperror.Persistence("probing slug "+candidate, err)
		}
		if !taken {
			return candidate, nil
		}
	}

	return "", apperror.SlugExhausted(desired, MaxAttempts)
}
