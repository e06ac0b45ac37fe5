package slug

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/content-archive-api/internal/apperror"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "Hello World", "hello-world"},
		{"punctuation dropped", "Hello, World!", "hello-world"},
		{"accents transliterated", "Café au Lait", "cafe-au-lait"},
		{"underscores hyphenated", "snake_case_title", "snake-case-title"},
		{"collapsed hyphens", "a -- b", "a-b"},
		{"trimmed hyphens", "--edgy--", "edgy"},
		{"empty", "", ""},
		{"only symbols", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Generate(tt.input); got != tt.expected {
				t.Errorf("Generate(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestGenerate_CapsLength(t *testing.T) {
	got := Generate(strings.Repeat("word ", 50))
	if len(got) > 100 {
		t.Errorf("Generate produced %d chars, want <= 100", len(got))
	}
	if strings.HasSuffix(got, "-") {
		t.Errorf("Generate left a trailing hyphen: %q", got)
	}
}

func TestGenerateWithFallback(t *testing.T) {
	if got := GenerateWithFallback("!!!", "article"); got != "article" {
		t.Errorf("GenerateWithFallback = %q, want %q", got, "article")
	}
	if got := GenerateWithFallback("Real Title", "article"); got != "real-title" {
		t.Errorf("GenerateWithFallback = %q, want %q", got, "real-title")
	}
}

func TestAllocate_DesiredFree(t *testing.T) {
	got, err := Allocate(context.Background(), "my-slug", func(ctx context.Context, s string) (bool, error) {
		return false, nil
	})
	if err != nil {
		t.Fatalf("Allocate returned error: %v", err)
	}
	if got != "my-slug" {
		t.Errorf("Allocate = %q, want %q", got, "my-slug")
	}
}

func TestAllocate_SuffixesInOrder(t *testing.T) {
	taken := map[string]bool{"my-slug": true, "my-slug-1": true, "my-slug-2": true}
	var probes []string
	got, err := Allocate(context.Background(), "my-slug", func(ctx context.Context, s string) (bool, error) {
		probes = append(probes, s)
		return taken[s], nil
	})
	if err != nil {
		t.Fatalf("Allocate returned error: %v", err)
	}
	if got != "my-slug-3" {
		t.Errorf("Allocate = %q, want %q", got, "my-slug-3")
	}
	want := []string{"my-slug", "my-slug-1", "my-slug-2", "my-slug-3"}
	if len(probes) != len(want) {
		t.Fatalf("probed %v, want %v", probes, want)
	}
	for i := range want {
		if probes[i] != want[i] {
			t.Errorf("probe %d = %q, want %q", i, probes[i], want[i])
		}
	}
}

func TestAllocate_Exhaustion(t *testing.T) {
	probes := 0
	_, err := Allocate(context.Background(), "my-slug", func(ctx context.Context, s string) (bool, error) {
		probes++
		return true, nil
	})
	if !errors.Is(err, apperror.ErrSlugExhausted) {
		t.Fatalf("Allocate error = %v, want ErrSlugExhausted", err)
	}
	// desired plus suffixes 1..100
	if probes != MaxAttempts+1 {
		t.Errorf("probed %d candidates, want %d", probes, MaxAttempts+1)
	}
}

func TestAllocate_ProbeError(t *testing.T) {
	boom := fmt.Errorf("connection reset")
	_, err := Allocate(context.Background(), "my-slug", func(ctx context.Context, s string) (bool, error) {
		return false, boom
	})
	if !errors.Is(err, apperror.ErrPersistence) {
		t.Fatalf("Allocate error = %v, want ErrPersistence", err)
	}
}
