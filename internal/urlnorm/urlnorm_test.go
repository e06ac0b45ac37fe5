package urlnorm

import "testing"

func TestNormalize_MirrorHosts(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"x.com", "https://x.com/user/status/123", "https://twitter.com/user/status/123"},
		{"www.x.com", "https://www.x.com/user/status/123", "https://twitter.com/user/status/123"},
		{"fxtwitter", "https://fxtwitter.com/user/status/123", "https://twitter.com/user/status/123"},
		{"vxtwitter", "https://vxtwitter.com/user/status/123", "https://twitter.com/user/status/123"},
		{"fixupx", "https://fixupx.com/user/status/123", "https://twitter.com/user/status/123"},
		{"fixvx", "https://fixvx.com/user/status/123", "https://twitter.com/user/status/123"},
		{"twittpr", "https://twittpr.com/user/status/123", "https://twitter.com/user/status/123"},
		{"canonical untouched", "https://twitter.com/user/status/123", "https://twitter.com/user/status/123"},
		{"unrelated untouched", "https://example.com/page", "https://example.com/page"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalize_SizeSuffix(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"https://cdn.example/media/abc.jpg:large", "https://cdn.example/media/abc.jpg"},
		{"https://cdn.example/media/abc.jpg:orig", "https://cdn.example/media/abc.jpg"},
		{"https://cdn.example/media/abc.jpg:thumb", "https://cdn.example/media/abc.jpg"},
		{"https://cdn.example/media/abc.jpg", "https://cdn.example/media/abc.jpg"},
		// Only the terminal token is a size variant.
		{"https://cdn.example/a:large/b.jpg", "https://cdn.example/a:large/b.jpg"},
	}

	for _, tt := range tests {
		if got := StripSizeSuffix(tt.input); got != tt.expected {
			t.Errorf("StripSizeSuffix(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestNormalize_TikTokQueryStripped(t *testing.T) {
	got := Normalize("https://www.tiktok.com/@user/video/123?is_from_webapp=1&sender_device=pc")
	want := "https://www.tiktok.com/@user/video/123"
	if got != want {
		t.Errorf("Normalize tiktok = %q, want %q", got, want)
	}
}

func TestNormalize_QueryKeptElsewhere(t *testing.T) {
	input := "https://twitter.com/user/status/123?s=20"
	if got := Normalize(input); got != input {
		t.Errorf("Normalize(%q) = %q, want unchanged", input, got)
	}
}

func TestNormalize_Total(t *testing.T) {
	inputs := []string{"", "not a url", "://broken", "http://%zz"}
	for _, input := range inputs {
		// Must never panic or error; garbage passes through.
		got := Normalize(input)
		if input == "" && got != "" {
			t.Errorf("Normalize(%q) = %q", input, got)
		}
	}
}

func TestIsVideoHost(t *testing.T) {
	tests := []struct {
		host string
		want bool
	}{
		{"tiktok.com", true},
		{"www.tiktok.com", true},
		{"youtube.com", true},
		{"www.youtube.com", true},
		{"youtu.be", true},
		{"twitter.com", false},
		{"example.com", false},
	}
	for _, tt := range tests {
		if got := IsVideoHost(tt.host); got != tt.want {
			t.Errorf("IsVideoHost(%q) = %v, want %v", tt.host, got, tt.want)
		}
	}
}

func TestIsMicroblogHost(t *testing.T) {
	for _, host := range []string{"twitter.com", "x.com", "fxtwitter.com", "vxtwitter.com"} {
		if !IsMicroblogHost(host) {
			t.Errorf("IsMicroblogHost(%q) = false, want true", host)
		}
	}
	if IsMicroblogHost("example.com") {
		t.Error("IsMicroblogHost(example.com) = true, want false")
	}
}
