package repository

import "testing"

func TestLikeEscaper(t *testing.T) {
	cases := map[string]string{
		"plain":  "plain",
		"100%":   `100\%`,
		"a_b":    `a\_b`,
		`back\`:  `back\\`,
		`%_\`:    `\%\_\\`,
		"":       "",
	}
	for in, want := range cases {
		if got := likeEscaper.Replace(in); got != want {
			t.Errorf("escape(%q) = %q, want %q", in, got, want)
		}
	}
}
