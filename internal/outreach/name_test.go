package outreach_test

import (
	"testing"
	"unicode"

	"scope/swipe-service/internal/outreach"
)

// ── NormalizeName ─────────────────────────────────────────────────────────

func TestNormalizeName_StripsAccents(t *testing.T) {
	got := outreach.NormalizeName("Hélène Dûpont")
	if got != "helene dupont" {
		t.Errorf("NormalizeName(\"Hélène Dûpont\") = %q, want \"helene dupont\"", got)
	}
	for _, r := range got {
		if unicode.Is(unicode.Mn, r) {
			t.Errorf("normalized output still contains combining mark %U", r)
		}
	}
}

func TestNormalizeName_Idempotent(t *testing.T) {
	inputs := []string{
		"Hélène Dûpont",
		"  Jean-Pierre MARTIN  ",
		"José María Ñoño",
		"plain ascii",
		"",
	}
	for _, s := range inputs {
		once := outreach.NormalizeName(s)
		twice := outreach.NormalizeName(once)
		if once != twice {
			t.Errorf("NormalizeName not idempotent for %q: %q != %q", s, once, twice)
		}
	}
}

func TestNormalizeName_PreservesHyphens(t *testing.T) {
	got := outreach.NormalizeName("Jean-Pierre")
	if got != "jean-pierre" {
		t.Errorf("NormalizeName(\"Jean-Pierre\") = %q, want \"jean-pierre\"", got)
	}
}

func TestNormalizeName_Empty(t *testing.T) {
	if got := outreach.NormalizeName(""); got != "" {
		t.Errorf("NormalizeName(\"\") = %q, want \"\"", got)
	}
	if got := outreach.NormalizeName("   "); got != "" {
		t.Errorf("NormalizeName(\"   \") = %q, want \"\"", got)
	}
}

// ── StripTitleNoise ───────────────────────────────────────────────────────

func TestStripTitleNoise(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Jean Dupont - Dave | LinkedIn", "Jean Dupont"},
		{"Jean Dupont | LinkedIn", "Jean Dupont"},
		{"Jean Dupont", "Jean Dupont"},
		{"  Jean Dupont  ", "Jean Dupont"},
		{"- nothing before", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := outreach.StripTitleNoise(c.in); got != c.want {
			t.Errorf("StripTitleNoise(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
