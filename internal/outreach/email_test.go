package outreach_test

import (
	"testing"

	"scope/swipe-service/internal/outreach"
)

func TestInferEmail(t *testing.T) {
	cases := []struct {
		name   string
		domain string
		want   string
	}{
		// single token
		{"Madonna", "acme.com", "madonna@acme.com"},
		// two tokens
		{"Jean Dupont", "acme.com", "jean.dupont@acme.com"},
		// three or more: everything after the first token is
		// concatenated with no separator
		{"Jean Paul Dupont", "acme.com", "jean.pauldupont@acme.com"},
		{"Jean Paul Dupont Martin", "acme.com", "jean.pauldupontmartin@acme.com"},
		// accents are stripped before tokenizing
		{"Hélène Dûpont", "acme.com", "helene.dupont@acme.com"},
		// hyphen inside a token survives
		{"Jean-Paul Dupont-Martin", "acme.com", "jean-paul.dupont-martin@acme.com"},
		// extra whitespace between tokens is not a token
		{"  Jean   Dupont  ", "acme.com", "jean.dupont@acme.com"},
	}
	for _, c := range cases {
		if got := outreach.InferEmail(c.name, c.domain); got != c.want {
			t.Errorf("InferEmail(%q, %q) = %q, want %q", c.name, c.domain, got, c.want)
		}
	}
}

func TestInferEmail_Degenerate(t *testing.T) {
	for _, name := range []string{"", "   ", "\t\n"} {
		if got := outreach.InferEmail(name, "acme.com"); got != "" {
			t.Errorf("InferEmail(%q) = %q, want empty sentinel", name, got)
		}
	}
}

// End-to-end: search-result title → stripped name → inferred address.
func TestInferEmail_FromSearchTitle(t *testing.T) {
	title := "Jean Dupont - Dave | LinkedIn"
	name := outreach.StripTitleNoise(title)
	if name != "Jean Dupont" {
		t.Fatalf("StripTitleNoise(%q) = %q, want \"Jean Dupont\"", title, name)
	}
	if got := outreach.InferEmail(name, "acme.com"); got != "jean.dupont@acme.com" {
		t.Errorf("InferEmail(%q, \"acme.com\") = %q, want \"jean.dupont@acme.com\"", name, got)
	}
}
