package docs_test

import (
	"testing"

	"scope/swipe-service/internal/docs"
)

func TestCleanResponse(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"plain text", "plain text"},
		{"  padded  ", "padded"},
		{"```\nfenced body\n```", "fenced body"},
		{"```text\nfenced with language tag\n```", "fenced with language tag"},
		{"```markdown\nline one\nline two\n```", "line one\nline two"},
		{"```", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := docs.CleanResponse(c.in); got != c.want {
			t.Errorf("CleanResponse(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
