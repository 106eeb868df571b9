package markup

import (
	"strings"
	"testing"
)

func TestToHTMLHeadingsAndEmphasis(t *testing.T) {
	got := ToHTML("# My Note\n\n**Bold** and *italic*")
	for _, want := range []string{"<h1", "My Note", "<strong>Bold</strong>", "<em>italic</em>"} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered HTML missing %q:\n%s", want, got)
		}
	}
}

func TestToHTMLLists(t *testing.T) {
	got := ToHTML("- Item 1\n- Item 2")
	if !strings.Contains(got, "<li>Item 1</li>") || !strings.Contains(got, "<li>Item 2</li>") {
		t.Errorf("rendered HTML missing list items:\n%s", got)
	}
}

func TestToHTMLEmpty(t *testing.T) {
	if got := strings.TrimSpace(ToHTML("")); got != "" {
		t.Errorf("empty input rendered to %q", got)
	}
}

func TestFallbackHTML(t *testing.T) {
	got := fallbackHTML("line one\nline <two> & three")
	if !strings.Contains(got, "<br>") {
		t.Errorf("fallback missing <br>: %q", got)
	}
	if strings.Contains(got, "<two>") {
		t.Errorf("fallback did not escape markup: %q", got)
	}
}
