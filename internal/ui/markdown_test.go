package ui

import (
	"strings"
	"testing"
)

func TestRenderMarkdown(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		width        int
		wantContains []string
	}{
		{
			name:  "empty string",
			input: "",
			width: 80,
		},
		{
			name:         "plain text",
			input:        "Hello world",
			width:        80,
			wantContains: []string{"Hello world"},
		},
		{
			name:         "markdown heading",
			input:        "# Main Title",
			width:        80,
			wantContains: []string{"Main Title"},
		},
		{
			name:         "markdown list",
			input:        "- Item 1\n- Item 2",
			width:        80,
			wantContains: []string{"Item 1", "Item 2"},
		},
		{
			name:         "zero width falls back to default",
			input:        "text",
			width:        0,
			wantContains: []string{"text"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stripANSI(RenderMarkdown(tt.input, tt.width))
			if tt.input == "" && got != "" {
				t.Errorf("expected empty output, got %q", got)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q:\n%s", want, got)
				}
			}
		})
	}
}

func TestRenderMarkdownNoTrailingNewlines(t *testing.T) {
	got := RenderMarkdown("# Title", 80)
	if strings.HasSuffix(got, "\n") {
		t.Errorf("trailing newlines should be trimmed: %q", got)
	}
}
