package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// markdownRenderer is a cached glamour renderer instance
var markdownRenderer *glamour.TermRenderer

// cachedWidth stores the width used for the current renderer
var cachedWidth int

// initMarkdownRenderer initializes the glamour renderer with the given width
func initMarkdownRenderer(width int) error {
	if width < 1 {
		width = 80
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return err
	}

	markdownRenderer = renderer
	cachedWidth = width
	return nil
}

// RenderMarkdown renders markdown content to a rich text string suitable for
// terminal display. Returns the original content if rendering fails.
func RenderMarkdown(content string, width int) string {
	if content == "" {
		return ""
	}

	if width < 1 {
		width = 80
	}
	if markdownRenderer == nil || width != cachedWidth {
		if err := initMarkdownRenderer(width); err != nil {
			return content
		}
	}

	rendered, err := markdownRenderer.Render(content)
	if err != nil {
		return content
	}

	return strings.TrimRight(rendered, "\n")
}
