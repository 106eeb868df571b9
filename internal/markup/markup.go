// Package markup converts Markdown tool input into the HTML body format
// Notes.app expects.
package markup

import (
	"bytes"
	"html"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(goldmarkhtml.WithHardWraps()),
)

// ToHTML renders Markdown to HTML. When rendering fails, it degrades to an
// escaped literal with newlines turned into <br> tags so the note still
// carries the caller's text.
func ToHTML(markdown string) string {
	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		return fallbackHTML(markdown)
	}
	return buf.String()
}

func fallbackHTML(text string) string {
	return strings.ReplaceAll(html.EscapeString(text), "\n", "<br>")
}
