// Package webformat cleans model output and renders it as HTML for the
// website chat widget: stray system markers are stripped, bullet styles
// normalized, then the markdown is converted with goldmark.
package webformat

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// systemMarkers are prompt-internal phrases that occasionally leak into
// model output and must never reach the widget.
var systemMarkers = []string{
	"TIMING QUESTION DETECTED",
	"REQUIRED RESPONSE FORMAT:",
	"CONTEXT ANALYSIS:",
	"RESPONSE GUIDANCE:",
	"DEBUG:",
}

// strayEmojis are prompt-scaffolding emojis stripped from output; the
// model's own content emojis like the 🌱 heading are left alone.
var strayEmojis = []string{"🕐", "📊", "🌾", "⚠️", "✅", "❌", "🎯", "💡"}

// Formatter renders advice markdown as widget-ready HTML.
type Formatter struct {
	md goldmark.Markdown
}

func New() *Formatter {
	return &Formatter{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM, extension.Linkify),
			goldmark.WithRendererOptions(html.WithHardWraps()),
		),
	}
}

// Format cleans the markdown and converts it to HTML.
func (f *Formatter) Format(markdown string) (string, error) {
	cleaned := Clean(markdown)
	if cleaned == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := f.md.Convert([]byte(cleaned), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Clean strips leaked system markers, normalizes bullets and collapses
// excessive blank lines.
func Clean(text string) string {
	for _, marker := range systemMarkers {
		text = strings.ReplaceAll(text, marker, "")
	}
	for _, emoji := range strayEmojis {
		text = strings.ReplaceAll(text, emoji+" ", "")
		text = strings.ReplaceAll(text, emoji, "")
	}

	// Dash and star bullets render inconsistently in the widget.
	text = strings.ReplaceAll(text, "\n- ", "\n• ")
	text = strings.ReplaceAll(text, "\n* ", "\n• ")

	for strings.Contains(text, "\n\n\n") {
		text = strings.ReplaceAll(text, "\n\n\n", "\n\n")
	}
	return strings.TrimSpace(text)
}
