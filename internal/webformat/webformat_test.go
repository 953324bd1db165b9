package webformat

import (
	"strings"
	"testing"
)

func TestCleanStripsSystemMarkers(t *testing.T) {
	in := "CONTEXT ANALYSIS:\nUse Calsap.\n\n\n\nDEBUG: done"
	out := Clean(in)
	if strings.Contains(out, "CONTEXT ANALYSIS") || strings.Contains(out, "DEBUG") {
		t.Errorf("system markers survived: %q", out)
	}
	if strings.Contains(out, "\n\n\n") {
		t.Errorf("excessive newlines survived: %q", out)
	}
}

func TestCleanNormalizesBullets(t *testing.T) {
	out := Clean("Products:\n- Calsap\n* Soft Cal")
	if !strings.Contains(out, "• Calsap") || !strings.Contains(out, "• Soft Cal") {
		t.Errorf("bullets not normalized: %q", out)
	}
}

func TestCleanStripsStrayEmojis(t *testing.T) {
	out := Clean("💡 Tip: apply in the morning 🎯")
	if strings.ContainsRune(out, '💡') || strings.ContainsRune(out, '🎯') {
		t.Errorf("stray emojis survived: %q", out)
	}
	if !strings.Contains(out, "Tip: apply in the morning") {
		t.Errorf("content mangled: %q", out)
	}
}

func TestFormatRendersHTML(t *testing.T) {
	f := New()
	out, err := f.Format("## Recommended Products\n\nUse [the label](https://www.freshnutrients.org/doc.pdf) first.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "<h2") {
		t.Errorf("heading not rendered: %q", out)
	}
	if !strings.Contains(out, `href="https://www.freshnutrients.org/doc.pdf"`) {
		t.Errorf("link not rendered: %q", out)
	}
}

func TestFormatEmptyInput(t *testing.T) {
	f := New()
	out, err := f.Format("   ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "" {
		t.Errorf("expected empty output, got %q", out)
	}
}

func TestFormatAutolinksBareURLs(t *testing.T) {
	f := New()
	out, err := f.Format("Product Label - https://www.freshnutrients.org/calsap.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "<a href=") {
		t.Errorf("bare URL not autolinked: %q", out)
	}
}
