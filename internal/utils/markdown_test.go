package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderMarkdown(t *testing.T) {
	out := RenderMarkdown("Bonjour **le monde**")
	assert.Contains(t, out, "<strong>le monde</strong>")
}

func TestRenderMarkdownSanitizesHTML(t *testing.T) {
	out := RenderMarkdown("salut <script>alert('xss')</script>")
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "salut")
}

func TestRenderMarkdownLinks(t *testing.T) {
	out := RenderMarkdown("[exemple](https://example.com)")
	assert.Contains(t, out, `href="https://example.com"`)
	assert.Contains(t, out, `target="_blank"`)
}
