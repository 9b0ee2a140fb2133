package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pitchside/newsletter-service/internal/render"
)

func TestMarkdownRender(t *testing.T) {

	r := render.NewMarkdown()

	t.Run("converts headings and emphasis", func(t *testing.T) {
		html, err := r.Render("# Matchday Recap\n\nA **late winner** at the death.")

		assert.NoError(t, err)
		assert.Contains(t, html, "<h1>Matchday Recap</h1>")
		assert.Contains(t, html, "<strong>late winner</strong>")
	})

	t.Run("keeps links with nofollow", func(t *testing.T) {
		html, err := r.Render("[full report](https://example.com/report)")

		assert.NoError(t, err)
		assert.Contains(t, html, "https://example.com/report")
		assert.Contains(t, html, `rel="nofollow"`)
	})

	t.Run("strips raw html", func(t *testing.T) {
		html, err := r.Render("<script>alert('x')</script>\n\nSafe paragraph.")

		assert.NoError(t, err)
		assert.NotContains(t, html, "<script")
		assert.Contains(t, html, "Safe paragraph.")
	})
}
