package render

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
)

// Markdown converts newsletter markdown into HTML that is safe to drop
// into an e-mail body. Raw HTML in the source is escaped by the
// converter (WithUnsafe is not set) and the result is run through the
// UGC policy.
type Markdown struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func NewMarkdown() *Markdown {
	return &Markdown{
		md: goldmark.New(
			goldmark.WithRendererOptions(
				goldmarkHTML.WithHardWraps(),
			),
		),
		policy: bluemonday.UGCPolicy(),
	}
}

func (r *Markdown) Render(contents string) (string, error) {

	var buf bytes.Buffer

	if err := r.md.Convert([]byte(contents), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown - %w", err)
	}

	return r.policy.Sanitize(buf.String()), nil
}
