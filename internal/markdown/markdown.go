package markdown

import (
	"bytes"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

// Renderer converts user-authored markdown into sanitized HTML.
type Renderer struct {
	md        goldmark.Markdown
	sanitizer *bluemonday.Policy
}

// New creates a Renderer. The UGC policy allows basic formatting like links,
// lists and emphasis while stripping anything dangerous.
func New() *Renderer {
	return &Renderer{
		md:        goldmark.New(),
		sanitizer: bluemonday.UGCPolicy(),
	}
}

// Render converts markdown to sanitized HTML. On a conversion error it falls
// back to the sanitized source text rather than failing the request.
func (r *Renderer) Render(src string) template.HTML {
	if src == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return template.HTML(r.sanitizer.Sanitize(src))
	}
	return template.HTML(r.sanitizer.SanitizeBytes(buf.Bytes()))
}
