// Package templates holds the site's shared templ components: the document
// layout, navigation, footer and decorative pieces reused across pages.
package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// HTML accumulates markup for a component, remembering the first write error
// so rendering code can stay linear.
type HTML struct {
	ctx context.Context
	w   io.Writer
	err error
}

// NewHTML starts writing markup to w.
func NewHTML(ctx context.Context, w io.Writer) *HTML {
	return &HTML{ctx: ctx, w: w}
}

// Raw writes trusted markup verbatim.
func (h *HTML) Raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

// Text writes s escaped for element content or a quoted attribute value.
func (h *HTML) Text(s string) {
	h.Raw(templ.EscapeString(s))
}

// URL writes s as a sanitized, escaped URL attribute value. Unsafe schemes
// such as javascript: are replaced.
func (h *HTML) URL(s string) {
	h.Text(string(templ.URL(s)))
}

// Float writes f with the fewest digits that round-trip.
func (h *HTML) Float(f float64) {
	h.Raw(strconv.FormatFloat(f, 'f', -1, 64))
}

// Int writes n in decimal.
func (h *HTML) Int(n int) {
	h.Raw(strconv.Itoa(n))
}

// Render renders a child component into the same writer.
func (h *HTML) Render(c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(h.ctx, h.w)
}

// Err returns the first error encountered.
func (h *HTML) Err() error {
	return h.err
}

// Component adapts a writing function into a templ.Component.
func Component(fn func(h *HTML)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := NewHTML(ctx, w)
		fn(h)
		return h.Err()
	})
}
