// Package markup is a small HTML writer used by hand-written templ components.
// It records the first write error and turns every later call into a no-op,
// so component bodies can be written as a flat sequence of calls.
package markup

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Writer emits escaped HTML to an underlying io.Writer.
type Writer struct {
	w   io.Writer
	err error
}

// New wraps w.
func New(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Err returns the first error encountered while writing.
func (m *Writer) Err() error {
	return m.err
}

// Raw writes s without escaping.
func (m *Writer) Raw(s string) {
	if m.err != nil {
		return
	}
	_, m.err = io.WriteString(m.w, s)
}

// Text writes s HTML-escaped.
func (m *Writer) Text(s string) {
	m.Raw(templ.EscapeString(s))
}

// Open writes a start tag. attrs are name/value pairs; pairs with an empty
// value are skipped.
func (m *Writer) Open(tag string, attrs ...string) {
	m.Raw("<" + tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		if attrs[i+1] == "" {
			continue
		}
		m.Raw(" " + attrs[i] + "=\"" + templ.EscapeString(attrs[i+1]) + "\"")
	}
	m.Raw(">")
}

// Close writes an end tag.
func (m *Writer) Close(tag string) {
	m.Raw("</" + tag + ">")
}

// Element writes a complete element whose body is escaped text.
func (m *Writer) Element(tag, text string, attrs ...string) {
	m.Open(tag, attrs...)
	m.Text(text)
	m.Close(tag)
}

// Component renders a nested component in place.
func (m *Writer) Component(ctx context.Context, c templ.Component) {
	if m.err != nil || c == nil {
		return
	}
	m.err = c.Render(ctx, m.w)
}

// Href sanitises a URL for use in an href attribute.
func Href(u string) string {
	return string(templ.URL(u))
}
