// Package markdown renders post bodies to HTML and derives plain-text
// facts from them (word count, reading time, summaries).
package markdown

import (
	"bytes"
	"context"
	"html"
	"io"
	"math"
	"strings"

	"github.com/a-h/templ"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// WordsPerMinute is the reading speed used by ReadingTime.
const WordsPerMinute = 265

var (
	md = goldmark.New(
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithExtensions(
			extension.Table,
			extension.Strikethrough,
			extension.Linkify,
			extension.TaskList,
			extension.Typographer,
		),
	)
	htmlRemover = bluemonday.StrictPolicy()
)

// Markdown returns a templ.Component that renders content as HTML.
// Raw HTML in the source is omitted.
func Markdown(content string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		if err := RenderMarkdown(&buf, content); err != nil {
			return err
		}
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// RenderMarkdown writes the HTML representation of src to buf.
func RenderMarkdown(buf *bytes.Buffer, src string) error {
	return md.Convert([]byte(src), buf)
}

// PlainText renders src and strips every tag, leaving readable text with
// whitespace collapsed.
func PlainText(src string) string {
	var buf bytes.Buffer
	if err := RenderMarkdown(&buf, src); err != nil {
		return ""
	}
	text := html.UnescapeString(htmlRemover.Sanitize(buf.String()))
	return strings.Join(strings.Fields(text), " ")
}

// WordCount counts the words of the rendered text of src.
func WordCount(src string) int {
	return len(strings.Fields(PlainText(src)))
}

// ReadingTime estimates minutes needed to read src. Any non-empty text
// takes at least a minute.
func ReadingTime(src string) int {
	words := WordCount(src)
	if words == 0 {
		return 0
	}
	minutes := int(math.Round(float64(words) / WordsPerMinute))
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

// Summary returns at most maxWords words of the plain text of src, followed
// by an ellipsis when truncated.
func Summary(src string, maxWords int) string {
	words := strings.Fields(PlainText(src))
	if maxWords <= 0 || len(words) <= maxWords {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:maxWords], " ") + "…"
}
