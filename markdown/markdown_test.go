package markdown

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func render(t *testing.T, src string) string {
	t.Helper()
	var buf bytes.Buffer
	if err := RenderMarkdown(&buf, src); err != nil {
		t.Fatalf("RenderMarkdown failed: %v", err)
	}
	return buf.String()
}

func TestRenderMarkdownBlocks(t *testing.T) {
	tests := []struct {
		input    string
		contains string
	}{
		{"# Title", ">Title</h1>"},
		{"## Sub", ">Sub</h2>"},
		{"**bold**", "<strong>bold</strong>"},
		{"*italic*", "<em>italic</em>"},
		{"- one\n- two", "<li>one</li>"},
		{"1. first", "<ol>"},
		{"> quoted", "<blockquote>"},
		{"```go\nx := 1\n```", "<code class=\"language-go\">"},
		{"| a | b |\n|---|---|\n| 1 | 2 |", "<table>"},
		{"~~gone~~", "<del>gone</del>"},
	}
	for _, tt := range tests {
		got := render(t, tt.input)
		if !strings.Contains(got, tt.contains) {
			t.Errorf("RenderMarkdown(%q) = %q, want it to contain %q", tt.input, got, tt.contains)
		}
	}
}

func TestRenderMarkdownOmitsRawHTML(t *testing.T) {
	got := render(t, "<script>alert(1)</script>\n\ntext")
	if strings.Contains(got, "<script>") {
		t.Errorf("raw HTML should be omitted: %q", got)
	}
}

func TestRenderMarkdownDropsUnsafeLinks(t *testing.T) {
	got := render(t, "[x](javascript:alert(1))")
	if strings.Contains(got, "javascript:") {
		t.Errorf("unsafe link kept: %q", got)
	}
}

func TestMarkdownComponent(t *testing.T) {
	var buf bytes.Buffer
	if err := Markdown("hello *world*").Render(context.Background(), &buf); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(buf.String(), "<em>world</em>") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestPlainText(t *testing.T) {
	got := PlainText("# Hello\n\nSome **bold** & [a link](/x).")
	want := "Hello Some bold & a link."
	if got != want {
		t.Errorf("PlainText = %q, want %q", got, want)
	}
}

func TestReadingTime(t *testing.T) {
	tests := []struct {
		words int
		want  int
	}{
		{0, 0},
		{1, 1},
		{100, 1},
		{265, 1},
		{530, 2},
		{1000, 4},
	}
	for _, tt := range tests {
		src := strings.TrimSpace(strings.Repeat("word ", tt.words))
		if got := ReadingTime(src); got != tt.want {
			t.Errorf("ReadingTime(%d words) = %d, want %d", tt.words, got, tt.want)
		}
	}
}

func TestSummary(t *testing.T) {
	src := "one two three four five"
	if got := Summary(src, 3); got != "one two three…" {
		t.Errorf("Summary = %q", got)
	}
	if got := Summary(src, 10); got != src {
		t.Errorf("Summary = %q, want full text", got)
	}
}
