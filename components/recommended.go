package components

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/eringen/blogfront/internal/markup"
)

// PostSummary references another post by route and title.
type PostSummary struct {
	Slug  string
	Title string
}

// AdjacentPosts holds the neighbours of the current post. Either may be nil.
type AdjacentPosts struct {
	Previous *PostSummary
	Next     *PostSummary
}

// present reports whether s can be linked to. A summary without a route
// is treated the same as a missing one.
func (s *PostSummary) present() bool {
	return s != nil && strings.TrimSpace(s.Slug) != ""
}

func (s *PostSummary) linkText() string {
	if strings.TrimSpace(s.Title) == "" {
		return s.Slug
	}
	return s.Title
}

// PostRecommendedLinks renders a "Previous" and/or "Next" item for each
// neighbour that is present. With neither present the wrapper is empty.
func PostRecommendedLinks(theme Theme, adj AdjacentPosts) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := markup.New(w)
		m.Open("div", "class", theme.Recommended)
		if adj.Previous.present() {
			recommendedItem(m, theme, "previous", theme.Labels.Previous, adj.Previous)
		}
		if adj.Next.present() {
			recommendedItem(m, theme, "next", theme.Labels.Next, adj.Next)
		}
		m.Close("div")
		return m.Err()
	})
}

func recommendedItem(m *markup.Writer, theme Theme, direction, label string, post *PostSummary) {
	m.Open("div", "class", theme.RecommendedItem, "data-direction", direction)
	m.Element("h3", label, "class", theme.RecommendedLabel)
	m.Element("a", post.linkText(), "href", markup.Href(post.Slug), "class", theme.RecommendedLink)
	m.Close("div")
}
