package views

import (
	"net/url"
	"strings"

	"github.com/eringen/blogfront"
	"github.com/eringen/blogfront/components"
)

// Recommended converts a post's neighbours into the recommender's props.
func Recommended(adj blogfront.Adjacent) components.AdjacentPosts {
	return components.AdjacentPosts{
		Previous: summary(adj.Previous),
		Next:     summary(adj.Next),
	}
}

func summary(p *blogfront.BlogPost) *components.PostSummary {
	if p == nil {
		return nil
	}
	return &components.PostSummary{Slug: p.Link, Title: p.Title}
}

// postMeta is the "date · category · reading time" line under a post title.
func postMeta(theme components.Theme, p blogfront.BlogPost) string {
	parts := []string{p.Date}
	if p.Category != "" {
		parts = append(parts, p.Category)
	}
	if p.ReadingTime > 0 {
		parts = append(parts, components.ReadingLabel(theme.Labels, p.ReadingTime))
	}
	return strings.Join(parts, " · ")
}

func tagURL(tag string) string {
	return "/?tag=" + url.QueryEscape(tag)
}

func tagClass(active bool) string {
	if active {
		return "tag tag--active"
	}
	return "tag"
}

// cssIdent keeps letters, digits, '-' and '_' of a custom property name.
func cssIdent(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return -1
		}
	}, s)
}

// cssValue drops characters that could end the declaration or the style element.
func cssValue(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ';', '{', '}', '<', '>', '"', '\'', '\\':
			return -1
		default:
			return r
		}
	}, s)
}
