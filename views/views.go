// Package views is the default page set for blogfront. It composes the
// navigation bar, post header and recommended links from package components
// into full HTML pages.
package views

import (
	"context"
	"io"
	"sort"

	"github.com/a-h/templ"

	"github.com/eringen/blogfront"
	"github.com/eringen/blogfront/components"
	"github.com/eringen/blogfront/internal/markup"
	"github.com/eringen/blogfront/markdown"
)

// Views renders pages for one site configuration and theme.
type Views struct {
	cfg   blogfront.SiteConfig
	theme components.Theme
	text  text
}

// New returns the default views. cfg should already carry its defaults.
func New(cfg blogfront.SiteConfig, theme components.Theme) *Views {
	return &Views{cfg: cfg, theme: theme, text: textFor(cfg.Locale)}
}

// Funcs exposes v as the ViewFuncs consumed by blogfront.App.
func (v *Views) Funcs() blogfront.ViewFuncs {
	return blogfront.ViewFuncs{
		Home:             v.Home,
		Post:             v.Post,
		Projects:         v.Projects,
		About:            v.About,
		AdminLogin:       v.AdminLogin,
		AdminDashboard:   v.AdminDashboard,
		AdminFormPartial: v.AdminFormPartial,
		AdminImages:      v.AdminImages,
		NotFound:         v.NotFound,
		ServerError:      v.ServerError,
	}
}

type bodyFunc func(ctx context.Context, m *markup.Writer)

func component(body bodyFunc) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := markup.New(w)
		body(ctx, m)
		return m.Err()
	})
}

// Layout wraps body in the site chrome. path selects the active
// navigation entry.
func (v *Views) Layout(meta PageMeta, path string, body templ.Component) templ.Component {
	return component(func(ctx context.Context, m *markup.Writer) {
		title := v.cfg.Name
		if meta.Title != "" {
			title = meta.Title + " | " + v.cfg.Name
		}
		description := meta.Description
		if description == "" {
			description = v.cfg.Description
		}
		ogType := meta.OGType
		if ogType == "" {
			ogType = "website"
		}

		m.Raw("<!DOCTYPE html>")
		m.Open("html", "lang", v.cfg.Locale)
		m.Open("head")
		m.Open("meta", "charset", "utf-8")
		m.Open("meta", "name", "viewport", "content", "width=device-width, initial-scale=1")
		m.Element("title", title)
		m.Open("meta", "name", "description", "content", description)
		if meta.URL != "" {
			m.Open("link", "rel", "canonical", "href", meta.URL)
		}
		m.Open("meta", "property", "og:title", "content", title)
		m.Open("meta", "property", "og:description", "content", description)
		m.Open("meta", "property", "og:type", "content", ogType)
		if meta.URL != "" {
			m.Open("meta", "property", "og:url", "content", meta.URL)
		}
		m.Open("link", "rel", "stylesheet", "href", "/public/blogfront.css")
		m.Open("link", "rel", "alternate", "type", "application/rss+xml", "title", v.cfg.Name, "href", "/feed.xml")
		m.Open("link", "rel", "icon", "href", "/favicon.svg")
		if vars := v.colorVars(); vars != "" {
			m.Open("style")
			m.Raw(":root{" + vars + "}")
			m.Close("style")
		}
		if meta.JsonLD != "" {
			m.Open("script", "type", "application/ld+json")
			// json.Marshal escapes <, > and & so the payload cannot close the tag.
			m.Raw(meta.JsonLD)
			m.Close("script")
		}
		m.Close("head")

		m.Open("body")
		m.Open("header", "class", "site-header")
		m.Open("div", "class", "site-header__wrapper")
		m.Element("a", v.cfg.Name, "href", components.HomeRoute, "class", "site-header__logo")
		m.Component(ctx, components.NavigationBar(v.theme, path))
		m.Close("div")
		m.Close("header")
		m.Open("main")
		m.Component(ctx, body)
		m.Close("main")
		m.Open("footer", "class", "site-footer")
		m.Open("p")
		m.Text("© " + v.cfg.Name)
		if v.cfg.Author != "" {
			m.Text(" · " + v.cfg.Author)
		}
		m.Close("p")
		m.Close("footer")
		m.Close("body")
		m.Close("html")
	})
}

// colorVars renders the theme colours as CSS custom properties in a stable order.
func (v *Views) colorVars() string {
	names := make([]string, 0, len(v.theme.Colors))
	for name := range v.theme.Colors {
		names = append(names, name)
	}
	sort.Strings(names)
	var out string
	for _, name := range names {
		out += "--" + cssIdent(name) + ":" + cssValue(v.theme.Colors[name]) + ";"
	}
	return out
}

// Home lists published posts with tag filters.
func (v *Views) Home(path string, posts []blogfront.BlogPost, activeTag string, tags []string) templ.Component {
	meta := PageMeta{
		URL:    blogfront.BuildURL(v.cfg.URL),
		JsonLD: blogfront.WebsiteJsonLD(v.cfg),
	}
	return v.Layout(meta, path, component(func(ctx context.Context, m *markup.Writer) {
		if len(tags) > 0 {
			m.Open("nav", "class", "tags", "aria-label", v.text.Tags)
			m.Element("a", v.text.AllPosts, "href", "/", "class", tagClass(activeTag == ""))
			for _, t := range tags {
				m.Element("a", t, "href", tagURL(t), "class", tagClass(t == activeTag))
			}
			m.Close("nav")
		}
		v.postList(m, posts)
	}))
}

// Post renders a single post with its header and neighbours.
func (v *Views) Post(path string, post blogfront.BlogPost, adj blogfront.Adjacent) templ.Component {
	meta := PageMeta{
		Title:       post.Title,
		Description: post.Summary,
		URL:         blogfront.BuildURL(v.cfg.URL, "blog", post.Slug),
		OGType:      "article",
		JsonLD:      blogfront.BlogPostingJsonLD(post, v.cfg),
	}
	return v.Layout(meta, path, v.article(post, adj))
}

func (v *Views) article(post blogfront.BlogPost, adj blogfront.Adjacent) templ.Component {
	return component(func(ctx context.Context, m *markup.Writer) {
		m.Open("article", "class", "post", "id", "post")
		m.Component(ctx, components.PostHeader(v.theme, components.PostHeaderData{
			Category:   post.Category,
			TimeToRead: post.ReadingTime,
			Title:      post.Title,
		}))
		if post.Cover != "" {
			m.Open("img", "class", "post__cover", "src", blogfront.CoverURL("", post.Cover), "alt", post.Title, "loading", "lazy")
		}
		m.Open("div", "class", "post__body")
		m.Component(ctx, markdown.Markdown(post.Content))
		m.Close("div")
		if len(post.Tags) > 0 {
			m.Open("p", "class", "post__tags")
			for _, t := range post.Tags {
				m.Element("a", t, "href", tagURL(t), "class", tagClass(false))
			}
			m.Close("p")
		}
		m.Component(ctx, components.PostRecommendedLinks(v.theme, Recommended(adj)))
		m.Close("article")
	})
}

// Projects lists the posts of the projects category.
func (v *Views) Projects(path string, posts []blogfront.BlogPost) templ.Component {
	meta := PageMeta{
		Title: v.text.ProjectsTitle,
		URL:   blogfront.BuildURL(v.cfg.URL, components.ProjectsRoute),
	}
	return v.Layout(meta, path, component(func(ctx context.Context, m *markup.Writer) {
		m.Element("h1", v.text.ProjectsTitle)
		if len(posts) == 0 {
			m.Element("p", v.text.ProjectsEmpty, "class", "empty")
			return
		}
		v.postList(m, posts)
	}))
}

// About shows the site description and author.
func (v *Views) About(path string) templ.Component {
	meta := PageMeta{
		Title: v.text.AboutTitle,
		URL:   blogfront.BuildURL(v.cfg.URL, components.AboutRoute),
	}
	return v.Layout(meta, path, component(func(ctx context.Context, m *markup.Writer) {
		m.Element("h1", v.text.AboutTitle)
		if v.cfg.Description != "" {
			m.Element("p", v.cfg.Description)
		}
		if v.cfg.Author != "" {
			m.Element("p", v.cfg.Author, "class", "about__author")
		}
	}))
}

// NotFound is the 404 page.
func (v *Views) NotFound(path string) templ.Component {
	return v.message(path, v.text.NotFoundTitle, v.text.NotFoundBody)
}

// ServerError is the 5xx page.
func (v *Views) ServerError(path string) templ.Component {
	return v.message(path, v.text.ErrorTitle, v.text.ErrorBody)
}

func (v *Views) message(path, title, body string) templ.Component {
	return v.Layout(PageMeta{Title: title}, path, component(func(ctx context.Context, m *markup.Writer) {
		m.Open("section", "class", "message")
		m.Element("h1", title)
		m.Element("p", body)
		m.Element("a", v.text.BackHome, "href", components.HomeRoute)
		m.Close("section")
	}))
}

func (v *Views) postList(m *markup.Writer, posts []blogfront.BlogPost) {
	if len(posts) == 0 {
		m.Element("p", v.text.NoPosts, "class", "empty")
		return
	}
	m.Open("ul", "class", "post-list")
	for _, p := range posts {
		m.Open("li", "class", "post-list__item")
		m.Open("a", "href", markup.Href(p.Link))
		m.Element("h2", p.Title)
		m.Close("a")
		m.Element("p", postMeta(v.theme, p), "class", "post-list__meta")
		if p.Summary != "" {
			m.Element("p", p.Summary, "class", "post-list__summary")
		}
		m.Close("li")
	}
	m.Close("ul")
}
