package blogfront

import (
	"encoding/xml"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eringen/blogfront/components"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

type rss struct {
	XMLName xml.Name `xml:"rss"`
	Version string   `xml:"version,attr"`
	Channel struct {
		Title       string    `xml:"title"`
		Link        string    `xml:"link"`
		Description string    `xml:"description"`
		Language    string    `xml:"language,omitempty"`
		Items       []rssItem `xml:"item"`
	} `xml:"channel"`
}

type rssItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	GUID        string   `xml:"guid"`
	Description string   `xml:"description"`
	PubDate     string   `xml:"pubDate,omitempty"`
	Categories  []string `xml:"category"`
}

type urlSet struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	URLs    []struct {
		Loc     string `xml:"loc"`
		LastMod string `xml:"lastmod,omitempty"`
	} `xml:"url"`
}

// rssFeed lists posts as RSS 2.0 items. The category comes first among an
// item's categories, followed by its tags.
func rssFeed(cfg SiteConfig, posts []BlogPost) rss {
	var feed rss
	feed.Version = "2.0"
	feed.Channel.Title = cfg.Name
	feed.Channel.Link = BuildURL(cfg.URL)
	feed.Channel.Description = cfg.Description
	feed.Channel.Language = cfg.Locale
	feed.Channel.Items = make([]rssItem, 0, len(posts))

	for _, p := range posts {
		link := BuildURL(cfg.URL, "blog", p.Slug)
		item := rssItem{
			Title:       p.Title,
			Link:        link,
			GUID:        link,
			Description: p.Summary,
			PubDate:     rfc1123(p.Date),
		}
		if p.Category != "" {
			item.Categories = append(item.Categories, p.Category)
		}
		item.Categories = append(item.Categories, p.Tags...)
		feed.Channel.Items = append(feed.Channel.Items, item)
	}
	return feed
}

// sitemap lists the navigation routes followed by every post.
func sitemap(cfg SiteConfig, posts []BlogPost) urlSet {
	set := urlSet{XMLNS: sitemapNS}
	add := func(loc, lastMod string) {
		set.URLs = append(set.URLs, struct {
			Loc     string `xml:"loc"`
			LastMod string `xml:"lastmod,omitempty"`
		}{loc, lastMod})
	}
	for _, route := range []string{components.HomeRoute, components.ProjectsRoute, components.AboutRoute} {
		add(BuildURL(cfg.URL, route), "")
	}
	for _, p := range posts {
		add(BuildURL(cfg.URL, "blog", p.Slug), p.Date)
	}
	return set
}

func rfc1123(date string) string {
	t, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return ""
	}
	return t.Format(time.RFC1123Z)
}

func (a *App) handleFeed(c echo.Context) error {
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		return err
	}
	return writeXML(c, "application/rss+xml; charset=utf-8", rssFeed(a.Config, posts))
}

func (a *App) handleSitemap(c echo.Context) error {
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		return err
	}
	return writeXML(c, "application/xml; charset=utf-8", sitemap(a.Config, posts))
}

func writeXML(c echo.Context, contentType string, v any) error {
	out, err := xml.Marshal(v)
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, contentType, append([]byte(xml.Header), out...))
}
