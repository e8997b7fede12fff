package blogfront

import (
	"encoding/json"
	"net/url"
	"path"
	"strconv"
	"strings"
	"unicode"

	"github.com/samber/lo"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Slugify folds accents ("ção" becomes "cao"), lowercases s and joins its
// runs of ASCII letters and digits with '-'.
func Slugify(s string) string {
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(fold, s); err == nil {
		s = folded
	}
	words := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return (r < 'a' || r > 'z') && (r < '0' || r > '9')
	})
	return strings.Join(words, "-")
}

// BuildURL joins path segments onto base. When segments are given the
// result ends in '/', matching the site's canonical routes.
func BuildURL(base string, segments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	if len(segments) == 0 {
		return u.String()
	}
	u.Path = path.Join(u.Path, path.Join(segments...))
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// CoverURL is the public URL of an uploaded cover; base may be empty for a
// site-relative URL.
func CoverURL(base, filename string) string {
	return strings.TrimRight(base, "/") + "/public/" + uploadsSubdir + "/" + url.PathEscape(filename)
}

// FilterEmpty trims each value and drops the empty ones.
func FilterEmpty(vals []string) []string {
	return lo.Compact(lo.Map(vals, func(v string, _ int) string { return strings.TrimSpace(v) }))
}

// JoinTags is the inverse of splitting the editor's tag field.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

type ldThing struct {
	Type string `json:"@type"`
	ID   string `json:"@id,omitempty"`
	Name string `json:"name,omitempty"`
}

type ldWebSite struct {
	Context     string   `json:"@context"`
	Type        string   `json:"@type"`
	Name        string   `json:"name"`
	URL         string   `json:"url"`
	Description string   `json:"description,omitempty"`
	InLanguage  string   `json:"inLanguage,omitempty"`
	Author      *ldThing `json:"author,omitempty"`
}

type ldBlogPosting struct {
	Context          string   `json:"@context"`
	Type             string   `json:"@type"`
	Headline         string   `json:"headline"`
	Description      string   `json:"description,omitempty"`
	DatePublished    string   `json:"datePublished,omitempty"`
	URL              string   `json:"url"`
	MainEntityOfPage ldThing  `json:"mainEntityOfPage"`
	ArticleSection   string   `json:"articleSection,omitempty"`
	TimeRequired     string   `json:"timeRequired,omitempty"`
	Image            string   `json:"image,omitempty"`
	Keywords         string   `json:"keywords,omitempty"`
	Author           *ldThing `json:"author,omitempty"`
	Publisher        *ldThing `json:"publisher,omitempty"`
}

func ldNamed(typ, name string) *ldThing {
	if name == "" {
		return nil
	}
	return &ldThing{Type: typ, Name: name}
}

// WebsiteJsonLD is the schema.org WebSite description of the site.
func WebsiteJsonLD(cfg SiteConfig) string {
	return marshalJsonLD(ldWebSite{
		Context:     "https://schema.org",
		Type:        "WebSite",
		Name:        cfg.Name,
		URL:         BuildURL(cfg.URL),
		Description: cfg.Description,
		InLanguage:  cfg.Locale,
		Author:      ldNamed("Person", cfg.Author),
	})
}

// BlogPostingJsonLD is the schema.org BlogPosting description of post.
func BlogPostingJsonLD(post BlogPost, cfg SiteConfig) string {
	u := BuildURL(cfg.URL, "blog", post.Slug)
	ld := ldBlogPosting{
		Context:          "https://schema.org",
		Type:             "BlogPosting",
		Headline:         post.Title,
		Description:      post.Summary,
		DatePublished:    post.Date,
		URL:              u,
		MainEntityOfPage: ldThing{Type: "WebPage", ID: u},
		ArticleSection:   post.Category,
		Keywords:         strings.Join(post.Tags, ", "),
		Author:           ldNamed("Person", cfg.Author),
		Publisher:        ldNamed("Organization", cfg.Name),
	}
	if post.ReadingTime > 0 {
		ld.TimeRequired = "PT" + strconv.Itoa(post.ReadingTime) + "M"
	}
	if post.Cover != "" {
		ld.Image = CoverURL(cfg.URL, post.Cover)
	}
	return marshalJsonLD(ld)
}

// marshalJsonLD encodes v for a <script> element; encoding/json escapes
// '<', '>' and '&'.
func marshalJsonLD(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}
