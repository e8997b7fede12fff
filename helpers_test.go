package blogfront

import (
	"encoding/json"
	"testing"

	"github.com/eringen/blogfront/content"
)

func TestSlugify(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Hello World", "hello-world"},
		{"  Go 1.24: What's New?  ", "go-1-24-what-s-new"},
		{"---", ""},
		{"Projetos", "projetos"},
		{"Olá", "ola"},
		{"Programação em Go", "programacao-em-go"},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuildURL(t *testing.T) {
	tests := []struct {
		base string
		segs []string
		want string
	}{
		{"https://example.com", nil, "https://example.com"},
		{"https://example.com", []string{"blog", "hello"}, "https://example.com/blog/hello/"},
		{"https://example.com/", []string{"/sobre/"}, "https://example.com/sobre/"},
	}
	for _, tt := range tests {
		if got := BuildURL(tt.base, tt.segs...); got != tt.want {
			t.Errorf("BuildURL(%q, %v) = %q, want %q", tt.base, tt.segs, got, tt.want)
		}
	}
}

func TestCoverURL(t *testing.T) {
	if got := CoverURL("", "a b.jpg"); got != "/public/uploads/a%20b.jpg" {
		t.Errorf("CoverURL = %q", got)
	}
	if got := CoverURL("https://example.com/", "a.jpg"); got != "https://example.com/public/uploads/a.jpg" {
		t.Errorf("CoverURL = %q", got)
	}
}

func TestFilterEmpty(t *testing.T) {
	got := FilterEmpty([]string{" go ", "", "  ", "web"})
	if len(got) != 2 || got[0] != "go" || got[1] != "web" {
		t.Errorf("FilterEmpty = %q", got)
	}
}

func TestBlogPostingJsonLD(t *testing.T) {
	cfg := SiteConfig{Name: "Blog", URL: "https://example.com", Author: "Ada"}
	post := BlogPost{Slug: "hello", Title: "Hello", Category: "Tech", ReadingTime: 4, Cover: "c.jpg", Tags: []string{"go"}}

	var data map[string]any
	if err := json.Unmarshal([]byte(BlogPostingJsonLD(post, cfg)), &data); err != nil {
		t.Fatalf("invalid JSON-LD: %v", err)
	}
	want := map[string]string{
		"url":            "https://example.com/blog/hello/",
		"articleSection": "Tech",
		"timeRequired":   "PT4M",
		"image":          "https://example.com/public/uploads/c.jpg",
		"keywords":       "go",
	}
	for k, v := range want {
		if data[k] != v {
			t.Errorf("%s = %v, want %q", k, data[k], v)
		}
	}
}

func TestPostFromDocument(t *testing.T) {
	doc := content.Document{
		Path: "posts/my-first/index.md",
		Frontmatter: content.Frontmatter{
			Title: "My First",
			Date:  "2024-01-01",
			Tags:  []string{"go", " "},
			Draft: true,
		},
		Body: "One two three four five.\n",
	}
	post, err := PostFromDocument(doc)
	if err != nil {
		t.Fatalf("PostFromDocument failed: %v", err)
	}
	if post.Slug != "my-first" || post.Link != "/blog/my-first/" {
		t.Errorf("slug = %q, link = %q", post.Slug, post.Link)
	}
	if post.Published {
		t.Error("drafts should not be published")
	}
	if post.Summary != "One two three four five." {
		t.Errorf("Summary = %q", post.Summary)
	}
	if len(post.Tags) != 1 || post.Tags[0] != "go" {
		t.Errorf("Tags = %q", post.Tags)
	}

	accented := doc
	accented.Path = "posts/programação-em-go.md"
	if post, err := PostFromDocument(accented); err != nil || post.Slug != "programacao-em-go" {
		t.Errorf("slug from accented filename = %q (%v)", post.Slug, err)
	}

	doc.Frontmatter.Date = ""
	if _, err := PostFromDocument(doc); err == nil {
		t.Error("expected an error without a date")
	}
}
