package blogfront

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "data", "test_blog.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func savePosts(t *testing.T, s *Store, posts ...BlogPost) {
	t.Helper()
	for _, p := range posts {
		if err := s.SavePost(p); err != nil {
			t.Fatalf("SavePost(%s) failed: %v", p.Slug, err)
		}
	}
}

func TestSaveAndGetPost(t *testing.T) {
	s := setupTestStore(t)

	post := BlogPost{
		Slug:      "test-post",
		Title:     "Test Post",
		Date:      "2024-01-15",
		Category:  "Tech",
		Tags:      []string{"Go", " testing "},
		Summary:   "A test post summary",
		Content:   "# Test Content\n\nThis is test content.",
		Cover:     "cover.jpg",
		Published: true,
	}
	savePosts(t, s, post)

	got, err := s.GetPost("test-post")
	if err != nil {
		t.Fatalf("GetPost failed: %v", err)
	}
	if got.Title != post.Title {
		t.Errorf("Title = %q, want %q", got.Title, post.Title)
	}
	if got.Category != "Tech" {
		t.Errorf("Category = %q, want Tech", got.Category)
	}
	if got.Cover != "cover.jpg" {
		t.Errorf("Cover = %q, want cover.jpg", got.Cover)
	}
	if got.Link != "/blog/test-post/" {
		t.Errorf("Link = %q, want %q", got.Link, "/blog/test-post/")
	}
	if got.ReadingTime != 1 {
		t.Errorf("ReadingTime = %d, want 1", got.ReadingTime)
	}
	if !got.Published {
		t.Error("Published should be true")
	}
	if len(got.Tags) != 2 || got.Tags[0] != "go" || got.Tags[1] != "testing" {
		t.Errorf("Tags = %v, want [go testing]", got.Tags)
	}
}

func TestGetPostNotFound(t *testing.T) {
	s := setupTestStore(t)
	if _, err := s.GetPost("nonexistent"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDraftsAreHidden(t *testing.T) {
	s := setupTestStore(t)
	savePosts(t, s, BlogPost{Slug: "draft", Title: "Draft", Date: "2024-01-01"})

	if _, err := s.GetPost("draft"); !errors.Is(err, ErrNotFound) {
		t.Errorf("draft should not be public, got %v", err)
	}
	if _, err := s.GetPostAny("draft"); err != nil {
		t.Errorf("GetPostAny failed: %v", err)
	}
	all, err := s.ListAllPosts()
	if err != nil || len(all) != 1 {
		t.Errorf("ListAllPosts = %d posts, err %v", len(all), err)
	}
	pub, err := s.ListPosts("")
	if err != nil || len(pub) != 0 {
		t.Errorf("ListPosts = %d posts, err %v", len(pub), err)
	}
}

func TestListPostsByTagAndCategory(t *testing.T) {
	s := setupTestStore(t)
	savePosts(t, s,
		BlogPost{Slug: "a", Title: "A", Date: "2024-01-01", Category: "Projetos", Tags: []string{"go"}, Published: true},
		BlogPost{Slug: "b", Title: "B", Date: "2024-01-02", Category: "Tech", Tags: []string{"web"}, Published: true},
		BlogPost{Slug: "c", Title: "C", Date: "2024-01-03", Category: "projetos", Tags: []string{"go", "web"}, Published: true},
		BlogPost{Slug: "d", Title: "D", Date: "2024-01-04", Category: "Programação", Published: true},
		BlogPost{Slug: "e", Title: "E", Date: "2024-01-05", Category: " PROGRAMAÇÃO ", Published: true},
	)
	cache := NewPostCache(s, time.Minute)

	goPosts, err := s.ListPosts("GO")
	if err != nil {
		t.Fatalf("ListPosts failed: %v", err)
	}
	if len(goPosts) != 2 || goPosts[0].Slug != "c" || goPosts[1].Slug != "a" {
		t.Errorf("ListPosts(go) = %v", slugs(goPosts))
	}
	for cat, want := range map[string][]string{
		"projetos":    {"c", "a"},
		"PROJETOS":    {"c", "a"},
		"programação": {"e", "d"},
		"Tech":        {"b"},
		"none":        nil,
	} {
		got, err := cache.ListByCategory(cat)
		if err != nil {
			t.Fatalf("ListByCategory(%q) failed: %v", cat, err)
		}
		if strings.Join(slugs(got), ",") != strings.Join(want, ",") {
			t.Errorf("ListByCategory(%q) = %v, want %v", cat, slugs(got), want)
		}
	}
	tags, err := s.ListTags()
	if err != nil {
		t.Fatalf("ListTags failed: %v", err)
	}
	if len(tags) != 2 || tags[0] != "go" || tags[1] != "web" {
		t.Errorf("ListTags = %v", tags)
	}
}

func TestAdjacent(t *testing.T) {
	s := setupTestStore(t)
	savePosts(t, s,
		BlogPost{Slug: "first", Title: "First", Date: "2024-01-01", Published: true},
		BlogPost{Slug: "second-a", Title: "Second A", Date: "2024-01-02", Published: true},
		BlogPost{Slug: "second-b", Title: "Second B", Date: "2024-01-02", Published: true},
		BlogPost{Slug: "hidden", Title: "Hidden", Date: "2024-01-03"},
		BlogPost{Slug: "last", Title: "Last", Date: "2024-01-04", Published: true},
	)

	tests := []struct {
		slug, prev, next string
	}{
		{"first", "", "second-a"},
		{"second-a", "first", "second-b"},
		{"second-b", "second-a", "last"},
		{"last", "second-b", ""},
	}
	cache := NewPostCache(s, time.Minute)
	for _, tt := range tests {
		adj, err := cache.Adjacent(tt.slug)
		if err != nil {
			t.Fatalf("Adjacent(%s) failed: %v", tt.slug, err)
		}
		if got := slugOf(adj.Previous); got != tt.prev {
			t.Errorf("Adjacent(%s).Previous = %q, want %q", tt.slug, got, tt.prev)
		}
		if got := slugOf(adj.Next); got != tt.next {
			t.Errorf("Adjacent(%s).Next = %q, want %q", tt.slug, got, tt.next)
		}
	}

	if _, err := cache.Adjacent("hidden"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Adjacent of a draft should be ErrNotFound, got %v", err)
	}
}

func TestCacheInvalidate(t *testing.T) {
	s := setupTestStore(t)
	cache := NewPostCache(s, time.Hour)
	savePosts(t, s, BlogPost{Slug: "one", Title: "One", Date: "2024-01-01", Published: true})

	if posts, _ := cache.ListPosts(""); len(posts) != 1 {
		t.Fatalf("expected 1 cached post, got %d", len(posts))
	}
	savePosts(t, s, BlogPost{Slug: "two", Title: "Two", Date: "2024-01-02", Published: true})
	if posts, _ := cache.ListPosts(""); len(posts) != 1 {
		t.Fatalf("cache should still hold 1 post before invalidation, got %d", len(posts))
	}
	cache.Invalidate()
	if posts, _ := cache.ListPosts(""); len(posts) != 2 {
		t.Fatalf("expected 2 posts after invalidation, got %d", len(posts))
	}
}

func TestImages(t *testing.T) {
	s := setupTestStore(t)
	img := Image{Filename: "a.jpg", OriginalName: "A.png", Width: 10, Height: 5, Size: 100, UploadedAt: "2024-01-01T00:00:00Z"}
	if err := s.SaveImage(img); err != nil {
		t.Fatalf("SaveImage failed: %v", err)
	}
	if ok, err := s.ImageExists("a.jpg"); err != nil || !ok {
		t.Fatalf("ImageExists = %v, %v", ok, err)
	}
	images, err := s.ListImages()
	if err != nil || len(images) != 1 || images[0] != img {
		t.Fatalf("ListImages = %v, %v", images, err)
	}
	if err := s.DeleteImage("a.jpg"); err != nil {
		t.Fatalf("DeleteImage failed: %v", err)
	}
	if ok, _ := s.ImageExists("a.jpg"); ok {
		t.Error("image should be gone")
	}
}

func TestParseTags(t *testing.T) {
	if got := ParseTags(",go,web,"); len(got) != 2 || got[0] != "go" || got[1] != "web" {
		t.Errorf("ParseTags = %v", got)
	}
	if got := ParseTags(",,"); got != nil {
		t.Errorf("ParseTags(empty) = %v, want nil", got)
	}
}

func slugs(posts []BlogPost) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.Slug
	}
	return out
}

func slugOf(p *BlogPost) string {
	if p == nil {
		return ""
	}
	return p.Slug
}
