package blogfront

import "testing"

func TestCachePolicy(t *testing.T) {
	tests := map[string]string{
		"/public/blogfront.css": "public, max-age=31536000, immutable",
		"/public/uploads/a.jpg": "public, max-age=31536000, immutable",
		"/admin/":               "no-store",
		"/admin/images/":        "no-store",
		"/feed.xml":             "public, max-age=86400",
		"/sitemap.xml":          "public, max-age=86400",
		"/favicon.svg":          "public, max-age=3600",
		"/":                     "public, max-age=3600",
		"/blog/hello/":          "public, max-age=3600",
		"/projetos/":            "public, max-age=3600",
	}
	for path, want := range tests {
		if got := cachePolicy(path); got != want {
			t.Errorf("cachePolicy(%q) = %q, want %q", path, got, want)
		}
	}
}
