package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/eringen/blogfront"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("%v failed: %v", args, err)
	}
	return out.String()
}

func TestVersion(t *testing.T) {
	if got := execute(t, "version"); got != "blogfront dev\n" {
		t.Errorf("version output = %q", got)
	}
}

func TestImport(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "posts")
	if err := os.MkdirAll(filepath.Join(src, "nested"), 0o755); err != nil {
		t.Fatal(err)
	}
	files := map[string]string{
		"first.md":        "---\ntitle: First\ndate: 2024-01-01\n---\nBody.\n",
		"nested/index.md": "---\ntitle: Nested\ndate: 2024-01-02\ncategory: projetos\n---\nMore.\n",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(src, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	db := filepath.Join(dir, "blog.db")
	t.Setenv("DATABASE_PATH", db)

	out := execute(t, "import", src)
	if !strings.HasPrefix(out, "imported 2 posts") {
		t.Errorf("import output = %q", out)
	}

	store, err := blogfront.NewStore(db)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	post, err := store.GetPost("nested")
	if err != nil {
		t.Fatalf("GetPost(nested) failed: %v", err)
	}
	if post.Category != "projetos" {
		t.Errorf("Category = %q", post.Category)
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("PROJECTS_CATEGORY", "Programação")
	t.Setenv("POST_CACHE_TTL", "90s")
	cfg, err := configFromEnv(false)
	if err != nil {
		t.Fatalf("configFromEnv failed: %v", err)
	}
	if cfg.ProjectsCategory != "Programação" {
		t.Errorf("ProjectsCategory = %q", cfg.ProjectsCategory)
	}
	if cfg.PostCacheTTL != 90*time.Second {
		t.Errorf("PostCacheTTL = %s", cfg.PostCacheTTL)
	}
}

func TestConfigFromEnvDefaults(t *testing.T) {
	t.Setenv("PROJECTS_CATEGORY", "")
	t.Setenv("POST_CACHE_TTL", "")
	cfg, err := configFromEnv(false)
	if err != nil {
		t.Fatalf("configFromEnv failed: %v", err)
	}
	if cfg.ProjectsCategory != "projetos" || cfg.PostCacheTTL != 5*time.Minute {
		t.Errorf("defaults = %q, %s", cfg.ProjectsCategory, cfg.PostCacheTTL)
	}
}

func TestConfigFromEnvRejectsBadTTL(t *testing.T) {
	for _, v := range []string{"soon", "-1m"} {
		t.Setenv("POST_CACHE_TTL", v)
		if _, err := configFromEnv(false); err == nil {
			t.Errorf("POST_CACHE_TTL=%q should be rejected", v)
		}
	}
}
