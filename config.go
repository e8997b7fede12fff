package blogfront

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/eringen/blogfront/components"
)

// SiteConfig describes one blogfront site. Zero values are replaced by
// defaults when the App is created.
type SiteConfig struct {
	Name        string // default "Blog"
	URL         string // canonical base URL, default "http://localhost:3000"
	Description string // RSS, meta tags and the about page
	Author      string // JSON-LD and the about page
	Locale      string // "en" (default) or "pt"; selects component labels

	Addr         string // listen address, default ":3000"
	DatabasePath string // default "data/blog.db"
	ContentDir   string // Markdown imported on start when set

	// ProjectsCategory selects the posts listed on /projetos/.
	ProjectsCategory string

	AdminPassword string // required
	SessionSecret string // required
	CookieSecure  bool   // set behind HTTPS

	PostCacheTTL time.Duration // default 5m
}

func setDefault[T comparable](v *T, def T) {
	var zero T
	if *v == zero {
		*v = def
	}
}

func (c *SiteConfig) setDefaults() {
	setDefault(&c.Name, "Blog")
	setDefault(&c.URL, "http://localhost:3000")
	setDefault(&c.Locale, "en")
	setDefault(&c.Addr, ":3000")
	setDefault(&c.DatabasePath, "data/blog.db")
	setDefault(&c.ProjectsCategory, "projetos")
	setDefault(&c.PostCacheTTL, 5*time.Minute)
}

// WithDefaults returns c with unset fields defaulted.
func (c SiteConfig) WithDefaults() SiteConfig {
	c.setDefaults()
	return c
}

// Theme is the default theme labelled for c.Locale.
func (c SiteConfig) Theme() components.Theme {
	return components.DefaultTheme().WithLabels(components.LabelsFor(c.Locale))
}

// Option configures an App in New.
type Option func(*App)

// WithCustomRoutes registers fn to add routes after the built-in ones.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) { a.customRoutes = append(a.customRoutes, fn) }
}

// WithStaticDir sets the directory served under /public (default "public").
// Uploaded covers are written to its uploads subdirectory.
func WithStaticDir(dir string) Option {
	return func(a *App) { a.staticDir = dir }
}

// WithLoginLimit allows max failed admin logins per window and IP
// (default 5 per minute).
func WithLoginLimit(max int, window time.Duration) Option {
	return func(a *App) { a.loginMax, a.loginWindow = max, window }
}

// EnvOr returns the environment variable key, or fallback when it is empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// EnvBool parses the environment variable key, returning fallback when it
// is unset or not a boolean.
func EnvBool(key string, fallback bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

// EnvDuration parses the environment variable key as a time.Duration such
// as "90s" or "5m". An unset variable yields fallback.
func EnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("blogfront: %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("blogfront: %s must be positive, got %s", key, v)
	}
	return d, nil
}

// MustEnv returns the environment variable key and exits when it is empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("blogfront: required environment variable %s is not set", key)
	}
	return v
}
