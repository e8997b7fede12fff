package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/eringen/blogfront"
)

var rootCmd = &cobra.Command{
	Use:               "blogfront",
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	Short:             "blogfront serves a small blog with Echo and templ",
	SilenceUsage:      true,
}

// configFromEnv reads the site configuration from the environment.
// Secrets are only required by commands that start the server.
func configFromEnv(requireSecrets bool) (blogfront.SiteConfig, error) {
	ttl, err := blogfront.EnvDuration("POST_CACHE_TTL", 5*time.Minute)
	if err != nil {
		return blogfront.SiteConfig{}, err
	}
	cfg := blogfront.SiteConfig{
		Name:         blogfront.EnvOr("SITE_NAME", "Blog"),
		URL:          blogfront.EnvOr("SITE_URL", "http://localhost:3000"),
		Description:  blogfront.EnvOr("SITE_DESCRIPTION", ""),
		Author:       blogfront.EnvOr("SITE_AUTHOR", ""),
		Locale:       blogfront.EnvOr("SITE_LOCALE", "en"),
		Addr:         blogfront.EnvOr("ADDR", ":3000"),
		DatabasePath: blogfront.EnvOr("DATABASE_PATH", "data/blog.db"),
		ContentDir:   blogfront.EnvOr("CONTENT_DIR", ""),
		CookieSecure: blogfront.EnvBool("COOKIE_SECURE", false),

		ProjectsCategory: blogfront.EnvOr("PROJECTS_CATEGORY", "projetos"),
		PostCacheTTL:     ttl,
	}
	if requireSecrets {
		cfg.AdminPassword = blogfront.MustEnv("ADMIN_PASSWORD")
		cfg.SessionSecret = blogfront.MustEnv("SESSION_SECRET")
	}
	return cfg.WithDefaults(), nil
}
