// Package blogfront is a small blog front-end built with Go, Echo, and templ.
// It serves posts from SQLite with a navigation bar, post headers and
// previous/next links, plus RSS, a sitemap and a minimal admin.
//
// Pages are provided through the ViewFuncs struct; package views ships a
// default set built on package components.
package blogfront

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/eringen/blogfront/components"
)

// ViewFuncs holds the templ components that the framework calls when
// rendering pages. Every public page receives the request path so the
// layout can mark the active navigation entry.
type ViewFuncs struct {
	Home             func(path string, posts []BlogPost, activeTag string, tags []string) templ.Component
	Post             func(path string, post BlogPost, adj Adjacent) templ.Component
	Projects         func(path string, posts []BlogPost) templ.Component
	About            func(path string) templ.Component
	AdminLogin       func(showError bool, csrfToken string) templ.Component
	AdminDashboard   func(posts []BlogPost, message string, csrfToken string) templ.Component
	AdminFormPartial func(post BlogPost, csrfToken string) templ.Component
	AdminImages      func(images []Image, csrfToken string) templ.Component
	NotFound         func(path string) templ.Component
	ServerError      func(path string) templ.Component
}

// App is the central blogfront application. It wires together the store,
// cache, handlers, middleware, and views.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Store  *Store
	Cache  *PostCache
	Views  ViewFuncs

	loginLimiter *LoginLimiter
	loginMax     int
	loginWindow  time.Duration
	customRoutes []func(*App)
	staticDir    string
	initialized  bool
}

// New creates a new App with the given configuration and view functions.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:      cfg,
		Echo:        echo.New(),
		Views:       views,
		staticDir:   "public",
		loginMax:    5,
		loginWindow: time.Minute,
	}
	a.Echo.HideBanner = true

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Init opens the store, imports ContentDir when set, and registers
// middleware and routes. Start calls it when needed; tests call it directly.
func (a *App) Init() error {
	if a.initialized {
		return nil
	}
	switch {
	case a.Config.AdminPassword == "":
		return errors.New("blogfront: AdminPassword is required")
	case a.Config.SessionSecret == "":
		return errors.New("blogfront: SessionSecret is required")
	}

	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("blogfront: init store: %w", err)
	}
	a.Store = store
	a.Cache = NewPostCache(a.Store, a.Config.PostCacheTTL)

	if a.Config.ContentDir != "" {
		n, err := a.ImportContent(a.Config.ContentDir)
		if err != nil {
			a.Store.Close()
			return fmt.Errorf("blogfront: import content: %w", err)
		}
		a.Echo.Logger.Infof("imported %d posts from %s", n, a.Config.ContentDir)
	}

	a.loginLimiter = NewLoginLimiter(a.loginMax, a.loginWindow)

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	a.initialized = true
	return nil
}

// Start initializes the app and runs the HTTP server until it stops.
func (a *App) Start() error {
	if err := a.Init(); err != nil {
		return err
	}
	a.Echo.Logger.Infof("listening on %s", a.Config.Addr)
	if err := a.Echo.Start(a.Config.Addr); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	assets, _ := fs.Sub(EmbeddedAssets, "embedded")
	e.GET("/public/"+stylesheet, echo.WrapHandler(http.StripPrefix("/public/", http.FileServer(http.FS(assets)))))
	// Site-owned files, including uploaded covers.
	e.Static("/public", a.staticDir)

	for route := range fileRoutes {
		switch route {
		case "/sitemap.xml":
			e.GET(route, a.handleSitemap)
		case "/feed.xml":
			e.GET(route, a.handleFeed)
		default:
			e.GET(route, a.serveStatic(route))
		}
	}

	e.GET(components.HomeRoute, a.handleHome)
	e.GET(components.ProjectsRoute, a.handleProjects)
	e.GET(components.AboutRoute, a.handleAbout)
	e.GET("/blog", redirectTo(components.HomeRoute))
	e.GET("/blog/:slug/", a.handlePost)

	a.setupAdminRoutes()
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.loginLimiter != nil {
		a.loginLimiter.Stop()
	}
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}
