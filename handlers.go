package blogfront

import (
	"errors"
	"net/http"
	"path/filepath"

	"github.com/labstack/echo/v4"
)

// requestPath is the path handed to views for active-route matching.
func requestPath(c echo.Context) string {
	return c.Request().URL.Path
}

func (a *App) notFound(c echo.Context) error {
	return RenderStatus(c, http.StatusNotFound, a.Views.NotFound(requestPath(c)))
}

func (a *App) handleHome(c echo.Context) error {
	tag := c.QueryParam("tag")
	posts, err := a.Cache.ListPosts(tag)
	if err != nil {
		return err
	}
	tags, err := a.Cache.ListTags()
	if err != nil {
		return err
	}
	return Render(c, a.Views.Home(requestPath(c), posts, tag, tags))
}

func (a *App) handlePost(c echo.Context) error {
	slug := c.Param("slug")
	post, err := a.Cache.GetPost(slug)
	if errors.Is(err, ErrNotFound) {
		return a.notFound(c)
	}
	if err != nil {
		return err
	}
	adj, err := a.Cache.Adjacent(slug)
	if err != nil {
		return err
	}
	return Render(c, a.Views.Post(requestPath(c), post, adj))
}

func (a *App) handleProjects(c echo.Context) error {
	posts, err := a.Cache.ListByCategory(a.Config.ProjectsCategory)
	if err != nil {
		return err
	}
	return Render(c, a.Views.Projects(requestPath(c), posts))
}

func (a *App) handleAbout(c echo.Context) error {
	return Render(c, a.Views.About(requestPath(c)))
}

// serveStatic serves route from the static directory, or 404 when the site
// does not ship that file.
func (a *App) serveStatic(route string) echo.HandlerFunc {
	file := filepath.Join(a.staticDir, filepath.FromSlash(route))
	return func(c echo.Context) error {
		return c.File(file)
	}
}

func redirectTo(target string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Redirect(http.StatusMovedPermanently, target)
	}
}

// httpErrorHandler renders the NotFound and ServerError views and leaves
// every other status to Echo.
func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
	}
	switch {
	case code == http.StatusNotFound:
		_ = a.notFound(c)
	case code >= http.StatusInternalServerError:
		c.Logger().Errorf("%s %s: %v", c.Request().Method, requestPath(c), err)
		_ = RenderStatus(c, code, a.Views.ServerError(requestPath(c)))
	default:
		a.Echo.DefaultHTTPErrorHandler(err, c)
	}
}
