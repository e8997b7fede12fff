package blogfront

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

const adminRoot = "/admin/"

// errInvalidForm is shown back to the editor instead of failing the request.
type errInvalidForm string

func (e errInvalidForm) Error() string { return string(e) }

// requireAdmin sends visitors without an admin session to the login page.
func requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !IsAdmin(c) {
			return c.Redirect(http.StatusSeeOther, adminRoot)
		}
		return next(c)
	}
}

func (a *App) setupAdminRoutes() {
	e := a.Echo
	e.GET(adminRoot, a.handleAdmin)
	e.POST(adminRoot+"login/", a.handleAdminLogin)
	e.POST(adminRoot+"logout/", handleAdminLogout)

	g := e.Group("/admin", requireAdmin)
	g.GET("/post/:slug/", a.handleAdminPost)
	g.POST("/save/", a.handleAdminSave)
	g.DELETE("/post/:slug/", a.handleAdminDelete)
	g.GET("/images/", a.handleImageList)
	g.POST("/images/upload/", a.handleImageUpload)
	g.DELETE("/images/:filename/", a.handleImageDelete)
}

func (a *App) handleAdmin(c echo.Context) error {
	if IsAdmin(c) {
		return a.renderAdminDashboard(c, c.QueryParam("msg"))
	}
	return Render(c, a.Views.AdminLogin(false, CsrfToken(c)))
}

func (a *App) handleAdminLogin(c echo.Context) error {
	ip := c.RealIP()
	if !a.loginLimiter.Check(ip) {
		c.Logger().Warnf("login rate limit reached for %s", ip)
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	given := []byte(c.FormValue("password"))
	if subtle.ConstantTimeCompare(given, []byte(a.Config.AdminPassword)) != 1 {
		a.loginLimiter.Record(ip)
		return Render(c, a.Views.AdminLogin(true, CsrfToken(c)))
	}
	if err := saveAdminSession(c, true); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, adminRoot)
}

func handleAdminLogout(c echo.Context) error {
	if err := saveAdminSession(c, false); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, adminRoot)
}

func (a *App) handleAdminPost(c echo.Context) error {
	post, err := a.Store.GetPostAny(c.Param("slug"))
	switch {
	case errors.Is(err, ErrNotFound):
		return c.NoContent(http.StatusNotFound)
	case err != nil:
		return err
	}
	return Render(c, a.Views.AdminFormPartial(post, CsrfToken(c)))
}

func (a *App) handleAdminSave(c echo.Context) error {
	post, err := postFromForm(c.FormValue)
	if err != nil {
		return c.Redirect(http.StatusSeeOther, adminRoot+"?msg="+url.QueryEscape(err.Error()))
	}
	if err := a.Store.SavePost(post); err != nil {
		return err
	}
	a.Cache.Invalidate()
	return a.renderAdminDashboard(c, "saved")
}

func (a *App) handleAdminDelete(c echo.Context) error {
	if err := a.Store.DeletePost(c.Param("slug")); err != nil {
		return err
	}
	a.Cache.Invalidate()
	return a.renderAdminDashboard(c, "deleted")
}

func (a *App) renderAdminDashboard(c echo.Context, msg string) error {
	posts, err := a.Store.ListAllPosts()
	if err != nil {
		return err
	}
	return Render(c, a.Views.AdminDashboard(posts, msg, CsrfToken(c)))
}

// postFromForm builds a post from the editor fields. The slug falls back to
// the slugified title and the date to today.
func postFromForm(field func(string) string) (BlogPost, error) {
	get := func(name string) string { return strings.TrimSpace(field(name)) }

	p := BlogPost{
		Title:     get("title"),
		Slug:      get("slug"),
		Date:      get("date"),
		Category:  get("category"),
		Tags:      FilterEmpty(strings.Split(field("tags"), ",")),
		Summary:   field("summary"),
		Content:   field("content"),
		Cover:     get("cover"),
		Published: field("published") != "",
	}
	if p.Slug == "" {
		p.Slug = Slugify(p.Title)
	}
	if p.Slug == "" {
		return BlogPost{}, errInvalidForm("Slug is required. Add a title or slug.")
	}
	if p.Date == "" {
		p.Date = time.Now().Format(time.DateOnly)
	}
	if _, err := time.Parse(time.DateOnly, p.Date); err != nil {
		return BlogPost{}, errInvalidForm("Invalid date format. Use YYYY-MM-DD.")
	}
	p.Link = PostLink(p.Slug)
	return p, nil
}
