package blogfront

import (
	"net/http"
	"strings"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	sessionName   = "admin_session"
	sessionMaxAge = 12 * 60 * 60
	csrfField     = "_csrf"
	methodField   = "_method"
	authKey       = "authenticated"
)

// contentSecurityPolicy allows inline styles for the theme variables and
// nothing executable from other origins.
const contentSecurityPolicy = "default-src 'self'; style-src 'self' 'unsafe-inline'; img-src 'self' https: data:; font-src 'self'"

// fileRoutes are served as files and never get a trailing slash.
var fileRoutes = map[string]bool{
	"/sitemap.xml": true,
	"/feed.xml":    true,
	"/robots.txt":  true,
	"/favicon.svg": true,
}

func isAsset(path string) bool {
	return strings.HasPrefix(path, "/public/")
}

func (a *App) setupMiddleware() {
	e := a.Echo
	e.HTTPErrorHandler = a.httpErrorHandler
	e.IPExtractor = echo.ExtractIPFromXFFHeader(
		echo.TrustLoopback(true),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(true),
	)

	// HTML forms can only POST; delete buttons carry the real method.
	e.Pre(middleware.MethodOverrideWithConfig(middleware.MethodOverrideConfig{
		Getter: middleware.MethodFromForm(methodField),
	}))
	e.Use(
		requestLogger(),
		middleware.Recover(),
		middleware.GzipWithConfig(middleware.GzipConfig{
			Level:   5,
			Skipper: func(c echo.Context) bool { return isAsset(c.Request().URL.Path) },
		}),
		middleware.SecureWithConfig(middleware.SecureConfig{
			XSSProtection:         "1; mode=block",
			ContentTypeNosniff:    "nosniff",
			XFrameOptions:         "DENY",
			ReferrerPolicy:        "strict-origin-when-cross-origin",
			ContentSecurityPolicy: contentSecurityPolicy,
			HSTSMaxAge:            365 * 24 * 60 * 60,
		}),
		session.Middleware(a.newSessionStore()),
		a.csrf(),
		trailingSlash(),
		cacheControl,
	)
}

func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			c.Logger().Infof("%s %s -> %d (%s)", v.Method, v.URI, v.Status, v.Latency)
			return nil
		},
	})
}

func (a *App) csrf() echo.MiddlewareFunc {
	return middleware.CSRFWithConfig(middleware.CSRFConfig{
		TokenLookup:    "header:X-CSRF-Token,form:" + csrfField,
		ContextKey:     middleware.DefaultCSRFConfig.ContextKey,
		CookieName:     csrfField,
		CookiePath:     "/",
		CookieSecure:   a.Config.CookieSecure,
		CookieSameSite: http.SameSiteLaxMode,
		ErrorHandler: func(_ error, c echo.Context) error {
			return c.String(http.StatusForbidden, "Forbidden")
		},
	})
}

// trailingSlash redirects page routes to their canonical "/"-terminated form.
func trailingSlash() echo.MiddlewareFunc {
	return middleware.AddTrailingSlashWithConfig(middleware.TrailingSlashConfig{
		RedirectCode: http.StatusMovedPermanently,
		Skipper: func(c echo.Context) bool {
			p := c.Request().URL.Path
			return p == "/blog" || p == "/public" || isAsset(p) || fileRoutes[p]
		},
	})
}

// cachePolicy is the Cache-Control value for a request path.
func cachePolicy(path string) string {
	switch {
	case isAsset(path):
		return "public, max-age=31536000, immutable"
	case strings.HasPrefix(path, "/admin"):
		return "no-store"
	case fileRoutes[path] && path != "/favicon.svg":
		return "public, max-age=86400"
	default:
		return "public, max-age=3600"
	}
}

func cacheControl(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set("Cache-Control", cachePolicy(c.Request().URL.Path))
		return next(c)
	}
}

func (a *App) newSessionStore() *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(a.Config.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		Secure:   a.Config.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// IsAdmin reports whether the request carries an authenticated admin session.
func IsAdmin(c echo.Context) bool {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return false
	}
	ok, _ := sess.Values[authKey].(bool)
	return ok
}

// saveAdminSession marks the session authenticated, or expires it when
// authenticated is false.
func saveAdminSession(c echo.Context, authenticated bool) error {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return err
	}
	if authenticated {
		sess.Values[authKey] = true
	} else {
		delete(sess.Values, authKey)
		sess.Options.MaxAge = -1
	}
	return sess.Save(c.Request(), c.Response())
}

// CsrfToken returns the token the CSRF middleware stored for this request.
func CsrfToken(c echo.Context) string {
	token, _ := c.Get(middleware.DefaultCSRFConfig.ContextKey).(string)
	return token
}
