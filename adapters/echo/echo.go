// Package hxajaxecho provides Echo framework integration for hxajax.
//
// Attach a script scope to every request, then render pages with the
// hxajax components:
//
//	cfg := hxajax.NewConfig()
//	e := echo.New()
//	e.Use(hxajaxecho.Middleware(cfg))
//	hxajaxecho.MountScripts(e, scriptsFS)
//
// Restrict partial endpoints to asynchronous requests:
//
//	e.GET("/todos/list", listTodos, hxajaxecho.AjaxOnly())
package hxajaxecho

import (
	"io/fs"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/pthm/hxajax"
)

// Middleware attaches a fresh hxajax.Scope to each request's context.
func Middleware(cfg *hxajax.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			c.SetRequest(req.WithContext(hxajax.WithScope(req.Context(), cfg.NewScope())))
			return next(c)
		}
	}
}

// Scope returns the request's script scope, or nil outside Middleware.
func Scope(c echo.Context) *hxajax.Scope {
	return hxajax.ScopeFromContext(c.Request().Context())
}

// IsAjax reports whether the request carries X-Requested-With: XMLHttpRequest.
func IsAjax(c echo.Context) bool {
	ok, _ := hxajax.IsAjaxRequest(c.Request())
	return ok
}

// AjaxOnly responds 404 to requests that are not asynchronous.
func AjaxOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !IsAjax(c) {
				return echo.ErrNotFound
			}
			return next(c)
		}
	}
}

// MountScripts serves the client library under hxajax.ScriptPrefix.
func MountScripts(e *echo.Echo, fsys fs.FS) {
	h := echo.WrapHandler(hxajax.ScriptHandler(fsys))
	e.GET(hxajax.ScriptPrefix+"*", h)
	e.HEAD(hxajax.ScriptPrefix+"*", h)
}

// Render writes a templ component to the Echo response.
//
//	func handler(c echo.Context) error {
//	    return hxajaxecho.Render(c, http.StatusOK, page())
//	}
func Render(c echo.Context, status int, component templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return component.Render(c.Request().Context(), c.Response())
}

