package hxajaxecho

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/labstack/echo/v4"
	"github.com/pthm/hxajax"
)

func TestMiddlewareAttachesScope(t *testing.T) {
	e := echo.New()
	e.Use(Middleware(hxajax.NewConfig()))

	var got *hxajax.Scope
	e.GET("/", func(c echo.Context) error {
		got = Scope(c)
		return c.NoContent(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if got == nil {
		t.Fatal("Scope() returned nil inside middleware")
	}
	if got.Needed() {
		t.Error("fresh scope Needed() = true")
	}
}

func TestRenderPage(t *testing.T) {
	e := echo.New()
	e.Use(Middleware(hxajax.NewConfig()))
	e.GET("/", func(c echo.Context) error {
		if err := Render(c, http.StatusOK, hxajax.ActionLink("Go", "/go", &hxajax.Options{UpdateTargetID: "main"}, nil)); err != nil {
			return err
		}
		return hxajax.Script().Render(c.Request().Context(), c.Response())
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `data-ajax-update="#main"`) {
		t.Errorf("missing update attribute in %q", body)
	}
	if !strings.Contains(body, hxajax.DefaultLocalScriptPath) {
		t.Errorf("missing script tag in %q", body)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); ct != echo.MIMETextHTMLCharsetUTF8 {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestAjaxOnly(t *testing.T) {
	e := echo.New()
	e.GET("/partial", func(c echo.Context) error {
		return c.String(http.StatusOK, "partial")
	}, AjaxOnly())

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"plain request", "", http.StatusNotFound},
		{"ajax request", "XMLHttpRequest", http.StatusOK},
		{"wrong case", "xmlhttprequest", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/partial", nil)
			if tt.header != "" {
				req.Header.Set("X-Requested-With", tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d", rec.Code, tt.status)
			}
		})
	}
}

func TestMountScripts(t *testing.T) {
	e := echo.New()
	MountScripts(e, fstest.MapFS{
		"jquery.unobtrusive-ajax.min.js": &fstest.MapFile{Data: []byte("// js")},
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, hxajax.DefaultLocalScriptPath, nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Body.String() != "// js" {
		t.Errorf("body = %q", rec.Body.String())
	}
}
