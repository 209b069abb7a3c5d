package hxajax

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestIsAjaxRequest(t *testing.T) {
	tests := []struct {
		name   string
		header string
		set    bool
		expect bool
	}{
		{"XMLHttpRequest", "XMLHttpRequest", true, true},
		{"without header", "", false, false},
		{"lowercase value", "xmlhttprequest", true, false},
		{"uppercase value", "XMLHTTPREQUEST", true, false},
		{"substring", "XMLHttpRequest2", true, false},
		{"other value", "fetch", true, false},
		{"empty value", "", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.set {
				req.Header.Set("X-Requested-With", tt.header)
			}

			result, err := IsAjaxRequest(req)
			if err != nil {
				t.Fatalf("IsAjaxRequest() error: %v", err)
			}
			if result != tt.expect {
				t.Errorf("IsAjaxRequest() = %v, want %v", result, tt.expect)
			}
		})
	}
}

func TestIsAjaxRequestNil(t *testing.T) {
	if _, err := IsAjaxRequest(nil); !IsInvalidArgument(err) {
		t.Errorf("IsAjaxRequest(nil) error = %v, want ErrInvalidArgument", err)
	}
}

func TestAjaxOnly(t *testing.T) {
	h := AjaxOnly(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/partial", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("plain request status = %d, want %d", rec.Code, http.StatusNotFound)
	}

	req = httptest.NewRequest(http.MethodGet, "/partial", nil)
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Errorf("ajax request status = %d, want %d", rec.Code, http.StatusNoContent)
	}
}

func TestRenderSetsContentType(t *testing.T) {
	cfg := NewConfig(WithAlwaysInject())
	h := cfg.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := Render(w, r, Script()); err != nil {
			t.Fatal(err)
		}
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
	if rec.Body.String() != localTag {
		t.Errorf("body = %q, want %q", rec.Body.String(), localTag)
	}
}
