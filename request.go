package hxajax

import (
	"fmt"
	"net/http"

	"github.com/a-h/templ"
)

// RequestedWithHeader and RequestedWithValue identify asynchronous
// requests sent by jQuery and the unobtrusive client library.
const (
	RequestedWithHeader = "X-Requested-With"
	RequestedWithValue  = "XMLHttpRequest"
)

// IsAjaxRequest reports whether r was sent asynchronously.
//
// The X-Requested-With header must equal "XMLHttpRequest" exactly; case
// variants and substrings do not count. A nil request is rejected with
// ErrInvalidArgument.
//
//	ok, err := hxajax.IsAjaxRequest(r)
//	if err == nil && ok {
//	    return partialView()
//	}
//	return fullPageView()
func IsAjaxRequest(r *http.Request) (bool, error) {
	if r == nil {
		return false, fmt.Errorf("%w: nil request", ErrInvalidArgument)
	}
	return r.Header.Get(RequestedWithHeader) == RequestedWithValue, nil
}

// AjaxOnly restricts next to asynchronous requests. Anything else gets a
// 404, as if the route did not exist.
//
//	mux.Handle("/todos/list", hxajax.AjaxOnly(listHandler))
func AjaxOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ok, _ := IsAjaxRequest(r); !ok {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Render writes a templ component to the HTTP response.
//
// Sets Content-Type to text/html and renders with the request's context,
// so components rendered under Config.Middleware see the request Scope.
func Render(w http.ResponseWriter, r *http.Request, component templ.Component) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(r.Context(), w)
}
