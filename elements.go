package hxajax

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// ActionLink returns a templ component rendering an asynchronous anchor:
//
//	<a href="/todos/1" data-ajax="true" ...>Open</a>
//
// The request Scope is read from the render context (see
// Config.Middleware) and is marked as needing the client script. htmlAttrs
// accepts anything MergeAttributes does; caller attributes win over the
// compiled ones except href, which is always the given URL.
//
//	@hxajax.ActionLink("Refresh", "/todos", &hxajax.Options{UpdateTargetID: "todos"}, nil)
func ActionLink(text, href string, opts *Options, htmlAttrs any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		s := ScopeFromContext(ctx)
		if s == nil {
			return ErrNoScope
		}
		attrs, err := s.LinkAttrs(opts, htmlAttrs)
		if err != nil {
			return err
		}
		if err := openTag(w, "a", Attrs{{Name: "href", Value: href}}, attrs); err != nil {
			return err
		}
		if _, err := io.WriteString(w, templ.EscapeString(text)); err != nil {
			return err
		}
		_, err = io.WriteString(w, "</a>")
		return err
	})
}

// BeginForm returns a templ component rendering an asynchronous form that
// posts to action and wraps body:
//
//	<form action="/todos" method="post" data-ajax="true" ...>...</form>
//
// Like ActionLink it marks the request Scope. action and method always
// come from the builder; caller-supplied values for either are ignored.
// body may be nil.
func BeginForm(action string, opts *Options, htmlAttrs any, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		s := ScopeFromContext(ctx)
		if s == nil {
			return ErrNoScope
		}
		attrs, err := s.FormAttrs(opts, htmlAttrs)
		if err != nil {
			return err
		}
		fixed := Attrs{
			{Name: "action", Value: action},
			{Name: "method", Value: "post"},
		}
		if err := openTag(w, "form", fixed, attrs); err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err = io.WriteString(w, "</form>")
		return err
	})
}

// openTag writes <tag fixed... attrs...>, skipping attrs already in fixed.
func openTag(w io.Writer, tag string, fixed, attrs Attrs) error {
	if _, err := io.WriteString(w, "<"+tag); err != nil {
		return err
	}
	out := fixed.Clone()
	for _, attr := range attrs {
		out.Add(attr.Name, attr.Value)
	}
	if _, err := out.WriteTo(w); err != nil {
		return err
	}
	_, err := io.WriteString(w, ">")
	return err
}
