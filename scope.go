package hxajax

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
)

// CDNScriptTag loads jquery-unobtrusive-ajax 3.2.6 from cdnjs.
const CDNScriptTag = `<script src="https://cdnjs.cloudflare.com/ajax/libs/jquery-ajax-unobtrusive/3.2.6/jquery.unobtrusive-ajax.min.js" integrity="sha512-DedNBWPF0hLGUPNbCYfj8qjlEnNE92Fqn7xd3Sscfu7ipy7Zu33unHdugqRD3c4Vj7/yLv+slqZhMls/4Oc7Zg==" crossorigin="anonymous"></script>`

// Element kinds, used as metric labels.
const (
	elementLink = "link"
	elementForm = "form"
)

// Scope tracks whether a single request emitted asynchronous markup.
//
// A Scope starts out not needing the client script. The first successful
// LinkAttrs or FormAttrs call marks it as needed; later calls keep it
// that way. At the end of the page, ScriptTag decides whether to render
// the bootstrap <script> reference.
//
// Create one Scope per request with Config.NewScope (or Config.Middleware)
// and drop it with the request. A Scope is not safe for concurrent use.
type Scope struct {
	cfg    *Config
	needed bool
}

// NewScope starts a script scope for one request.
func (c *Config) NewScope() *Scope {
	return &Scope{cfg: c.orDefault()}
}

// Config returns the configuration the scope was created from.
func (s *Scope) Config() *Config {
	return s.cfg
}

// MarkNeeded records that the page contains asynchronous markup.
func (s *Scope) MarkNeeded() {
	s.needed = true
}

// Needed reports whether asynchronous markup was emitted on this request.
func (s *Scope) Needed() bool {
	return s.needed
}

// LinkAttrs compiles opts for an anchor and merges it with the caller's
// attributes. Caller attributes win on conflicts.
//
// With the unobtrusive compiler the result carries the data-ajax
// attributes; otherwise it carries an onclick handler calling
// Sys.Mvc.AsyncHyperlink.handleClick. A nil opts compiles the defaults.
func (s *Scope) LinkAttrs(opts *Options, htmlAttrs any) (Attrs, error) {
	var ajax Attrs
	if s.cfg.unobtrusive {
		ajax = opts.Attrs()
	} else {
		ajax = Attrs{{Name: "onclick", Value: opts.Script(LinkOnClickFormat)}}
	}
	return s.merge(elementLink, htmlAttrs, ajax)
}

// FormAttrs compiles opts for a form and merges it with the caller's
// attributes. Caller attributes win on conflicts.
//
// With the legacy compiler the result carries onclick and onsubmit
// handlers calling Sys.Mvc.AsyncForm.
func (s *Scope) FormAttrs(opts *Options, htmlAttrs any) (Attrs, error) {
	var ajax Attrs
	if s.cfg.unobtrusive {
		ajax = opts.Attrs()
	} else {
		ajax = Attrs{
			{Name: "onclick", Value: FormOnClickValue},
			{Name: "onsubmit", Value: opts.Script(FormOnSubmitFormat)},
		}
	}
	return s.merge(elementForm, htmlAttrs, ajax)
}

func (s *Scope) merge(element string, htmlAttrs any, ajax Attrs) (Attrs, error) {
	attrs, err := MergeAttributes(htmlAttrs, ajax, false)
	if err != nil {
		s.cfg.logger.Warn("hxajax: caller attributes rejected",
			"element", element,
			"error", err,
		)
		return nil, err
	}
	s.MarkNeeded()
	s.cfg.metrics.observeElement(element, s.cfg.compilerName())
	return attrs, nil
}

// ShouldRenderScript reports whether the bootstrap script tag belongs on
// this page: always under InjectAlways, otherwise only when Needed.
func (s *Scope) ShouldRenderScript() bool {
	switch s.cfg.injection {
	case InjectAlways:
		return true
	case InjectIfNeeded:
		return s.needed
	default:
		return s.needed
	}
}

// ScriptTag returns the bootstrap <script> reference, or "" when the page
// does not need one.
func (s *Scope) ScriptTag() string {
	if !s.ShouldRenderScript() {
		s.cfg.logger.Debug("hxajax: script tag suppressed", "injection", s.cfg.injection.String())
		s.cfg.metrics.observeScript("suppressed")
		return ""
	}
	s.cfg.logger.Debug("hxajax: script tag rendered", "source", s.cfg.source.String())
	s.cfg.metrics.observeScript(s.cfg.source.String())
	return scriptTag(s.cfg)
}

func scriptTag(c *Config) string {
	switch c.source {
	case SourceCDN:
		return CDNScriptTag
	case SourceLocal:
		return `<script src="` + templ.EscapeString(c.localScriptPath) + `"></script>`
	default:
		return `<script src="` + templ.EscapeString(c.localScriptPath) + `"></script>`
	}
}

func (c *Config) compilerName() string {
	if c.unobtrusive {
		return "unobtrusive"
	}
	return "legacy"
}

type scopeKey struct{}

// WithScope returns a context carrying s.
func WithScope(ctx context.Context, s *Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, s)
}

// ScopeFromContext returns the Scope stored in ctx, or nil.
func ScopeFromContext(ctx context.Context) *Scope {
	s, _ := ctx.Value(scopeKey{}).(*Scope)
	return s
}

// Middleware attaches a fresh Scope to every request's context so that
// ActionLink, BeginForm and Script can find it while rendering.
//
//	mux.Handle("/", cfg.Middleware(pages))
func (c *Config) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(WithScope(r.Context(), c.NewScope())))
	})
}

// Script returns a templ component that renders the bootstrap script tag
// for the request's Scope.
//
// Place it at the end of the layout, after every asynchronous element has
// rendered:
//
//	@hxajax.Script()
//
// Renders nothing when the page does not need the script.
func Script() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		s := ScopeFromContext(ctx)
		if s == nil {
			return ErrNoScope
		}
		_, err := io.WriteString(w, s.ScriptTag())
		return err
	})
}
