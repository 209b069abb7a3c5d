package hxajax

import (
	"io"
	"log/slog"
)

// ScriptSource selects where the client library is loaded from.
type ScriptSource int

const (
	// SourceLocal serves the script from this application (see ScriptHandler).
	SourceLocal ScriptSource = iota

	// SourceCDN loads the script from cdnjs with subresource integrity.
	SourceCDN
)

func (s ScriptSource) String() string {
	switch s {
	case SourceLocal:
		return "local"
	case SourceCDN:
		return "cdn"
	default:
		return "unknown"
	}
}

// InjectMode controls when the bootstrap script tag is rendered.
type InjectMode int

const (
	// InjectIfNeeded renders the tag only when the request built at least
	// one asynchronous element.
	InjectIfNeeded InjectMode = iota

	// InjectAlways renders the tag on every page.
	InjectAlways
)

func (m InjectMode) String() string {
	switch m {
	case InjectIfNeeded:
		return "if-needed"
	case InjectAlways:
		return "always"
	default:
		return "unknown"
	}
}

// DefaultLocalScriptPath is where SourceLocal expects the client library.
const DefaultLocalScriptPath = "/scripts/jquery.unobtrusive-ajax.min.js"

// Config is the process-wide ajax configuration.
//
// Build it once during startup and share the pointer with every request;
// it is never modified afterwards, so no locking is needed.
//
//	cfg := hxajax.NewConfig(hxajax.WithCDN())
//	mux.Handle("/", cfg.Middleware(pages))
type Config struct {
	source          ScriptSource
	injection       InjectMode
	unobtrusive     bool
	localScriptPath string
	logger          *slog.Logger
	metrics         *Metrics
}

// Option configures a Config.
type Option func(*Config)

// WithSource sets where the client library is loaded from.
func WithSource(s ScriptSource) Option {
	return func(c *Config) {
		c.source = s
	}
}

// WithCDN loads the client library from cdnjs.
func WithCDN() Option {
	return WithSource(SourceCDN)
}

// WithInjection sets when the bootstrap script tag is rendered.
func WithInjection(m InjectMode) Option {
	return func(c *Config) {
		c.injection = m
	}
}

// WithAlwaysInject renders the script tag on every page.
func WithAlwaysInject() Option {
	return WithInjection(InjectAlways)
}

// WithLegacyScript switches from data-ajax attributes to inline Sys.Mvc
// event handlers.
func WithLegacyScript() Option {
	return func(c *Config) {
		c.unobtrusive = false
	}
}

// WithLocalScriptPath overrides DefaultLocalScriptPath.
func WithLocalScriptPath(path string) Option {
	return func(c *Config) {
		c.localScriptPath = path
	}
}

// WithLogger sets the logger for injection decisions and attribute
// conversion failures. Logging is discarded by default.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.logger = logger
	}
}

// WithMetrics records element and script tag counts.
func WithMetrics(m *Metrics) Option {
	return func(c *Config) {
		c.metrics = m
	}
}

// NewConfig creates a configuration with the unobtrusive compiler enabled,
// the script served locally and injected only when needed.
func NewConfig(opts ...Option) *Config {
	c := &Config{
		source:          SourceLocal,
		injection:       InjectIfNeeded,
		unobtrusive:     true,
		localScriptPath: DefaultLocalScriptPath,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c
}

// unconfigured mirrors a process that never called NewConfig: legacy
// script, local source, inject if needed.
var unconfigured = &Config{
	source:          SourceLocal,
	injection:       InjectIfNeeded,
	localScriptPath: DefaultLocalScriptPath,
	logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
}

func (c *Config) orDefault() *Config {
	if c == nil {
		return unconfigured
	}
	return c
}

// Source returns where the client library is loaded from.
func (c *Config) Source() ScriptSource {
	return c.orDefault().source
}

// Injection returns when the bootstrap script tag is rendered.
func (c *Config) Injection() InjectMode {
	return c.orDefault().injection
}

// Unobtrusive reports whether data-ajax attributes are emitted instead of
// legacy inline script.
func (c *Config) Unobtrusive() bool {
	return c.orDefault().unobtrusive
}

// LocalScriptPath returns the script URL used with SourceLocal.
func (c *Config) LocalScriptPath() string {
	return c.orDefault().localScriptPath
}
