package hxajax

import "testing"

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Source() != SourceLocal {
		t.Errorf("Source() = %v, want local", cfg.Source())
	}
	if cfg.Injection() != InjectIfNeeded {
		t.Errorf("Injection() = %v, want if-needed", cfg.Injection())
	}
	if !cfg.Unobtrusive() {
		t.Error("Unobtrusive() = false, want true")
	}
	if cfg.LocalScriptPath() != DefaultLocalScriptPath {
		t.Errorf("LocalScriptPath() = %q", cfg.LocalScriptPath())
	}
}

func TestConfigOptions(t *testing.T) {
	cfg := NewConfig(
		WithCDN(),
		WithAlwaysInject(),
		WithLegacyScript(),
		WithLocalScriptPath("/js/ajax.js"),
		WithLogger(nil),
	)

	if cfg.Source() != SourceCDN {
		t.Errorf("Source() = %v, want cdn", cfg.Source())
	}
	if cfg.Injection() != InjectAlways {
		t.Errorf("Injection() = %v, want always", cfg.Injection())
	}
	if cfg.Unobtrusive() {
		t.Error("Unobtrusive() = true, want false")
	}
	if cfg.LocalScriptPath() != "/js/ajax.js" {
		t.Errorf("LocalScriptPath() = %q", cfg.LocalScriptPath())
	}
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{SourceLocal.String(), "local"},
		{SourceCDN.String(), "cdn"},
		{ScriptSource(9).String(), "unknown"},
		{InjectIfNeeded.String(), "if-needed"},
		{InjectAlways.String(), "always"},
		{InjectMode(9).String(), "unknown"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}
