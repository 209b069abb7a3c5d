package hxajax

import (
	"io/fs"
	"net/http"
)

// ScriptPrefix is the URL prefix ScriptHandler serves files under.
const ScriptPrefix = "/scripts/"

// ScriptHandler serves the client library for SourceLocal.
//
// fsys should contain jquery.unobtrusive-ajax.min.js at its root; the
// application embeds or ships the file itself:
//
//	//go:embed scripts
//	var scripts embed.FS
//
//	sub, _ := fs.Sub(scripts, "scripts")
//	mux.Handle(hxajax.ScriptPrefix, hxajax.ScriptHandler(sub))
func ScriptHandler(fsys fs.FS) http.Handler {
	files := http.StripPrefix(ScriptPrefix[:len(ScriptPrefix)-1], http.FileServer(http.FS(fsys)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		files.ServeHTTP(w, r)
	})
}
