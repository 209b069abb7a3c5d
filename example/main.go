package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/pthm/hxajax"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	cdn := flag.Bool("cdn", false, "load the client library from cdnjs")
	legacy := flag.Bool("legacy", false, "emit legacy Sys.Mvc script instead of data-ajax attributes")
	always := flag.Bool("always", false, "inject the client script on every page")
	scripts := flag.String("scripts", "./static", "directory holding jquery.unobtrusive-ajax.min.js")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	opts := []hxajax.Option{
		hxajax.WithLogger(logger),
		hxajax.WithMetrics(hxajax.NewMetrics()),
	}
	if *cdn {
		opts = append(opts, hxajax.WithCDN())
	}
	if *legacy {
		opts = append(opts, hxajax.WithLegacyScript())
	}
	if *always {
		opts = append(opts, hxajax.WithAlwaysInject())
	}
	cfg := hxajax.NewConfig(opts...)

	store := NewStore()
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		hxajax.Render(w, r, Layout(store))
	})
	mux.HandleFunc("GET /about", func(w http.ResponseWriter, r *http.Request) {
		hxajax.Render(w, r, AboutPage())
	})

	list := func(w http.ResponseWriter, r *http.Request) {
		hxajax.Render(w, r, TodoList(store))
	}
	mux.Handle("POST /todos", hxajax.AjaxOnly(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if title := r.FormValue("title"); title != "" {
			store.Add(title)
		}
		list(w, r)
	})))
	mux.Handle("POST /todos/{id}/toggle", hxajax.AjaxOnly(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !store.Toggle(r.PathValue("id")) {
			http.NotFound(w, r)
			return
		}
		list(w, r)
	})))
	mux.Handle("POST /todos/{id}/delete", hxajax.AjaxOnly(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !store.Delete(r.PathValue("id")) {
			http.NotFound(w, r)
			return
		}
		list(w, r)
	})))

	mux.Handle(hxajax.ScriptPrefix, hxajax.ScriptHandler(os.DirFS(*scripts)))
	mux.Handle("GET /metrics", promhttp.Handler())

	logger.Info("starting server", "addr", *addr, "unobtrusive", cfg.Unobtrusive(), "source", cfg.Source().String())
	if err := http.ListenAndServe(*addr, cfg.Middleware(mux)); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
