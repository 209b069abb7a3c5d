// Package hxajax lets server-rendered Go views declare asynchronous links
// and forms without hand-written script.
//
// An Options value describes one interaction: the URL to call, the element
// to update, how to insert the response, and which client-side handlers to
// run. hxajax compiles it into either declarative data-ajax attributes,
// read by the jquery-unobtrusive-ajax client library, or a legacy inline
// Sys.Mvc script, depending on the Config.
//
// # Compiling options
//
//	opts := &hxajax.Options{
//	    URL:            "/todos",
//	    HTTPMethod:     "Post",
//	    UpdateTargetID: "todo-list",
//	    OnSuccess:      "todosUpdated",
//	}
//	opts.Attrs()
//	// data-ajax="true" data-ajax-url="/todos" data-ajax-method="Post"
//	// data-ajax-success="todosUpdated" data-ajax-cache="true"
//	// data-ajax-update="#todo-list" data-ajax-mode="replace"
//
//	opts.Script(hxajax.LinkOnClickFormat)
//	// Sys.Mvc.AsyncHyperlink.handleClick(this, new Sys.UI.DomEvent(event), { insertionMode: ... })
//
// Attribute order is fixed and part of the output contract, so rendered
// markup is reproducible.
//
// # Configuration
//
// Build one Config at startup and share it:
//
//	cfg := hxajax.NewConfig(hxajax.WithCDN())
//
// NewConfig enables the unobtrusive compiler, serves the client script
// locally and injects it only on pages that need it. Config is never
// modified after construction.
//
// # Script injection
//
// Each request gets a Scope. Building an asynchronous element through the
// Scope marks the page as needing the client script; at the end of the
// layout, Scope.ScriptTag (or the Script component) renders the
// <script> reference only when needed, or always under InjectAlways.
//
//	mux.Handle("/", cfg.Middleware(pages))
//
//	// layout.templ
//	@hxajax.ActionLink("Reload", "/todos", opts, nil)
//	@hxajax.Script()
//
// # Requests
//
// IsAjaxRequest checks the X-Requested-With header the client library
// sends, and AjaxOnly hides handlers from full-page navigation.
package hxajax
