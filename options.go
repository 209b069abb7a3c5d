package hxajax

import "fmt"

// Options describes one asynchronous link or form.
//
// The zero value is ready to use: every string is empty and the insertion
// mode is InsertReplace. Options is a transient parameter value; build one
// per element and hand it to Scope.LinkAttrs, Scope.FormAttrs, ActionLink
// or BeginForm.
//
//	opts := &hxajax.Options{
//	    URL:            "/todos/42",
//	    HTTPMethod:     "Post",
//	    Confirm:        "Delete this item?",
//	    UpdateTargetID: "todo-list",
//	}
//	if err := opts.SetInsertionMode(hxajax.InsertAfter); err != nil {
//	    return err
//	}
//
// No field is validated beyond the insertion mode. URLs, handler names and
// element ids pass through verbatim; the client library deals with
// malformed values at runtime.
type Options struct {
	// Confirm is shown in a confirmation window before the request is sent.
	Confirm string

	// HTTPMethod is the request method, e.g. "Get" or "Post".
	HTTPMethod string

	// LoadingElementID is the id of an element shown while the request runs.
	LoadingElementID string

	// LoadingElementDuration is the show/hide animation length in milliseconds.
	// Ignored unless positive and LoadingElementID is set.
	LoadingElementDuration int

	// OnBegin, OnComplete, OnFailure and OnSuccess name client-side
	// functions (or expressions) invoked during the request lifecycle.
	OnBegin    string
	OnComplete string
	OnFailure  string
	OnSuccess  string

	// UpdateTargetID is the id of the element updated with the response.
	UpdateTargetID string

	// URL is the request URL. When empty the client uses the element's
	// href or form action.
	URL string

	insertionMode InsertionMode
}

// InsertionMode returns how the response is inserted into the update target.
func (o *Options) InsertionMode() InsertionMode {
	if o == nil {
		return InsertReplace
	}
	return o.insertionMode
}

// SetInsertionMode sets the insertion mode.
//
// Values other than the four InsertionMode constants are rejected with
// ErrInvalidArgument and leave the current mode unchanged.
func (o *Options) SetInsertionMode(m InsertionMode) error {
	if !m.Valid() {
		return fmt.Errorf("%w: insertion mode %d out of range", ErrInvalidArgument, int(m))
	}
	o.insertionMode = m
	return nil
}

// orDefault returns o, or a zero Options when o is nil.
func (o *Options) orDefault() *Options {
	if o == nil {
		return &Options{}
	}
	return o
}
