package hxajax

import (
	"fmt"
	"strconv"
	"strings"
)

// InsertionMode defines how the response fragment is merged into the
// update target.
//
// The zero value is InsertReplace. Values outside the four constants below
// are rejected by Options.SetInsertionMode.
type InsertionMode int

const (
	// InsertReplace replaces the contents of the target element.
	// This is the default mode.
	InsertReplace InsertionMode = iota

	// InsertBefore inserts the response before the target's existing contents.
	InsertBefore

	// InsertAfter inserts the response after the target's existing contents.
	InsertAfter

	// InsertReplaceWith replaces the target element itself.
	// Only the unobtrusive client library understands this mode.
	InsertReplaceWith
)

// Valid reports whether m is one of the four insertion modes.
func (m InsertionMode) Valid() bool {
	switch m {
	case InsertReplace, InsertBefore, InsertAfter, InsertReplaceWith:
		return true
	default:
		return false
	}
}

// Unobtrusive returns the data-ajax-mode value for m.
func (m InsertionMode) Unobtrusive() string {
	switch m {
	case InsertReplace:
		return "replace"
	case InsertBefore:
		return "before"
	case InsertAfter:
		return "after"
	case InsertReplaceWith:
		return "replace-with"
	default:
		return strconv.Itoa(int(m))
	}
}

// Legacy returns the insertionMode expression used by the legacy
// Sys.Mvc script. InsertReplaceWith has no symbolic form and falls back
// to its numeric value.
func (m InsertionMode) Legacy() string {
	switch m {
	case InsertReplace:
		return "Sys.Mvc.InsertionMode.replace"
	case InsertBefore:
		return "Sys.Mvc.InsertionMode.insertBefore"
	case InsertAfter:
		return "Sys.Mvc.InsertionMode.insertAfter"
	case InsertReplaceWith:
		return strconv.Itoa(int(m))
	default:
		return strconv.Itoa(int(m))
	}
}

// String returns the Go-style name of the mode.
func (m InsertionMode) String() string {
	switch m {
	case InsertReplace:
		return "Replace"
	case InsertBefore:
		return "InsertBefore"
	case InsertAfter:
		return "InsertAfter"
	case InsertReplaceWith:
		return "ReplaceWith"
	default:
		return "InsertionMode(" + strconv.Itoa(int(m)) + ")"
	}
}

// ParseInsertionMode parses either the data-ajax-mode value ("replace",
// "before", "after", "replace-with") or the Go-style name ("InsertBefore").
// Matching is case-insensitive.
func ParseInsertionMode(s string) (InsertionMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "replace":
		return InsertReplace, nil
	case "before", "insertbefore":
		return InsertBefore, nil
	case "after", "insertafter":
		return InsertAfter, nil
	case "replace-with", "replacewith":
		return InsertReplaceWith, nil
	}
	return InsertReplace, fmt.Errorf("%w: unknown insertion mode %q", ErrInvalidArgument, s)
}
