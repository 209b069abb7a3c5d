package hxajax

import "errors"

// Sentinel errors for option and markup operations.
var (
	ErrInvalidArgument       = errors.New("hxajax: invalid argument")
	ErrUnsupportedAttributes = errors.New("hxajax: unsupported attribute source")
	ErrNoScope               = errors.New("hxajax: no script scope in context")
)

// IsInvalidArgument checks if err is an invalid-argument error.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsNoScope checks if err reports a missing request scope.
func IsNoScope(err error) bool {
	return errors.Is(err, ErrNoScope)
}
