package hxajax

import (
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// Attr is a single HTML attribute.
type Attr struct {
	Name  string
	Value any
}

// Attrs is an ordered attribute set with unique, case-preserved names.
//
// Values are strings, except data-ajax-loading-duration which holds an int.
// Order is significant: the compilers emit attributes in a fixed order and
// rendering preserves it, so output is byte-for-byte reproducible.
//
// Use Items or Map to hand an Attrs to templ templates:
//
//	<a href={ url } { attrs.Map()... }>
type Attrs []Attr

// Get returns the value for name and whether it is present.
func (a Attrs) Get(name string) (any, bool) {
	for _, attr := range a {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return nil, false
}

// Has reports whether name is present.
func (a Attrs) Has(name string) bool {
	_, ok := a.Get(name)
	return ok
}

// Set sets name to value, replacing an existing value in place or
// appending a new attribute.
func (a *Attrs) Set(name string, value any) {
	for i := range *a {
		if (*a)[i].Name == name {
			(*a)[i].Value = value
			return
		}
	}
	*a = append(*a, Attr{Name: name, Value: value})
}

// Add appends name only when it is not already present.
// It reports whether the attribute was added.
func (a *Attrs) Add(name string, value any) bool {
	if a.Has(name) {
		return false
	}
	*a = append(*a, Attr{Name: name, Value: value})
	return true
}

// Names returns the attribute names in order.
func (a Attrs) Names() []string {
	names := make([]string, len(a))
	for i, attr := range a {
		names[i] = attr.Name
	}
	return names
}

// Clone returns a copy that shares no backing array with a.
func (a Attrs) Clone() Attrs {
	if a == nil {
		return nil
	}
	out := make(Attrs, len(a))
	copy(out, a)
	return out
}

// Items returns the attributes as templ key/value pairs, in order.
func (a Attrs) Items() []templ.KeyValue[string, any] {
	items := make([]templ.KeyValue[string, any], len(a))
	for i, attr := range a {
		items[i] = templ.KeyValue[string, any]{Key: attr.Name, Value: attr.Value}
	}
	return items
}

// Map converts the set into templ.Attributes for spreading in templates.
// Order is lost; templ sorts map attributes when rendering.
func (a Attrs) Map() templ.Attributes {
	m := make(templ.Attributes, len(a))
	for _, attr := range a {
		m[attr.Name] = attr.Value
	}
	return m
}

// WriteTo renders the attributes as ` name="value"` pairs in order.
// Values are HTML-escaped.
func (a Attrs) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, attr := range a {
		n, err := io.WriteString(w, " "+attr.Name+`="`+templ.EscapeString(formatValue(attr.Value))+`"`)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// formatValue renders an attribute value as text.
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case bool:
		return strconv.FormatBool(val)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
