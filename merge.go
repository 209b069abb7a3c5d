package hxajax

import (
	"bytes"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/a-h/templ"
	"github.com/vmihailenco/msgpack/v5"
)

// MergeAttributes combines two attribute sources into one ordered set.
//
// Each source may be nil, Attrs, templ.Attributes, map[string]any,
// map[string]string, or a struct (or pointer to struct). Structs are
// read field by field through msgpack, so `msgpack:"name,omitempty"` tags
// pick the attribute name and drop zero values; underscores in names
// become dashes:
//
//	struct {
//	    Class  string `msgpack:"class"`
//	    DataID int    `msgpack:"data_id"`
//	}
//	// class="..." data-id="..."
//
// Map sources are walked in sorted key order.
//
// When both sources define a name, primary wins unless replace is set, in
// which case secondary wins. "class" follows the same rule; values are
// never concatenated. The result lists primary names first, then names
// only secondary defines.
func MergeAttributes(primary, secondary any, replace bool) (Attrs, error) {
	p, err := toAttrs(primary)
	if err != nil {
		return nil, fmt.Errorf("primary attributes: %w", err)
	}
	s, err := toAttrs(secondary)
	if err != nil {
		return nil, fmt.Errorf("secondary attributes: %w", err)
	}
	return mergeAttrs(p, s, replace), nil
}

func mergeAttrs(primary, secondary Attrs, replace bool) Attrs {
	merged := make(Attrs, 0, len(primary)+len(secondary))
	for _, attr := range primary {
		if replace {
			merged.Set(attr.Name, attr.Value)
		} else {
			merged.Add(attr.Name, attr.Value)
		}
	}
	for _, attr := range secondary {
		if replace {
			merged.Set(attr.Name, attr.Value)
		} else {
			merged.Add(attr.Name, attr.Value)
		}
	}
	return merged
}

// toAttrs converts a loosely-typed attribute source into Attrs.
func toAttrs(src any) (Attrs, error) {
	switch v := src.(type) {
	case nil:
		return nil, nil
	case Attrs:
		return v.Clone(), nil
	case *Attrs:
		if v == nil {
			return nil, nil
		}
		return v.Clone(), nil
	case templ.Attributes:
		return fromMap(map[string]any(v)), nil
	case map[string]any:
		return fromMap(v), nil
	case map[string]string:
		m := make(map[string]any, len(v))
		for k, s := range v {
			m[k] = s
		}
		return fromMap(m), nil
	}

	rv := reflect.ValueOf(src)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedAttributes, src)
	}
	return fromStruct(rv.Interface())
}

func fromMap(m map[string]any) Attrs {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make(Attrs, 0, len(keys))
	for _, k := range keys {
		attrs.Set(k, m[k])
	}
	return attrs
}

// fromStruct encodes v with msgpack and walks the resulting map in field
// order, so attribute order follows struct declaration order.
func fromStruct(v any) (Attrs, error) {
	packed, err := msgpack.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %T: %v", ErrUnsupportedAttributes, v, err)
	}

	dec := msgpack.NewDecoder(bytes.NewReader(packed))
	n, err := dec.DecodeMapLen()
	if err != nil {
		return nil, fmt.Errorf("%w: %T: %v", ErrUnsupportedAttributes, v, err)
	}

	attrs := make(Attrs, 0, max(n, 0))
	for i := 0; i < n; i++ {
		key, err := dec.DecodeString()
		if err != nil {
			return nil, fmt.Errorf("%w: %T: %v", ErrUnsupportedAttributes, v, err)
		}
		value, err := dec.DecodeInterface()
		if err != nil {
			return nil, fmt.Errorf("%w: %T: %v", ErrUnsupportedAttributes, v, err)
		}
		attrs.Set(strings.ReplaceAll(key, "_", "-"), value)
	}
	return attrs, nil
}
