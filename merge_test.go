package hxajax

import (
	"errors"
	"reflect"
	"testing"

	"github.com/a-h/templ"
)

func TestMergeAttributesConflictPolicy(t *testing.T) {
	primary := map[string]any{"class": "a"}
	secondary := map[string]any{"class": "b"}

	tests := []struct {
		name    string
		replace bool
		expect  string
	}{
		{"primary wins by default", false, "a"},
		{"secondary wins with replace", true, "b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged, err := MergeAttributes(primary, secondary, tt.replace)
			if err != nil {
				t.Fatal(err)
			}
			if v, _ := merged.Get("class"); v != tt.expect {
				t.Errorf("class = %v, want %q", v, tt.expect)
			}
			if len(merged) != 1 {
				t.Errorf("len = %d, want 1", len(merged))
			}
		})
	}
}

func TestMergeAttributesOrder(t *testing.T) {
	primary := Attrs{{Name: "id", Value: "x"}, {Name: "class", Value: "btn"}}
	secondary := Attrs{{Name: "data-ajax", Value: "true"}, {Name: "class", Value: "ignored"}, {Name: "title", Value: "t"}}

	merged, err := MergeAttributes(primary, secondary, false)
	if err != nil {
		t.Fatal(err)
	}

	expect := Attrs{
		{Name: "id", Value: "x"},
		{Name: "class", Value: "btn"},
		{Name: "data-ajax", Value: "true"},
		{Name: "title", Value: "t"},
	}
	if !reflect.DeepEqual(merged, expect) {
		t.Errorf("MergeAttributes() = %v, want %v", merged, expect)
	}
}

func TestMergeAttributesDoesNotMutateSources(t *testing.T) {
	primary := Attrs{{Name: "class", Value: "a"}}
	secondary := Attrs{{Name: "class", Value: "b"}}

	if _, err := MergeAttributes(primary, secondary, true); err != nil {
		t.Fatal(err)
	}
	if v, _ := primary.Get("class"); v != "a" {
		t.Errorf("primary mutated: class = %v", v)
	}
}

func TestMergeAttributesSourceTypes(t *testing.T) {
	type linkAttrs struct {
		Class  string `msgpack:"class"`
		DataID int    `msgpack:"data_id"`
		Title  string `msgpack:"title,omitempty"`
	}

	tests := []struct {
		name   string
		src    any
		expect map[string]string
	}{
		{"nil", nil, map[string]string{}},
		{"Attrs", Attrs{{Name: "id", Value: "a"}}, map[string]string{"id": "a"}},
		{"templ.Attributes", templ.Attributes{"id": "a", "rel": "nofollow"}, map[string]string{"id": "a", "rel": "nofollow"}},
		{"map[string]string", map[string]string{"id": "a"}, map[string]string{"id": "a"}},
		{"struct", linkAttrs{Class: "btn", DataID: 7}, map[string]string{"class": "btn", "data-id": "7"}},
		{"struct pointer", &linkAttrs{Class: "btn", DataID: 300, Title: "t"}, map[string]string{"class": "btn", "data-id": "300", "title": "t"}},
		{"nil struct pointer", (*linkAttrs)(nil), map[string]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged, err := MergeAttributes(tt.src, nil, false)
			if err != nil {
				t.Fatalf("MergeAttributes() error: %v", err)
			}
			if len(merged) != len(tt.expect) {
				t.Fatalf("MergeAttributes() = %v, want %v", merged, tt.expect)
			}
			for name, want := range tt.expect {
				v, ok := merged.Get(name)
				if !ok {
					t.Errorf("missing %q", name)
					continue
				}
				if got := formatValue(v); got != want {
					t.Errorf("%s = %q, want %q", name, got, want)
				}
			}
		})
	}
}

func TestMergeAttributesStructFieldOrder(t *testing.T) {
	src := struct {
		Zeta  string `msgpack:"zeta"`
		Alpha string `msgpack:"alpha"`
	}{Zeta: "z", Alpha: "a"}

	merged, err := MergeAttributes(src, nil, false)
	if err != nil {
		t.Fatal(err)
	}
	names := merged.Names()
	if !reflect.DeepEqual(names, []string{"zeta", "alpha"}) {
		t.Errorf("Names() = %v, want [zeta alpha]", names)
	}
}

func TestMergeAttributesMapOrderIsSorted(t *testing.T) {
	merged, err := MergeAttributes(map[string]any{"b": "2", "c": "3", "a": "1"}, nil, false)
	if err != nil {
		t.Fatal(err)
	}
	if names := merged.Names(); !reflect.DeepEqual(names, []string{"a", "b", "c"}) {
		t.Errorf("Names() = %v, want [a b c]", names)
	}
}

func TestMergeAttributesUnsupported(t *testing.T) {
	for _, src := range []any{42, "class=a", []string{"a"}} {
		_, err := MergeAttributes(src, nil, false)
		if !errors.Is(err, ErrUnsupportedAttributes) {
			t.Errorf("MergeAttributes(%T) error = %v, want ErrUnsupportedAttributes", src, err)
		}

		_, err = MergeAttributes(nil, src, false)
		if !errors.Is(err, ErrUnsupportedAttributes) {
			t.Errorf("MergeAttributes(nil, %T) error = %v, want ErrUnsupportedAttributes", src, err)
		}
	}
}
