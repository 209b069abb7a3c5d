package hxajax

import (
	"bytes"
	"context"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// TestResult holds rendered markup for assertions in tests.
type TestResult struct {
	HTML     string
	Elements []*Element
	Scope    *Scope
}

// Element is a parsed HTML element with its attributes in document order.
type Element struct {
	Tag   string
	Attrs Attrs
	Text  string
}

// Attr returns the string value of an attribute.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.Attrs.Get(name)
	if !ok {
		return "", false
	}
	return formatValue(v), true
}

// TestRender renders a component under a fresh Scope from cfg and parses
// the output.
//
// Use this to check what a layout emits without running an HTTP server:
//
//	result, err := hxajax.TestRender(ctx, cfg, page())
//	link := result.Find("a")
//	if v, _ := link.Attr("data-ajax-update"); v != "#panel" {
//	    t.Fatal("wrong update target")
//	}
//
// If ctx already carries a Scope, that Scope is used instead.
func TestRender(ctx context.Context, cfg *Config, component templ.Component) (*TestResult, error) {
	s := ScopeFromContext(ctx)
	if s == nil {
		s = cfg.NewScope()
		ctx = WithScope(ctx, s)
	}

	var buf bytes.Buffer
	if err := component.Render(ctx, &buf); err != nil {
		return nil, err
	}

	elements, err := ParseElements(buf.String())
	if err != nil {
		return nil, err
	}

	return &TestResult{
		HTML:     buf.String(),
		Elements: elements,
		Scope:    s,
	}, nil
}

// Find returns the first element with the given tag, or nil.
func (r *TestResult) Find(tag string) *Element {
	for _, e := range r.Elements {
		if e.Tag == tag {
			return e
		}
	}
	return nil
}

// FindAll returns every element with the given tag.
func (r *TestResult) FindAll(tag string) []*Element {
	var out []*Element
	for _, e := range r.Elements {
		if e.Tag == tag {
			out = append(out, e)
		}
	}
	return out
}

// HTMLContains checks if the HTML contains a substring.
func (r *TestResult) HTMLContains(substr string) bool {
	return strings.Contains(r.HTML, substr)
}

// ParseElements parses an HTML fragment and returns every element in
// document order. Entities in attribute values are decoded.
func ParseElements(fragment string) ([]*Element, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), body)
	if err != nil {
		return nil, err
	}

	var out []*Element
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			e := &Element{Tag: n.Data, Text: textContent(n)}
			for _, a := range n.Attr {
				e.Attrs.Set(a.Key, a.Val)
			}
			out = append(out, e)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	return out, nil
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
