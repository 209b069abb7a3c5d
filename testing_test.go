package hxajax

import (
	"context"
	"testing"
)

func TestParseElements(t *testing.T) {
	elements, err := ParseElements(`<div id="a"><a href="/x" data-ajax-confirm="it&#39;s">go <b>now</b></a></div>`)
	if err != nil {
		t.Fatal(err)
	}

	tags := []string{"div", "a", "b"}
	if len(elements) != len(tags) {
		t.Fatalf("got %d elements, want %d", len(elements), len(tags))
	}
	for i, tag := range tags {
		if elements[i].Tag != tag {
			t.Errorf("elements[%d].Tag = %q, want %q", i, elements[i].Tag, tag)
		}
	}

	a := elements[1]
	if v, _ := a.Attr("data-ajax-confirm"); v != "it's" {
		t.Errorf("data-ajax-confirm = %q, want %q", v, "it's")
	}
	if a.Text != "go now" {
		t.Errorf("Text = %q, want %q", a.Text, "go now")
	}
	if _, ok := a.Attr("missing"); ok {
		t.Error("Attr(missing) reported present")
	}
}

func TestTestRenderReusesContextScope(t *testing.T) {
	s := NewConfig().NewScope()
	ctx := WithScope(context.Background(), s)

	result, err := TestRender(ctx, nil, ActionLink("x", "/", nil, nil))
	if err != nil {
		t.Fatal(err)
	}
	if result.Scope != s {
		t.Error("TestRender replaced the context scope")
	}
	if !s.Needed() {
		t.Error("scope not marked")
	}
	if !result.HTMLContains(`data-ajax="true"`) {
		t.Errorf("HTML = %q", result.HTML)
	}
}
