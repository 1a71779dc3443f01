package tacittempl

import (
	"bytes"
	"context"
	"testing"

	"github.com/tacit-ui/tacit"
)

func TestAttributes(t *testing.T) {
	a := tacit.NewAttrs().Role("listbox").Data("open", "true").List()
	attrs := Attributes(a)

	if attrs["role"] != "listbox" || attrs["data-open"] != "true" {
		t.Errorf("Attributes = %v", attrs)
	}
	if len(attrs) != 2 {
		t.Errorf("len = %d, want 2", len(attrs))
	}
}

func TestElementRendersInOrder(t *testing.T) {
	a := tacit.NewAttrs().Role("option").Data("index", "0").List()
	c := Element("li", a, Text("Oak & Ash"))

	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	want := `<li role="option" data-index="0">Oak &amp; Ash</li>`
	if buf.String() != want {
		t.Errorf("rendered = %q, want %q", buf.String(), want)
	}
}

func TestElementEscapesAttributeValues(t *testing.T) {
	a := tacit.NewAttrs().Set("data-label", `say "hi" <now>`).List()
	var buf bytes.Buffer
	if err := Element("span", a).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	want := `<span data-label="say &#34;hi&#34; &lt;now&gt;"></span>`
	if buf.String() != want {
		t.Errorf("rendered = %q, want %q", buf.String(), want)
	}
}

func TestElementSkipsNilChildren(t *testing.T) {
	var buf bytes.Buffer
	if err := Element("div", nil, nil, Text("x")).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if buf.String() != "<div>x</div>" {
		t.Errorf("rendered = %q", buf.String())
	}
}

func TestRenderParityAcrossIdenticalStates(t *testing.T) {
	build := func() string {
		s := tacit.SelectUncontrolled(2)
		s.Open()
		s.Step(tacit.Forward, false)
		var buf bytes.Buffer
		if err := Element("ul", s.SurfaceAttrs()).Render(context.Background(), &buf); err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		return buf.String()
	}
	if a, b := build(), build(); a != b {
		t.Errorf("render divergence:\n%s\n%s", a, b)
	}
}
