// Package tacittempl bridges tacit attribute lists into templ rendering.
//
// The engine stays rendering-agnostic; this adapter is the reference
// implementation of the rendering collaborator. Convert a widget's
// attribute list for use in a .templ template:
//
//	<div { tacittempl.Attributes(sel.SurfaceAttrs())... }>
//
// or wrap a whole element without a template:
//
//	c := tacittempl.Element("ul", sel.SurfaceAttrs(), items...)
//	c.Render(ctx, w)
package tacittempl

import (
	"context"
	"html"
	"io"

	"github.com/a-h/templ"

	"github.com/tacit-ui/tacit"
)

// Attributes converts an ordered attribute list into templ.Attributes.
// templ renders its attribute map in sorted key order, so determinism is
// preserved even though the map loses the engine's insertion order.
func Attributes(a tacit.Attrs) templ.Attributes {
	attrs := templ.Attributes{}
	for _, at := range a {
		attrs[at.Key] = at.Value
	}
	return attrs
}

// Element wraps an element with the given tag and attribute list around
// child components. Attributes render in the engine's insertion order,
// values HTML-escaped, so the output is byte-identical across identical
// states - the property hydration diffing needs.
func Element(tag string, attrs tacit.Attrs, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<"+tag); err != nil {
			return err
		}
		for _, at := range attrs {
			if _, err := io.WriteString(w, ` `+at.Key+`="`+html.EscapeString(at.Value)+`"`); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, ">"); err != nil {
			return err
		}
		for _, child := range children {
			if child == nil {
				continue
			}
			if err := child.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</"+tag+">")
		return err
	})
}

// Text returns a component rendering escaped text content.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, html.EscapeString(s))
		return err
	})
}
