// Package catalog enumerates the widget kinds the engine ships, with the
// attribute surfaces each exposes. Tooling (the tacitdoc reference
// generator, test sweeps over every widget) works off this registry
// instead of hand-maintained lists.
package catalog

import (
	"fmt"
	"sort"

	"github.com/tacit-ui/tacit"
)

// Surface is one named attribute surface of a widget in its default
// state: the trigger, the popup, an item, and so on.
type Surface struct {
	Name  string
	Attrs tacit.Attrs
}

// Entry describes one widget kind.
type Entry struct {
	// Kind is the widget kind token, matching Snapshotter.Kind.
	Kind string

	// Summary is a one-line description for generated references.
	Summary string

	// Build constructs a fresh uncontrolled instance.
	Build func() tacit.Snapshotter

	// Surfaces reads the attribute surfaces of a freshly built instance.
	Surfaces func(tacit.Snapshotter) []Surface
}

// Catalog is an explicit registry of widget kinds. Registration is
// explicit rather than init-driven; Builtin returns the stock catalog.
type Catalog struct {
	entries map[string]Entry
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{entries: make(map[string]Entry)}
}

// Register adds an entry. Panics on a duplicate kind or a nil builder -
// both are wiring mistakes, caught at startup, never during requests.
func (c *Catalog) Register(e Entry) {
	if e.Build == nil {
		panic(fmt.Sprintf("catalog: entry %q has no builder", e.Kind))
	}
	if _, exists := c.entries[e.Kind]; exists {
		panic(fmt.Sprintf("catalog: duplicate kind %q", e.Kind))
	}
	c.entries[e.Kind] = e
}

// Get returns the entry for a kind.
func (c *Catalog) Get(kind string) (Entry, bool) {
	e, ok := c.entries[kind]
	return e, ok
}

// All returns every entry sorted by kind, so iteration order - and any
// output generated from it - is deterministic.
func (c *Catalog) All() []Entry {
	out := make([]Entry, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Kind < out[j].Kind })
	return out
}
