package tacit

import "strings"

// Attr is a single rendered attribute.
type Attr struct {
	Key   string
	Value string
}

// Attrs is an ordered attribute list with no duplicate keys.
//
// Insertion order is the iteration/rendering order and is deterministic
// across identical inputs, which is what makes SSR output and hydration
// output comparable byte-for-byte.
type Attrs []Attr

// Get returns the value for key and whether it is present.
func (a Attrs) Get(key string) (string, bool) {
	for _, at := range a {
		if at.Key == key {
			return at.Value, true
		}
	}
	return "", false
}

// Has reports whether key is present.
func (a Attrs) Has(key string) bool {
	_, ok := a.Get(key)
	return ok
}

// String renders the list in HTML attribute syntax, in order. Values are
// not escaped; use a rendering adapter for real markup.
func (a Attrs) String() string {
	var sb strings.Builder
	for i, at := range a {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(at.Key)
		sb.WriteString(`="`)
		sb.WriteString(at.Value)
		sb.WriteByte('"')
	}
	return sb.String()
}

// Builder accumulates attributes through chained, order-preserving calls.
//
// Setting a key that is already present replaces its value in place, so the
// original position is kept. Setters given empty input are no-ops rather
// than emitting an empty attribute. Construction is pure: identical call
// sequences always yield identical lists.
//
//	attrs := tacit.NewAttrs().
//	    Role("listbox").
//	    ID(props.ID).           // skipped when empty
//	    LabelledBy(props.Label).
//	    List()
type Builder struct {
	attrs Attrs
}

// NewAttrs creates an empty attribute builder.
func NewAttrs() *Builder {
	return &Builder{}
}

// Set records key=value, replacing in place when key is already present.
// Empty keys are ignored; empty values are kept (some markers are
// legitimately empty-valued).
func (b *Builder) Set(key, value string) *Builder {
	if key == "" {
		return b
	}
	for i := range b.attrs {
		if b.attrs[i].Key == key {
			b.attrs[i].Value = value
			return b
		}
	}
	b.attrs = append(b.attrs, Attr{Key: key, Value: value})
	return b
}

// SetNonEmpty records key=value only when value is non-empty.
func (b *Builder) SetNonEmpty(key, value string) *Builder {
	if value == "" {
		return b
	}
	return b.Set(key, value)
}

// Role sets the widget role token.
func (b *Builder) Role(role string) *Builder {
	return b.SetNonEmpty("role", role)
}

// ID sets the element identifier. No-op when empty.
func (b *Builder) ID(id string) *Builder {
	return b.SetNonEmpty("id", id)
}

// LabelledBy references an external labelling element. No-op when empty.
func (b *Builder) LabelledBy(id string) *Builder {
	return b.SetNonEmpty("aria-labelledby", id)
}

// DescribedBy references an external description element. No-op when empty.
func (b *Builder) DescribedBy(id string) *Builder {
	return b.SetNonEmpty("aria-describedby", id)
}

// ActiveDescendant references the highlighted child element. No-op when
// empty.
func (b *Builder) ActiveDescendant(id string) *Builder {
	return b.SetNonEmpty("aria-activedescendant", id)
}

// AnalyticsID tags the element for analytics/automation tooling. No-op
// when empty.
func (b *Builder) AnalyticsID(id string) *Builder {
	return b.SetNonEmpty("data-analytics-id", id)
}

// Data sets a data-* attribute. The name is used as given (without the
// "data-" prefix). No-op when name is empty.
func (b *Builder) Data(name, value string) *Builder {
	if name == "" {
		return b
	}
	return b.Set("data-"+name, value)
}

// Flag emits key="true" when on, and nothing otherwise. Used for disabled
// and selected markers that must be absent rather than "false".
func (b *Builder) Flag(key string, on bool) *Builder {
	if !on {
		return b
	}
	return b.Set(key, "true")
}

// Bool emits key="true" or key="false" unconditionally. Used for markers
// whose absence is meaningful ("aria-expanded" and friends).
func (b *Builder) Bool(key string, v bool) *Builder {
	if v {
		return b.Set(key, "true")
	}
	return b.Set(key, "false")
}

// Merge folds an existing list into the builder, pair by pair, with the
// same replace-in-place semantics as Set.
func (b *Builder) Merge(a Attrs) *Builder {
	for _, at := range a {
		b.Set(at.Key, at.Value)
	}
	return b
}

// List finalizes the builder, yielding the accumulated ordered list. The
// returned slice is the builder's backing storage; builders are single-use.
func (b *Builder) List() Attrs {
	return b.attrs
}
