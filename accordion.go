package tacit

import "sort"

// AccordionState is the interaction state of an accordion: a navigable
// list of headers, each toggling its panel. The expanded set is a
// Controllable[[]int]; the widget supports single-expansion (default) and
// multi-expansion.
type AccordionState struct {
	list     *List
	expanded Controllable[[]int]
	multiple bool
	onToggle func(int, bool)
	id       string
}

// NewAccordion creates an accordion with n sections, all collapsed.
func NewAccordion(n int, expansion Strategy) *AccordionState {
	return &AccordionState{
		list:     NewList(n),
		expanded: NewControllable[[]int](expansion, nil),
	}
}

// AccordionControlled creates an accordion whose expanded set is
// host-owned.
func AccordionControlled(n int) *AccordionState {
	return NewAccordion(n, Controlled)
}

// AccordionUncontrolled creates an accordion that owns its expanded set.
func AccordionUncontrolled(n int) *AccordionState {
	return NewAccordion(n, Uncontrolled)
}

// SetID sets the widget identifier.
func (a *AccordionState) SetID(id string) {
	a.id = id
}

// SetMultiple allows several sections to be expanded at once.
func (a *AccordionState) SetMultiple(on bool) {
	a.multiple = on
}

// OnToggle registers the host callback fired on every valid toggle with
// the section index and its requested expanded state.
func (a *AccordionState) OnToggle(fn func(i int, expanded bool)) {
	a.onToggle = fn
}

// Sections exposes the list core for the disabled mask and header
// navigation.
func (a *AccordionState) Sections() *List {
	return a.list
}

// Expanded reports whether section i is expanded.
func (a *AccordionState) Expanded(i int) bool {
	return containsIndex(a.expanded.Value(), i)
}

// ExpandedSections returns the expanded set, sorted ascending.
func (a *AccordionState) ExpandedSections() []int {
	out := append([]int(nil), a.expanded.Value()...)
	sort.Ints(out)
	return out
}

// Toggle requests section i to flip. Disabled or out-of-range targets are
// suppressed. In single-expansion mode expanding a section collapses the
// others.
func (a *AccordionState) Toggle(i int) (Outcome[[]int], bool) {
	if !a.list.CanActivate(i) {
		return Outcome[[]int]{Value: a.expanded.Value()}, false
	}
	cur := a.expanded.Value()
	var next []int
	expanding := !containsIndex(cur, i)
	switch {
	case !expanding:
		next = removeIndex(append([]int(nil), cur...), i)
	case a.multiple:
		next = append(append([]int(nil), cur...), i)
	default:
		next = []int{i}
	}
	if a.onToggle != nil {
		a.onToggle(i, expanding)
	}
	out := a.expanded.Request(next)
	if out.Applied {
		a.list.Highlight(i)
	}
	return out, true
}

// ToggleHighlighted toggles the currently highlighted section.
func (a *AccordionState) ToggleHighlighted() (Outcome[[]int], bool) {
	return a.Toggle(a.list.Highlighted())
}

// SyncExpanded applies the host's expanded set. Out-of-range indices are
// dropped.
func (a *AccordionState) SyncExpanded(set []int) {
	var next []int
	for _, i := range set {
		if clampIndex(i, a.list.Count()) != NoIndex {
			next = append(next, i)
		}
	}
	a.expanded.Sync(next)
}

// Step moves the header highlight; see List.Step.
func (a *AccordionState) Step(dir Direction, wrap bool) int {
	return a.list.Step(dir, wrap)
}

// SetItemCount resizes the accordion. An uncontrolled expanded set drops
// indices that fall out of range.
func (a *AccordionState) SetItemCount(n int) {
	a.list.SetItemCount(n)
	if !a.expanded.Controlled() {
		var next []int
		for _, i := range a.expanded.Value() {
			if i < n {
				next = append(next, i)
			}
		}
		a.expanded.Sync(next)
	}
}

// RootAttrs composes the attribute list for the accordion container.
func (a *AccordionState) RootAttrs() Attrs {
	return NewAttrs().
		ID(a.id).
		Data("multiple", boolToken(a.multiple)).
		List()
}

// HeaderAttrs composes the attribute list for the header of section i.
func (a *AccordionState) HeaderAttrs(i int) Attrs {
	return NewAttrs().
		Merge(a.list.ItemAttrs(i, "button")).
		Bool("aria-expanded", a.Expanded(i)).
		List()
}

// PanelAttrs composes the attribute list for the panel of section i.
func (a *AccordionState) PanelAttrs(i int) Attrs {
	return NewAttrs().
		Role("region").
		Data("index", itoa(i)).
		Bool("data-expanded", a.Expanded(i)).
		List()
}

// Kind implements Snapshotter.
func (a *AccordionState) Kind() string { return "accordion" }

// Snapshot implements Snapshotter.
func (a *AccordionState) Snapshot() map[string]any {
	m := make(map[string]any)
	a.list.snapshotInto(m)
	m["expanded"] = a.ExpandedSections()
	m["multiple"] = a.multiple
	return m
}

// Restore implements Snapshotter.
func (a *AccordionState) Restore(m map[string]any) error {
	a.list.restoreFrom(m)
	if v, ok := m["multiple"].(bool); ok {
		a.multiple = v
	}
	if set, ok := asInts(m["expanded"]); ok {
		a.SyncExpanded(set)
	}
	return nil
}
