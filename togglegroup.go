package tacit

import "sort"

// ToggleGroupState is the interaction state of a toggle button group:
// navigable buttons whose pressed set is a Controllable[[]int]. The group
// is multi-press by default; exclusive mode keeps at most one pressed
// (and allows pressing the active one off, which is what distinguishes it
// from a radio group).
type ToggleGroupState struct {
	list      *List
	pressed   Controllable[[]int]
	exclusive bool
	onToggle  func(int, bool)
	id        string
}

// NewToggleGroup creates a group with n buttons, none pressed.
func NewToggleGroup(n int, pressed Strategy) *ToggleGroupState {
	g := &ToggleGroupState{
		list:    NewList(n),
		pressed: NewControllable[[]int](pressed, nil),
	}
	g.list.SetOrientation(Horizontal)
	return g
}

// ToggleGroupControlled creates a group whose pressed set is host-owned.
func ToggleGroupControlled(n int) *ToggleGroupState {
	return NewToggleGroup(n, Controlled)
}

// ToggleGroupUncontrolled creates a group that owns its pressed set.
func ToggleGroupUncontrolled(n int) *ToggleGroupState {
	return NewToggleGroup(n, Uncontrolled)
}

// SetID sets the widget identifier.
func (g *ToggleGroupState) SetID(id string) {
	g.id = id
}

// SetExclusive keeps at most one button pressed.
func (g *ToggleGroupState) SetExclusive(on bool) {
	g.exclusive = on
}

// OnToggle registers the host callback fired on every valid toggle with
// the button index and its requested pressed state.
func (g *ToggleGroupState) OnToggle(fn func(i int, pressed bool)) {
	g.onToggle = fn
}

// Buttons exposes the list core.
func (g *ToggleGroupState) Buttons() *List {
	return g.list
}

// Pressed reports whether button i is pressed.
func (g *ToggleGroupState) Pressed(i int) bool {
	return containsIndex(g.pressed.Value(), i)
}

// PressedButtons returns the pressed set, sorted ascending.
func (g *ToggleGroupState) PressedButtons() []int {
	out := append([]int(nil), g.pressed.Value()...)
	sort.Ints(out)
	return out
}

// Toggle requests button i to flip. Disabled or out-of-range targets are
// suppressed.
func (g *ToggleGroupState) Toggle(i int) (Outcome[[]int], bool) {
	if !g.list.CanActivate(i) {
		return Outcome[[]int]{Value: g.pressed.Value()}, false
	}
	cur := g.pressed.Value()
	pressing := !containsIndex(cur, i)
	var next []int
	switch {
	case !pressing:
		next = removeIndex(append([]int(nil), cur...), i)
	case g.exclusive:
		next = []int{i}
	default:
		next = append(append([]int(nil), cur...), i)
	}
	if g.onToggle != nil {
		g.onToggle(i, pressing)
	}
	out := g.pressed.Request(next)
	if out.Applied {
		g.list.Highlight(i)
	}
	return out, true
}

// ToggleHighlighted toggles the currently highlighted button.
func (g *ToggleGroupState) ToggleHighlighted() (Outcome[[]int], bool) {
	return g.Toggle(g.list.Highlighted())
}

// SyncPressed applies the host's pressed set. Out-of-range indices are
// dropped.
func (g *ToggleGroupState) SyncPressed(set []int) {
	var next []int
	for _, i := range set {
		if clampIndex(i, g.list.Count()) != NoIndex {
			next = append(next, i)
		}
	}
	g.pressed.Sync(next)
}

// Step moves the highlight; see List.Step.
func (g *ToggleGroupState) Step(dir Direction, wrap bool) int {
	return g.list.Step(dir, wrap)
}

// SetItemCount resizes the group. An uncontrolled pressed set drops
// indices that fall out of range.
func (g *ToggleGroupState) SetItemCount(n int) {
	g.list.SetItemCount(n)
	if !g.pressed.Controlled() {
		var next []int
		for _, i := range g.pressed.Value() {
			if i < n {
				next = append(next, i)
			}
		}
		g.pressed.Sync(next)
	}
}

// GroupAttrs composes the attribute list for the group container.
func (g *ToggleGroupState) GroupAttrs() Attrs {
	return NewAttrs().
		ID(g.id).
		Role("group").
		Set("aria-orientation", g.list.Orientation().String()).
		Data("exclusive", boolToken(g.exclusive)).
		List()
}

// ItemAttrs composes the attribute list for button i with its pressed
// marker.
func (g *ToggleGroupState) ItemAttrs(i int) Attrs {
	return NewAttrs().
		Merge(g.list.ItemAttrs(i, "button")).
		Bool("aria-pressed", g.Pressed(i)).
		List()
}

// Kind implements Snapshotter.
func (g *ToggleGroupState) Kind() string { return "togglegroup" }

// Snapshot implements Snapshotter.
func (g *ToggleGroupState) Snapshot() map[string]any {
	m := make(map[string]any)
	g.list.snapshotInto(m)
	m["pressed"] = g.PressedButtons()
	m["exclusive"] = g.exclusive
	return m
}

// Restore implements Snapshotter.
func (g *ToggleGroupState) Restore(m map[string]any) error {
	g.list.restoreFrom(m)
	if v, ok := m["exclusive"].(bool); ok {
		g.exclusive = v
	}
	if set, ok := asInts(m["pressed"]); ok {
		g.SyncPressed(set)
	}
	return nil
}
