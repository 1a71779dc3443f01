package tacit

// MenuState is the interaction state of a dropdown menu: an anchored popup
// of activatable items with keyboard and typeahead navigation but no
// persistent selection.
//
// Activating an item fires the host callback and, when the open flag is
// engine-owned, closes the menu - the conventional menu gesture. Disabled
// items never activate and never receive the highlight.
type MenuState struct {
	list       *List
	surface    *Surface
	anchor     *Anchor
	onActivate func(int)
	id         string
}

// NewMenu creates a menu with n items, closed, with the given ownership
// strategy for the open flag.
func NewMenu(n int, open Strategy) *MenuState {
	return &MenuState{
		list:    NewList(n),
		surface: NewSurface(open, false, "menu"),
		anchor:  NewAnchor(PlacementBottomStart),
	}
}

// MenuControlled creates a menu whose open flag is host-owned.
func MenuControlled(n int) *MenuState {
	return NewMenu(n, Controlled)
}

// MenuUncontrolled creates a menu that owns its open flag.
func MenuUncontrolled(n int) *MenuState {
	return NewMenu(n, Uncontrolled)
}

// SetID sets the widget identifier emitted on the trigger.
func (m *MenuState) SetID(id string) {
	m.id = id
}

// OnActivate registers the host callback fired on valid item activation.
func (m *MenuState) OnActivate(fn func(int)) {
	m.onActivate = fn
}

// Items exposes the item list core.
func (m *MenuState) Items() *List {
	return m.list
}

// Popup exposes the openable surface.
func (m *MenuState) Popup() *Surface {
	return m.surface
}

// Anchor exposes the anchor/placement core.
func (m *MenuState) Anchor() *Anchor {
	return m.anchor
}

// Open requests the menu to open. When applied, the highlight moves to the
// first enabled item so keyboard navigation has a starting point.
func (m *MenuState) Open() Outcome[bool] {
	out := m.surface.Open()
	if out.Applied {
		m.list.First()
	}
	return out
}

// Close requests the menu to close. When applied, the highlight clears.
func (m *MenuState) Close() Outcome[bool] {
	out := m.surface.Close()
	if out.Applied {
		m.list.ClearHighlight()
	}
	return out
}

// SyncOpen applies the host's open decision; see Surface.SyncOpen.
func (m *MenuState) SyncOpen(open, transition bool) {
	m.surface.SyncOpen(open, transition)
	if !open {
		m.list.ClearHighlight()
	}
}

// IsOpen returns the authoritative open flag.
func (m *MenuState) IsOpen() bool {
	return m.surface.IsOpen()
}

// Step moves the highlight; see List.Step. Menus conventionally wrap, but
// that stays the caller's choice.
func (m *MenuState) Step(dir Direction, wrap bool) int {
	return m.list.Step(dir, wrap)
}

// Typeahead feeds a keystroke; see List.Typeahead.
func (m *MenuState) Typeahead(ch rune) int {
	return m.list.Typeahead(ch)
}

// Highlighted returns the highlighted item, or NoIndex.
func (m *MenuState) Highlighted() int {
	return m.list.Highlighted()
}

// Activate fires the host callback for item i and closes the menu (when
// the open flag is engine-owned). Disabled or out-of-range targets are
// suppressed entirely.
func (m *MenuState) Activate(i int) bool {
	if !m.list.CanActivate(i) {
		return false
	}
	if m.onActivate != nil {
		m.onActivate(i)
	}
	m.Close()
	return true
}

// ActivateHighlighted activates the currently highlighted item.
func (m *MenuState) ActivateHighlighted() bool {
	return m.Activate(m.list.Highlighted())
}

// TriggerAttrs composes the attribute list for the trigger element.
func (m *MenuState) TriggerAttrs() Attrs {
	return NewAttrs().
		ID(m.id).
		Set("aria-haspopup", "menu").
		Bool("aria-expanded", m.surface.IsOpen()).
		List()
}

// SurfaceAttrs composes the popup attribute list with placement markers.
func (m *MenuState) SurfaceAttrs() Attrs {
	return NewAttrs().
		Merge(m.surface.Attrs()).
		Merge(m.anchor.Attrs()).
		List()
}

// ItemAttrs composes the attribute list for item i.
func (m *MenuState) ItemAttrs(i int) Attrs {
	return m.list.ItemAttrs(i, "menuitem")
}

// Kind implements Snapshotter.
func (m *MenuState) Kind() string { return "menu" }

// Snapshot implements Snapshotter.
func (m *MenuState) Snapshot() map[string]any {
	s := make(map[string]any)
	m.surface.snapshotInto(s)
	m.list.snapshotInto(s)
	m.anchor.snapshotInto(s)
	return s
}

// Restore implements Snapshotter.
func (m *MenuState) Restore(s map[string]any) error {
	m.surface.restoreFrom(s)
	m.list.restoreFrom(s)
	m.anchor.restoreFrom(s)
	return nil
}
