package tacit

// SelectState is the interaction state of a single-select widget: a
// trigger that opens a listbox popup anchored to it.
//
// It composes the navigable list (options, highlight, typeahead), the
// openable surface (the popup), the anchor core (popup placement), and a
// Controllable[int] for the selection. Open flag and selection carry
// independent ownership strategies.
//
//	sel := tacit.NewSelect(4, tacit.Uncontrolled, tacit.Uncontrolled)
//	sel.Items().SetLabels([]string{"Ash", "Beech", "Cedar", "Oak"})
//	sel.Open()
//	sel.Step(tacit.Forward, false)
//	sel.ActivateHighlighted()
type SelectState struct {
	list     *List
	surface  *Surface
	anchor   *Anchor
	selected Controllable[int]
	onSelect func(int)
	id       string
}

// NewSelect creates a select with n options, all enabled, nothing selected,
// popup closed. Open flag and selection take independent strategies.
func NewSelect(n int, open, selection Strategy) *SelectState {
	return &SelectState{
		list:     NewList(n),
		surface:  NewSurface(open, false, "listbox"),
		anchor:   NewAnchor(PlacementBottomStart),
		selected: NewControllable(selection, NoIndex),
	}
}

// SelectControlled creates a select whose open flag and selection are both
// host-owned.
func SelectControlled(n int) *SelectState {
	return NewSelect(n, Controlled, Controlled)
}

// SelectUncontrolled creates a select that owns both values itself.
func SelectUncontrolled(n int) *SelectState {
	return NewSelect(n, Uncontrolled, Uncontrolled)
}

// SetID sets the widget identifier emitted on the trigger.
func (s *SelectState) SetID(id string) {
	s.id = id
}

// OnSelect registers the host callback fired on every valid activation.
func (s *SelectState) OnSelect(fn func(int)) {
	s.onSelect = fn
}

// Items exposes the option list for configuration and navigation:
// labels, disabled mask, orientation, typeahead timeout.
func (s *SelectState) Items() *List {
	return s.list
}

// Popup exposes the openable surface for transition tracking.
func (s *SelectState) Popup() *Surface {
	return s.surface
}

// Anchor exposes the anchor/placement core for the popup.
func (s *SelectState) Anchor() *Anchor {
	return s.anchor
}

// Open requests the popup to open. Opening clears any stale typeahead and
// moves the highlight to the selection when one exists.
func (s *SelectState) Open() Outcome[bool] {
	out := s.surface.Open()
	if out.Applied {
		if sel := s.Selected(); sel != NoIndex && !s.list.Disabled(sel) {
			s.list.Highlight(sel)
		}
	}
	return out
}

// Close requests the popup to close.
func (s *SelectState) Close() Outcome[bool] {
	return s.surface.Close()
}

// SyncOpen applies the host's open decision; see Surface.SyncOpen.
func (s *SelectState) SyncOpen(open, transition bool) {
	s.surface.SyncOpen(open, transition)
}

// IsOpen returns the popup's authoritative open flag.
func (s *SelectState) IsOpen() bool {
	return s.surface.IsOpen()
}

// Step moves the highlight; see List.Step.
func (s *SelectState) Step(dir Direction, wrap bool) int {
	return s.list.Step(dir, wrap)
}

// Typeahead feeds a keystroke; see List.Typeahead.
func (s *SelectState) Typeahead(ch rune) int {
	return s.list.Typeahead(ch)
}

// Highlighted returns the highlighted option, or NoIndex.
func (s *SelectState) Highlighted() int {
	return s.list.Highlighted()
}

// Selected returns the selected option clamped against the current item
// count, or NoIndex.
func (s *SelectState) Selected() int {
	return clampIndex(s.selected.Value(), s.list.Count())
}

// Activate selects option i. Disabled or out-of-range targets are
// suppressed: no callback, no state change, ok is false. Otherwise the
// host callback fires and the selection change goes through the ownership
// primitive - under a Controlled selection the returned outcome is an
// intent for the host.
func (s *SelectState) Activate(i int) (Outcome[int], bool) {
	if !s.list.CanActivate(i) {
		return Outcome[int]{Value: s.Selected()}, false
	}
	if s.onSelect != nil {
		s.onSelect(i)
	}
	out := s.selected.Request(i)
	if out.Applied {
		s.list.Highlight(i)
	}
	return out, true
}

// ActivateHighlighted activates the currently highlighted option.
func (s *SelectState) ActivateHighlighted() (Outcome[int], bool) {
	return s.Activate(s.list.Highlighted())
}

// SyncSelected applies the host's selection decision.
func (s *SelectState) SyncSelected(i int) {
	s.selected.Sync(clampIndex(i, s.list.Count()))
}

// SetItemCount resizes the option list; see List.SetItemCount. An
// uncontrolled selection that falls out of range clears.
func (s *SelectState) SetItemCount(n int) {
	s.list.SetItemCount(n)
	if !s.selected.Controlled() && clampIndex(s.selected.Value(), n) == NoIndex {
		s.selected.Sync(NoIndex)
	}
}

// SetDisabled toggles option i; see List.SetDisabled. Disabling the
// selected option under an uncontrolled selection relocates the selection
// to the nearest enabled option (forward first, then backward) so the
// widget never points at an inert target.
func (s *SelectState) SetDisabled(i int, disabled bool) {
	s.list.SetDisabled(i, disabled)
	if disabled && !s.selected.Controlled() && s.selected.Value() == i {
		next := s.list.scan(i, Forward, false)
		if next == NoIndex {
			next = s.list.scan(i, Backward, false)
		}
		s.selected.Sync(next)
	}
}

// TriggerAttrs composes the attribute list for the trigger element.
func (s *SelectState) TriggerAttrs() Attrs {
	return NewAttrs().
		ID(s.id).
		Role("combobox").
		Set("aria-haspopup", "listbox").
		Bool("aria-expanded", s.surface.IsOpen()).
		List()
}

// SurfaceAttrs composes the attribute list for the popup: the surface
// lifecycle markers merged with the anchor placement markers.
func (s *SelectState) SurfaceAttrs() Attrs {
	return NewAttrs().
		Merge(s.surface.Attrs()).
		Merge(s.anchor.Attrs()).
		List()
}

// ItemAttrs composes the attribute list for option i, adding the selected
// marker to the shared item set.
func (s *SelectState) ItemAttrs(i int) Attrs {
	b := NewAttrs().Merge(s.list.ItemAttrs(i, "option"))
	b.Bool("aria-selected", i == s.Selected())
	return b.List()
}

// Kind implements Snapshotter.
func (s *SelectState) Kind() string { return "select" }

// Snapshot implements Snapshotter.
func (s *SelectState) Snapshot() map[string]any {
	m := make(map[string]any)
	s.surface.snapshotInto(m)
	s.list.snapshotInto(m)
	s.anchor.snapshotInto(m)
	m["selected"] = s.selected.Value()
	return m
}

// Restore implements Snapshotter.
func (s *SelectState) Restore(m map[string]any) error {
	s.surface.restoreFrom(m)
	s.list.restoreFrom(m)
	s.anchor.restoreFrom(m)
	if sel, ok := asInt(m["selected"]); ok {
		s.selected.Sync(clampIndex(sel, s.list.Count()))
	}
	return nil
}
