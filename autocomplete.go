package tacit

import "time"

// AutocompleteState is the interaction state of a combobox with a
// suggestion popup: a validated field for the input, a navigable list for
// the suggestions, and an anchored openable surface for the popup.
//
// The engine does not filter - suggestion computation is a host concern
// (often asynchronous). The host feeds the current suggestion labels in
// through SetSuggestions after each change; the debounce window in the
// change snapshot tells it when to recompute.
type AutocompleteState struct {
	field    *Field
	list     *List
	surface  *Surface
	anchor   *Anchor
	onPick   func(int)
	id       string
	listID   string
}

// NewAutocomplete creates an autocomplete with the given strategies for
// the input value and the popup open flag.
func NewAutocomplete(value, open Strategy) *AutocompleteState {
	return &AutocompleteState{
		field:   NewField(value, ""),
		list:    NewList(0),
		surface: NewSurface(open, false, "listbox"),
		anchor:  NewAnchor(PlacementBottomStart),
	}
}

// AutocompleteControlled creates an autocomplete with host-owned value
// and open flag.
func AutocompleteControlled() *AutocompleteState {
	return NewAutocomplete(Controlled, Controlled)
}

// AutocompleteUncontrolled creates an autocomplete that owns both.
func AutocompleteUncontrolled() *AutocompleteState {
	return NewAutocomplete(Uncontrolled, Uncontrolled)
}

// SetID sets the input identifier. The popup identifier derives from it
// for the owns/controls references.
func (a *AutocompleteState) SetID(id string) {
	a.id = id
	if id != "" {
		a.listID = id + "-listbox"
	} else {
		a.listID = ""
	}
}

// OnPick registers the host callback fired when a suggestion is chosen.
func (a *AutocompleteState) OnPick(fn func(int)) {
	a.onPick = fn
}

// Input exposes the field core (debounce, errors, commit, reset).
func (a *AutocompleteState) Input() *Field {
	return a.field
}

// Suggestions exposes the list core.
func (a *AutocompleteState) Suggestions() *List {
	return a.list
}

// Popup exposes the openable surface.
func (a *AutocompleteState) Popup() *Surface {
	return a.surface
}

// Anchor exposes the anchor/placement core.
func (a *AutocompleteState) Anchor() *Anchor {
	return a.anchor
}

// Change requests an input change and, when the open flag is engine-
// owned, opens the popup (non-empty input) or closes it (cleared input).
// The highlight resets: stale highlights over a new suggestion set are
// meaningless.
func (a *AutocompleteState) Change(v string) Change {
	ch := a.field.Change(v)
	a.list.ClearHighlight()
	if v == "" {
		a.surface.Close()
	} else {
		a.surface.Open()
	}
	return ch
}

// SetSuggestions replaces the suggestion labels, resizing the list. All
// new suggestions come in enabled; the highlight clears if out of range.
func (a *AutocompleteState) SetSuggestions(labels []string) {
	a.list.SetItemCount(len(labels))
	for i := range labels {
		a.list.SetDisabled(i, false)
	}
	a.list.SetLabels(labels)
}

// Step moves the suggestion highlight; see List.Step.
func (a *AutocompleteState) Step(dir Direction, wrap bool) int {
	return a.list.Step(dir, wrap)
}

// Highlighted returns the highlighted suggestion, or NoIndex.
func (a *AutocompleteState) Highlighted() int {
	return a.list.Highlighted()
}

// Pick chooses suggestion i: fires the host callback, requests the input
// value to become the suggestion label, and closes the popup. Disabled or
// out-of-range targets are suppressed.
func (a *AutocompleteState) Pick(i int) (Change, bool) {
	if !a.list.CanActivate(i) {
		return Change{Outcome: Outcome[string]{Value: a.field.Value()}, Dirty: a.field.Dirty()}, false
	}
	if a.onPick != nil {
		a.onPick(i)
	}
	ch := a.field.Change(a.list.Label(i))
	a.surface.Close()
	a.list.ClearHighlight()
	return ch, true
}

// PickHighlighted chooses the currently highlighted suggestion.
func (a *AutocompleteState) PickHighlighted() (Change, bool) {
	return a.Pick(a.list.Highlighted())
}

// Dismiss closes the popup without changing the input.
func (a *AutocompleteState) Dismiss() Outcome[bool] {
	out := a.surface.Close()
	if out.Applied {
		a.list.ClearHighlight()
	}
	return out
}

// SyncValue applies the host's input value decision.
func (a *AutocompleteState) SyncValue(v string) {
	a.field.SyncValue(v)
}

// SyncOpen applies the host's open decision.
func (a *AutocompleteState) SyncOpen(open, transition bool) {
	a.surface.SyncOpen(open, transition)
	if !open {
		a.list.ClearHighlight()
	}
}

// IsOpen returns the popup's authoritative open flag.
func (a *AutocompleteState) IsOpen() bool {
	return a.surface.IsOpen()
}

// Value returns the current input value.
func (a *AutocompleteState) Value() string {
	return a.field.Value()
}

// SetDebounce sets the suggestion-recompute debounce window.
func (a *AutocompleteState) SetDebounce(d time.Duration) {
	a.field.SetDebounce(d)
}

// InputAttrs composes the attribute list for the input element, including
// the active-descendant reference when a suggestion is highlighted and
// the input has an identifier.
func (a *AutocompleteState) InputAttrs() Attrs {
	b := NewAttrs().
		ID(a.id).
		Role("combobox").
		Set("aria-autocomplete", "list").
		Bool("aria-expanded", a.surface.IsOpen()).
		SetNonEmpty("aria-controls", a.listID)
	if h := a.list.Highlighted(); h != NoIndex && a.listID != "" {
		b.ActiveDescendant(a.listID + "-" + itoa(h))
	}
	return b.Merge(a.field.Attrs()).List()
}

// SurfaceAttrs composes the popup attribute list with placement markers.
func (a *AutocompleteState) SurfaceAttrs() Attrs {
	return NewAttrs().
		ID(a.listID).
		Merge(a.surface.Attrs()).
		Merge(a.anchor.Attrs()).
		List()
}

// ItemAttrs composes the attribute list for suggestion i.
func (a *AutocompleteState) ItemAttrs(i int) Attrs {
	b := NewAttrs()
	if a.listID != "" && clampIndex(i, a.list.Count()) != NoIndex {
		b.ID(a.listID + "-" + itoa(i))
	}
	return b.Merge(a.list.ItemAttrs(i, "option")).List()
}

// Kind implements Snapshotter.
func (a *AutocompleteState) Kind() string { return "autocomplete" }

// Snapshot implements Snapshotter.
func (a *AutocompleteState) Snapshot() map[string]any {
	m := make(map[string]any)
	a.field.snapshotInto(m)
	a.surface.snapshotInto(m)
	a.list.snapshotInto(m)
	a.anchor.snapshotInto(m)
	m["labels"] = append([]string(nil), a.list.labels...)
	return m
}

// Restore implements Snapshotter.
func (a *AutocompleteState) Restore(m map[string]any) error {
	a.field.restoreFrom(m)
	a.surface.restoreFrom(m)
	a.list.restoreFrom(m)
	a.anchor.restoreFrom(m)
	if labels, ok := asStrings(m["labels"]); ok {
		a.list.SetLabels(labels)
	}
	return nil
}
