package tacit

// RadioGroupState is the interaction state of a radio button group:
// single selection over a navigable list where stepping both moves the
// highlight and selects, matching the platform radio group gesture.
type RadioGroupState struct {
	list     *List
	selected Controllable[int]
	onChange func(int)
	id       string
}

// NewRadioGroup creates a group with n radios, nothing selected.
func NewRadioGroup(n int, selection Strategy) *RadioGroupState {
	return &RadioGroupState{
		list:     NewList(n),
		selected: NewControllable(selection, NoIndex),
	}
}

// RadioGroupControlled creates a group whose selection is host-owned.
func RadioGroupControlled(n int) *RadioGroupState {
	return NewRadioGroup(n, Controlled)
}

// RadioGroupUncontrolled creates a group that owns its selection.
func RadioGroupUncontrolled(n int) *RadioGroupState {
	return NewRadioGroup(n, Uncontrolled)
}

// SetID sets the widget identifier emitted on the group.
func (r *RadioGroupState) SetID(id string) {
	r.id = id
}

// OnChange registers the host callback fired on valid selection.
func (r *RadioGroupState) OnChange(fn func(int)) {
	r.onChange = fn
}

// Radios exposes the list core for the disabled mask, orientation, and
// labels.
func (r *RadioGroupState) Radios() *List {
	return r.list
}

// Selected returns the selected radio clamped against the radio count, or
// NoIndex.
func (r *RadioGroupState) Selected() int {
	return clampIndex(r.selected.Value(), r.list.Count())
}

// Highlighted returns the highlighted radio, or NoIndex.
func (r *RadioGroupState) Highlighted() int {
	return r.list.Highlighted()
}

// Step moves the highlight and selects the newly highlighted radio -
// arrow keys in a radio group always select. Radio groups wrap.
func (r *RadioGroupState) Step(dir Direction) (Outcome[int], bool) {
	i := r.list.Step(dir, true)
	if i == NoIndex {
		return Outcome[int]{Value: r.Selected()}, false
	}
	return r.Select(i)
}

// Select requests radio i to become selected. Disabled or out-of-range
// targets are suppressed.
func (r *RadioGroupState) Select(i int) (Outcome[int], bool) {
	if !r.list.CanActivate(i) {
		return Outcome[int]{Value: r.Selected()}, false
	}
	if r.onChange != nil {
		r.onChange(i)
	}
	out := r.selected.Request(i)
	if out.Applied {
		r.list.Highlight(i)
	}
	return out, true
}

// SyncSelected applies the host's selection decision.
func (r *RadioGroupState) SyncSelected(i int) {
	r.selected.Sync(clampIndex(i, r.list.Count()))
}

// SetItemCount resizes the group; an uncontrolled selection that falls
// out of range clears.
func (r *RadioGroupState) SetItemCount(n int) {
	r.list.SetItemCount(n)
	if !r.selected.Controlled() && clampIndex(r.selected.Value(), n) == NoIndex {
		r.selected.Sync(NoIndex)
	}
}

// SetDisabled toggles radio i, relocating an uncontrolled selection off a
// newly disabled radio.
func (r *RadioGroupState) SetDisabled(i int, disabled bool) {
	r.list.SetDisabled(i, disabled)
	if disabled && !r.selected.Controlled() && r.selected.Value() == i {
		next := r.list.scan(i, Forward, false)
		if next == NoIndex {
			next = r.list.scan(i, Backward, false)
		}
		r.selected.Sync(next)
	}
}

// GroupAttrs composes the attribute list for the group container.
func (r *RadioGroupState) GroupAttrs() Attrs {
	return NewAttrs().
		ID(r.id).
		Role("radiogroup").
		Set("aria-orientation", r.list.Orientation().String()).
		List()
}

// ItemAttrs composes the attribute list for radio i.
func (r *RadioGroupState) ItemAttrs(i int) Attrs {
	return NewAttrs().
		Merge(r.list.ItemAttrs(i, "radio")).
		Bool("aria-checked", i == r.Selected()).
		List()
}

// Kind implements Snapshotter.
func (r *RadioGroupState) Kind() string { return "radiogroup" }

// Snapshot implements Snapshotter.
func (r *RadioGroupState) Snapshot() map[string]any {
	m := make(map[string]any)
	r.list.snapshotInto(m)
	m["selected"] = r.selected.Value()
	return m
}

// Restore implements Snapshotter.
func (r *RadioGroupState) Restore(m map[string]any) error {
	r.list.restoreFrom(m)
	if sel, ok := asInt(m["selected"]); ok {
		r.selected.Sync(clampIndex(sel, r.list.Count()))
	}
	return nil
}
