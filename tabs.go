package tacit

// TabStep reports the result of a keyboard step through a tab list: the
// new highlight and, under automatic activation, the selection outcome.
type TabStep struct {
	Highlighted int
	Activated   bool
	Selection   Outcome[int]
}

// TabsState is the interaction state of a tab strip with its panels.
//
// Tabs default to horizontal orientation and automatic activation
// (highlight change activates the tab); switch to ActivateManual for
// activation on an explicit key or click only. The active tab is a
// Controllable[int] so hosts can own it externally.
type TabsState struct {
	list     *List
	active   Controllable[int]
	onChange func(int)
	id       string
}

// NewTabs creates a tab strip with n tabs, the first one active,
// horizontal, automatic activation.
func NewTabs(n int, selection Strategy) *TabsState {
	initial := NoIndex
	if n > 0 {
		initial = 0
	}
	t := &TabsState{
		list:   NewList(n),
		active: NewControllable(selection, initial),
	}
	t.list.SetOrientation(Horizontal)
	if initial != NoIndex {
		t.list.Highlight(initial)
	}
	return t
}

// TabsControlled creates a tab strip whose active tab is host-owned.
func TabsControlled(n int) *TabsState {
	return NewTabs(n, Controlled)
}

// TabsUncontrolled creates a tab strip that owns its active tab.
func TabsUncontrolled(n int) *TabsState {
	return NewTabs(n, Uncontrolled)
}

// SetID sets the widget identifier emitted on the tab list.
func (t *TabsState) SetID(id string) {
	t.id = id
}

// OnChange registers the host callback fired on valid tab activation.
func (t *TabsState) OnChange(fn func(int)) {
	t.onChange = fn
}

// Tabs exposes the list core: disabled mask, orientation, activation
// mode, labels for typeahead.
func (t *TabsState) Tabs() *List {
	return t.list
}

// Active returns the active tab clamped against the tab count, or
// NoIndex.
func (t *TabsState) Active() int {
	return clampIndex(t.active.Value(), t.list.Count())
}

// Highlighted returns the highlighted tab, or NoIndex.
func (t *TabsState) Highlighted() int {
	return t.list.Highlighted()
}

// Step moves the highlight and, under automatic activation, activates the
// newly highlighted tab.
func (t *TabsState) Step(dir Direction, wrap bool) TabStep {
	i := t.list.Step(dir, wrap)
	step := TabStep{Highlighted: i}
	if i != NoIndex && t.list.Activation() == ActivateAutomatic {
		step.Selection, step.Activated = t.Activate(i)
	}
	return step
}

// Activate requests tab i to become active. Disabled or out-of-range
// targets are suppressed. Fires the host callback on valid targets; the
// active-tab change goes through the ownership primitive.
func (t *TabsState) Activate(i int) (Outcome[int], bool) {
	if !t.list.CanActivate(i) {
		return Outcome[int]{Value: t.Active()}, false
	}
	if t.onChange != nil {
		t.onChange(i)
	}
	out := t.active.Request(i)
	if out.Applied {
		t.list.Highlight(i)
	}
	return out, true
}

// ActivateHighlighted activates the currently highlighted tab; the manual
// activation gesture.
func (t *TabsState) ActivateHighlighted() (Outcome[int], bool) {
	return t.Activate(t.list.Highlighted())
}

// SyncActive applies the host's active-tab decision.
func (t *TabsState) SyncActive(i int) {
	t.active.Sync(clampIndex(i, t.list.Count()))
}

// SetTabCount resizes the strip; an uncontrolled active tab that falls out
// of range clears.
func (t *TabsState) SetTabCount(n int) {
	t.list.SetItemCount(n)
	if !t.active.Controlled() && clampIndex(t.active.Value(), n) == NoIndex {
		t.active.Sync(NoIndex)
	}
}

// SetDisabled toggles tab i. Disabling the active tab under an
// uncontrolled selection relocates the active tab to the nearest enabled
// one, forward first.
func (t *TabsState) SetDisabled(i int, disabled bool) {
	t.list.SetDisabled(i, disabled)
	if disabled && !t.active.Controlled() && t.active.Value() == i {
		next := t.list.scan(i, Forward, false)
		if next == NoIndex {
			next = t.list.scan(i, Backward, false)
		}
		t.active.Sync(next)
	}
}

// ListAttrs composes the attribute list for the tab list container.
func (t *TabsState) ListAttrs() Attrs {
	return NewAttrs().
		ID(t.id).
		Role("tablist").
		Set("aria-orientation", t.list.Orientation().String()).
		List()
}

// TabAttrs composes the attribute list for tab i. The active tab is the
// only one in the tab sequence (roving tabindex).
func (t *TabsState) TabAttrs(i int) Attrs {
	active := i == t.Active()
	b := NewAttrs().Merge(t.list.ItemAttrs(i, "tab"))
	b.Bool("aria-selected", active)
	if active {
		b.Set("tabindex", "0")
	} else {
		b.Set("tabindex", "-1")
	}
	return b.List()
}

// PanelAttrs composes the attribute list for the panel of tab i.
func (t *TabsState) PanelAttrs(i int) Attrs {
	return NewAttrs().
		Role("tabpanel").
		Data("index", itoa(i)).
		Bool("data-active", i == t.Active()).
		List()
}

// Kind implements Snapshotter.
func (t *TabsState) Kind() string { return "tabs" }

// Snapshot implements Snapshotter.
func (t *TabsState) Snapshot() map[string]any {
	m := make(map[string]any)
	t.list.snapshotInto(m)
	m["active"] = t.active.Value()
	return m
}

// Restore implements Snapshotter.
func (t *TabsState) Restore(m map[string]any) error {
	t.list.restoreFrom(m)
	if a, ok := asInt(m["active"]); ok {
		t.active.Sync(clampIndex(a, t.list.Count()))
	}
	return nil
}
