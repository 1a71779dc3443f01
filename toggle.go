package tacit

// CheckboxState is the interaction state of a checkbox: a Controllable
// bool plus the indeterminate tri-state and a disabled flag.
//
// Indeterminate is presentation state owned by the host's data (a
// partially-selected group, typically); it clears on the first applied
// toggle, matching platform checkbox behavior.
type CheckboxState struct {
	checked       Controllable[bool]
	indeterminate bool
	disabled      bool
	onChange      func(bool)
	id            string
	label         string
}

// NewCheckbox creates a checkbox with the given ownership strategy and
// initial checked value.
func NewCheckbox(strategy Strategy, checked bool) *CheckboxState {
	return &CheckboxState{checked: NewControllable(strategy, checked)}
}

// CheckboxControlled creates a checkbox whose checked flag is host-owned.
func CheckboxControlled(checked bool) *CheckboxState {
	return NewCheckbox(Controlled, checked)
}

// CheckboxUncontrolled creates a checkbox that owns its checked flag.
func CheckboxUncontrolled(checked bool) *CheckboxState {
	return NewCheckbox(Uncontrolled, checked)
}

// SetID sets the widget identifier.
func (c *CheckboxState) SetID(id string) {
	c.id = id
}

// SetLabelledBy references the external labelling element.
func (c *CheckboxState) SetLabelledBy(id string) {
	c.label = id
}

// OnChange registers the host callback fired on every valid toggle.
func (c *CheckboxState) OnChange(fn func(bool)) {
	c.onChange = fn
}

// SetDisabled toggles interactivity.
func (c *CheckboxState) SetDisabled(disabled bool) {
	c.disabled = disabled
}

// Disabled reports whether interaction is suppressed.
func (c *CheckboxState) Disabled() bool {
	return c.disabled
}

// SetIndeterminate sets the tri-state marker.
func (c *CheckboxState) SetIndeterminate(on bool) {
	c.indeterminate = on
}

// Indeterminate reports the tri-state marker.
func (c *CheckboxState) Indeterminate() bool {
	return c.indeterminate
}

// Checked returns the checked flag.
func (c *CheckboxState) Checked() bool {
	return c.checked.Value()
}

// Toggle requests the opposite checked value. Suppressed while disabled.
// An indeterminate checkbox toggles to checked, the platform convention.
func (c *CheckboxState) Toggle() (Outcome[bool], bool) {
	if c.disabled {
		return Outcome[bool]{Value: c.checked.Value()}, false
	}
	next := !c.checked.Value()
	if c.indeterminate {
		next = true
	}
	if c.onChange != nil {
		c.onChange(next)
	}
	out := c.checked.Request(next)
	if out.Applied {
		c.indeterminate = false
	}
	return out, true
}

// SyncChecked applies the host's checked decision and clears the
// tri-state marker.
func (c *CheckboxState) SyncChecked(v bool) {
	c.checked.Sync(v)
	c.indeterminate = false
}

// Attrs composes the checkbox attribute list. aria-checked is "mixed"
// while indeterminate.
func (c *CheckboxState) Attrs() Attrs {
	checked := boolToken(c.checked.Value())
	if c.indeterminate {
		checked = "mixed"
	}
	return NewAttrs().
		ID(c.id).
		Role("checkbox").
		Set("aria-checked", checked).
		Flag("aria-disabled", c.disabled).
		LabelledBy(c.label).
		List()
}

// Kind implements Snapshotter.
func (c *CheckboxState) Kind() string { return "checkbox" }

// Snapshot implements Snapshotter.
func (c *CheckboxState) Snapshot() map[string]any {
	return map[string]any{
		"checked":       c.checked.Value(),
		"indeterminate": c.indeterminate,
	}
}

// Restore implements Snapshotter.
func (c *CheckboxState) Restore(m map[string]any) error {
	if v, ok := m["checked"].(bool); ok {
		c.checked.Sync(v)
	}
	if v, ok := m["indeterminate"].(bool); ok {
		c.indeterminate = v
	}
	return nil
}

// SwitchState is the interaction state of an on/off switch. Behaviorally a
// two-state checkbox without the indeterminate tri-state, with the switch
// role.
type SwitchState struct {
	on       Controllable[bool]
	disabled bool
	onChange func(bool)
	id       string
	label    string
}

// NewSwitch creates a switch with the given ownership strategy and
// initial value.
func NewSwitch(strategy Strategy, on bool) *SwitchState {
	return &SwitchState{on: NewControllable(strategy, on)}
}

// SwitchControlled creates a switch whose value is host-owned.
func SwitchControlled(on bool) *SwitchState {
	return NewSwitch(Controlled, on)
}

// SwitchUncontrolled creates a switch that owns its value.
func SwitchUncontrolled(on bool) *SwitchState {
	return NewSwitch(Uncontrolled, on)
}

// SetID sets the widget identifier.
func (s *SwitchState) SetID(id string) {
	s.id = id
}

// SetLabelledBy references the external labelling element.
func (s *SwitchState) SetLabelledBy(id string) {
	s.label = id
}

// OnChange registers the host callback fired on every valid toggle.
func (s *SwitchState) OnChange(fn func(bool)) {
	s.onChange = fn
}

// SetDisabled toggles interactivity.
func (s *SwitchState) SetDisabled(disabled bool) {
	s.disabled = disabled
}

// Disabled reports whether interaction is suppressed.
func (s *SwitchState) Disabled() bool {
	return s.disabled
}

// On returns the switch value.
func (s *SwitchState) On() bool {
	return s.on.Value()
}

// Toggle requests the opposite value. Suppressed while disabled.
func (s *SwitchState) Toggle() (Outcome[bool], bool) {
	if s.disabled {
		return Outcome[bool]{Value: s.on.Value()}, false
	}
	next := !s.on.Value()
	if s.onChange != nil {
		s.onChange(next)
	}
	return s.on.Request(next), true
}

// SyncOn applies the host's decision.
func (s *SwitchState) SyncOn(v bool) {
	s.on.Sync(v)
}

// Attrs composes the switch attribute list.
func (s *SwitchState) Attrs() Attrs {
	return NewAttrs().
		ID(s.id).
		Role("switch").
		Bool("aria-checked", s.on.Value()).
		Flag("aria-disabled", s.disabled).
		LabelledBy(s.label).
		List()
}

// Kind implements Snapshotter.
func (s *SwitchState) Kind() string { return "switch" }

// Snapshot implements Snapshotter.
func (s *SwitchState) Snapshot() map[string]any {
	return map[string]any{"on": s.on.Value()}
}

// Restore implements Snapshotter.
func (s *SwitchState) Restore(m map[string]any) error {
	if v, ok := m["on"].(bool); ok {
		s.on.Sync(v)
	}
	return nil
}
