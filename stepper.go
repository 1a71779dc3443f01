package tacit

// StepperState is the interaction state of a numeric stepper: an integer
// value nudged up and down between bounds, with can-increment /
// can-decrement accessors hosts use to disable the spin buttons.
type StepperState struct {
	value    Controllable[int]
	min      int
	max      int
	step     int
	disabled bool
	onChange func(int)
	id       string
	label    string
}

// NewStepper creates a stepper over [min, max] moving by step per nudge.
// A step below 1 is treated as 1.
func NewStepper(strategy Strategy, min, max, step, initial int) *StepperState {
	if max < min {
		min, max = max, min
	}
	if step < 1 {
		step = 1
	}
	s := &StepperState{min: min, max: max, step: step}
	s.value = NewControllable(strategy, s.clamp(initial))
	return s
}

// StepperControlled creates a host-owned stepper over [0, 100], step 1.
func StepperControlled(initial int) *StepperState {
	return NewStepper(Controlled, 0, 100, 1, initial)
}

// StepperUncontrolled creates an engine-owned stepper over [0, 100],
// step 1.
func StepperUncontrolled(initial int) *StepperState {
	return NewStepper(Uncontrolled, 0, 100, 1, initial)
}

// SetID sets the widget identifier.
func (s *StepperState) SetID(id string) {
	s.id = id
}

// SetLabelledBy references the external labelling element.
func (s *StepperState) SetLabelledBy(id string) {
	s.label = id
}

// OnChange registers the host callback fired on every valid change
// request with the clamped value.
func (s *StepperState) OnChange(fn func(int)) {
	s.onChange = fn
}

// SetDisabled toggles interactivity.
func (s *StepperState) SetDisabled(disabled bool) {
	s.disabled = disabled
}

// Disabled reports whether interaction is suppressed.
func (s *StepperState) Disabled() bool {
	return s.disabled
}

// Value returns the current value.
func (s *StepperState) Value() int {
	return s.value.Value()
}

// Min returns the lower bound.
func (s *StepperState) Min() int { return s.min }

// Max returns the upper bound.
func (s *StepperState) Max() int { return s.max }

// CanIncrement reports whether a nudge up would change the value.
func (s *StepperState) CanIncrement() bool {
	return !s.disabled && s.value.Value() < s.max
}

// CanDecrement reports whether a nudge down would change the value.
func (s *StepperState) CanDecrement() bool {
	return !s.disabled && s.value.Value() > s.min
}

// SetValue requests a change to the clamped form of v. Suppressed while
// disabled.
func (s *StepperState) SetValue(v int) (Outcome[int], bool) {
	if s.disabled {
		return Outcome[int]{Value: s.value.Value()}, false
	}
	v = s.clamp(v)
	if s.onChange != nil {
		s.onChange(v)
	}
	return s.value.Request(v), true
}

// Increment requests one step up; saturates at the upper bound.
func (s *StepperState) Increment() (Outcome[int], bool) {
	return s.SetValue(s.value.Value() + s.step)
}

// Decrement requests one step down; saturates at the lower bound.
func (s *StepperState) Decrement() (Outcome[int], bool) {
	return s.SetValue(s.value.Value() - s.step)
}

// SyncValue applies the host's decision, clamped.
func (s *StepperState) SyncValue(v int) {
	s.value.Sync(s.clamp(v))
}

// Attrs composes the stepper attribute list with the value triple.
func (s *StepperState) Attrs() Attrs {
	return NewAttrs().
		ID(s.id).
		Role("spinbutton").
		Set("aria-valuemin", itoa(s.min)).
		Set("aria-valuemax", itoa(s.max)).
		Set("aria-valuenow", itoa(s.value.Value())).
		Flag("aria-disabled", s.disabled).
		LabelledBy(s.label).
		List()
}

// Kind implements Snapshotter.
func (s *StepperState) Kind() string { return "stepper" }

// Snapshot implements Snapshotter.
func (s *StepperState) Snapshot() map[string]any {
	return map[string]any{"value": s.value.Value()}
}

// Restore implements Snapshotter.
func (s *StepperState) Restore(m map[string]any) error {
	if v, ok := asInt(m["value"]); ok {
		s.value.Sync(s.clamp(v))
	}
	return nil
}

func (s *StepperState) clamp(v int) int {
	if v < s.min {
		return s.min
	}
	if v > s.max {
		return s.max
	}
	return v
}
