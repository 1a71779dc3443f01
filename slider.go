package tacit

import "math"

// SliderState is the interaction state of a continuous slider.
//
// The value lives in a Controllable[float64] and is always clamped to
// [min, max] and snapped to the step grid before a change is requested,
// so out-of-range input can never produce an out-of-range value - it is
// normalized, not rejected.
type SliderState struct {
	value    Controllable[float64]
	min      float64
	max      float64
	step     float64
	disabled bool
	onChange func(float64)
	id       string
	label    string
}

// NewSlider creates a slider over [min, max] with the given step grid
// (step <= 0 disables snapping) and initial value.
func NewSlider(strategy Strategy, min, max, step, initial float64) *SliderState {
	if max < min {
		min, max = max, min
	}
	s := &SliderState{
		min:  min,
		max:  max,
		step: step,
	}
	s.value = NewControllable(strategy, s.normalize(initial))
	return s
}

// SliderControlled creates a host-owned slider over [0, 100], step 1.
func SliderControlled(initial float64) *SliderState {
	return NewSlider(Controlled, 0, 100, 1, initial)
}

// SliderUncontrolled creates an engine-owned slider over [0, 100], step 1.
func SliderUncontrolled(initial float64) *SliderState {
	return NewSlider(Uncontrolled, 0, 100, 1, initial)
}

// SetID sets the widget identifier.
func (s *SliderState) SetID(id string) {
	s.id = id
}

// SetLabelledBy references the external labelling element.
func (s *SliderState) SetLabelledBy(id string) {
	s.label = id
}

// OnChange registers the host callback fired on every valid change
// request with the normalized value.
func (s *SliderState) OnChange(fn func(float64)) {
	s.onChange = fn
}

// SetDisabled toggles interactivity.
func (s *SliderState) SetDisabled(disabled bool) {
	s.disabled = disabled
}

// Disabled reports whether interaction is suppressed.
func (s *SliderState) Disabled() bool {
	return s.disabled
}

// Value returns the current value.
func (s *SliderState) Value() float64 {
	return s.value.Value()
}

// Min returns the lower bound.
func (s *SliderState) Min() float64 { return s.min }

// Max returns the upper bound.
func (s *SliderState) Max() float64 { return s.max }

// Step returns the step grid (0 means continuous).
func (s *SliderState) Step() float64 { return s.step }

// SetValue requests a change to the normalized form of v. Suppressed
// while disabled.
func (s *SliderState) SetValue(v float64) (Outcome[float64], bool) {
	if s.disabled {
		return Outcome[float64]{Value: s.value.Value()}, false
	}
	v = s.normalize(v)
	if s.onChange != nil {
		s.onChange(v)
	}
	return s.value.Request(v), true
}

// Increment requests one step up (or a minimal nudge when continuous).
func (s *SliderState) Increment() (Outcome[float64], bool) {
	return s.SetValue(s.value.Value() + s.stride())
}

// Decrement requests one step down.
func (s *SliderState) Decrement() (Outcome[float64], bool) {
	return s.SetValue(s.value.Value() - s.stride())
}

// SyncValue applies the host's decision, normalized.
func (s *SliderState) SyncValue(v float64) {
	s.value.Sync(s.normalize(v))
}

// Attrs composes the slider attribute list with the value triple.
func (s *SliderState) Attrs() Attrs {
	return NewAttrs().
		ID(s.id).
		Role("slider").
		Set("aria-valuemin", ftoa(s.min)).
		Set("aria-valuemax", ftoa(s.max)).
		Set("aria-valuenow", ftoa(s.value.Value())).
		Flag("aria-disabled", s.disabled).
		LabelledBy(s.label).
		List()
}

// Kind implements Snapshotter.
func (s *SliderState) Kind() string { return "slider" }

// Snapshot implements Snapshotter.
func (s *SliderState) Snapshot() map[string]any {
	return map[string]any{"value": s.value.Value()}
}

// Restore implements Snapshotter.
func (s *SliderState) Restore(m map[string]any) error {
	if v, ok := asFloat(m["value"]); ok {
		s.value.Sync(s.normalize(v))
	}
	return nil
}

// normalize clamps v to [min, max] and snaps it to the step grid anchored
// at min.
func (s *SliderState) normalize(v float64) float64 {
	if s.step > 0 {
		v = s.min + math.Round((v-s.min)/s.step)*s.step
	}
	return math.Min(s.max, math.Max(s.min, v))
}

// stride is the keyboard step size: the grid step, or 1% of the range for
// continuous sliders.
func (s *SliderState) stride() float64 {
	if s.step > 0 {
		return s.step
	}
	if s.max > s.min {
		return (s.max - s.min) / 100
	}
	return 1
}
