package tacit

import "time"

// Change is the snapshot returned from a field mutation. It carries the
// ownership outcome for the requested value plus the bookkeeping the host
// needs to schedule validation: the dirty flag and the active debounce
// window (zero when debouncing is off). The engine runs no timers; the
// host honors the window with its own scheduler.
type Change struct {
	Outcome  Outcome[string]
	Dirty    bool
	Debounce time.Duration
}

// Field is the value/dirty/visited/error/debounce core for text inputs.
//
// Validation authority is external: the host computes errors and pushes
// them in through SetErrors; the engine only stores and reports them
// (clearing on Reset). None of the methods can fail.
type Field struct {
	value    Controllable[string]
	initial  string
	dirty    bool
	visited  bool
	errors   []string
	debounce time.Duration
}

// NewField creates a field with the given ownership strategy and initial
// value. Dirty tracking is relative to the initial value.
func NewField(strategy Strategy, initial string) *Field {
	return &Field{
		value:   NewControllable(strategy, initial),
		initial: initial,
	}
}

// SetDebounce sets the validation debounce window reported in change
// snapshots. Zero disables debouncing.
func (f *Field) SetDebounce(d time.Duration) {
	if d < 0 {
		d = 0
	}
	f.debounce = d
}

// Debounce returns the active debounce window.
func (f *Field) Debounce() time.Duration {
	return f.debounce
}

// Change requests a value change through the ownership primitive and
// returns the change snapshot. The field becomes dirty on the first
// divergence from the initial value and stays dirty afterwards.
func (f *Field) Change(v string) Change {
	out := f.value.Request(v)
	if v != f.initial {
		f.dirty = true
	}
	return Change{Outcome: out, Dirty: f.dirty, Debounce: f.debounce}
}

// SyncValue overwrites the value from a Controlled host's decision.
func (f *Field) SyncValue(v string) {
	f.value.Sync(v)
	if v != f.initial {
		f.dirty = true
	}
}

// Value returns the current value.
func (f *Field) Value() string {
	return f.value.Value()
}

// Initial returns the initial value dirty tracking is measured against.
func (f *Field) Initial() string {
	return f.initial
}

// Dirty reports whether the value has ever diverged from the initial one.
func (f *Field) Dirty() bool {
	return f.dirty
}

// Visited reports whether the field has been committed at least once.
func (f *Field) Visited() bool {
	return f.visited
}

// SetErrors replaces the host-supplied validation errors.
func (f *Field) SetErrors(errs []string) {
	f.errors = append(f.errors[:0:0], errs...)
}

// Errors returns the current validation errors. The slice is the field's
// own copy; hosts must go through SetErrors to change it.
func (f *Field) Errors() []string {
	return f.errors
}

// Commit marks the field visited (blur/enter) and reports whether errors
// are present. Errors are not cleared - that is the validation authority's
// call.
func (f *Field) Commit() bool {
	f.visited = true
	return len(f.errors) > 0
}

// Reset restores the initial value and clears dirty, visited, and errors.
// The value is written regardless of strategy: reset is a host decision by
// construction.
func (f *Field) Reset() {
	f.value.Sync(f.initial)
	f.dirty = false
	f.visited = false
	f.errors = nil
}

// Attrs composes the field attribute list: dirty/visited markers and the
// invalid marker when errors are present.
func (f *Field) Attrs() Attrs {
	b := NewAttrs().
		Data("dirty", boolToken(f.dirty)).
		Data("visited", boolToken(f.visited))
	if len(f.errors) > 0 {
		b.Flag("aria-invalid", true)
	}
	return b.List()
}

// boolToken renders a bool for data attributes.
func boolToken(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
