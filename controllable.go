package tacit

// Strategy declares who owns a logical widget value.
//
// Strategy is attached per value, not per widget: a select can be
// Controlled for its open flag and Uncontrolled for its selection at the
// same time.
type Strategy int

const (
	// Uncontrolled means the widget state owns the value. Mutation methods
	// write it directly.
	Uncontrolled Strategy = iota

	// Controlled means the host owns the value. Mutation methods return an
	// intent without mutating; the host applies its decision back through
	// a Sync call (including re-syncing the old value to reject the
	// intent).
	Controlled
)

// String returns the strategy name for data attributes and debugging.
func (s Strategy) String() string {
	if s == Controlled {
		return "controlled"
	}
	return "uncontrolled"
}

// Outcome is the result of requesting a value change on a Controllable.
//
// Applied reports whether the engine wrote the value itself (Uncontrolled).
// When Applied is false the outcome is an intent: Value carries the
// requested value for the host to accept or reject via Sync.
type Outcome[T any] struct {
	Value   T
	Applied bool
}

// Controllable is the controlled/uncontrolled value-ownership primitive
// every stateful widget is built on.
//
// It fires no callbacks itself; callers wire notification. The invariant
// the rest of the engine depends on: under Controlled, the value changes
// only via Sync, never via Request.
type Controllable[T any] struct {
	strategy Strategy
	value    T
}

// NewControllable creates a value with the given ownership strategy and
// initial value.
func NewControllable[T any](strategy Strategy, initial T) Controllable[T] {
	return Controllable[T]{strategy: strategy, value: initial}
}

// Request asks for a value change.
//
// Uncontrolled: writes the value and returns an applied outcome.
// Controlled: leaves the value untouched and returns an intent.
func (c *Controllable[T]) Request(v T) Outcome[T] {
	if c.strategy == Controlled {
		return Outcome[T]{Value: v}
	}
	c.value = v
	return Outcome[T]{Value: v, Applied: true}
}

// Sync overwrites the value unconditionally. A Controlled host calls this
// after deciding on an intent; re-syncing the previous value rejects it.
func (c *Controllable[T]) Sync(v T) {
	c.value = v
}

// Value returns the current value.
func (c *Controllable[T]) Value() T {
	return c.value
}

// Strategy returns the ownership strategy.
func (c *Controllable[T]) Strategy() Strategy {
	return c.strategy
}

// Controlled reports whether the host owns the value.
func (c *Controllable[T]) Controlled() bool {
	return c.strategy == Controlled
}
