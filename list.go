package tacit

import (
	"strings"
	"time"
)

// NoIndex is the "no item active" value for highlight and selection
// indices. All index-returning accessors use it instead of an error;
// all index-accepting methods treat out-of-range input as a no-op.
const NoIndex = -1

// Direction is a step direction through a navigable list.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// Orientation is the navigation axis of a list-like widget. It is emitted
// as an attribute for hosts to map arrow keys; the engine itself only
// walks Forward/Backward.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

// String returns the orientation token used in attributes.
func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// ActivationMode controls when highlight changes activate an item.
type ActivationMode int

const (
	// ActivateAutomatic activates on every highlight change (typical for
	// tabs).
	ActivateAutomatic ActivationMode = iota

	// ActivateManual requires an explicit activation key or click.
	ActivateManual
)

// DefaultTypeaheadTimeout is the typeahead buffer expiry used when the
// host does not supply one.
const DefaultTypeaheadTimeout = 500 * time.Millisecond

// List is the disabled-aware index/highlight bookkeeping and
// keyboard/typeahead policy shared by select, menu, autocomplete, tabs,
// radio group, toggle group, and accordion.
//
// List owns the highlight; selection ownership differs per widget (single
// vs multi, controlled vs uncontrolled) and lives in the widget state as a
// Controllable. The invariant List maintains: the highlight never
// references a disabled entry, and no index is ever dereferenced out of
// bounds.
type List struct {
	disabled    []bool
	labels      []string
	highlighted int
	orientation Orientation
	activation  ActivationMode

	taBuffer  string
	taLast    time.Time
	taTimeout time.Duration
	now       func() time.Time
}

// NewList creates a list with n items, all enabled, nothing highlighted.
func NewList(n int) *List {
	if n < 0 {
		n = 0
	}
	return &List{
		disabled:    make([]bool, n),
		labels:      make([]string, n),
		highlighted: NoIndex,
		taTimeout:   DefaultTypeaheadTimeout,
		now:         time.Now,
	}
}

// Count returns the item count.
func (l *List) Count() int {
	return len(l.disabled)
}

// Highlighted returns the highlighted index, or NoIndex.
func (l *List) Highlighted() int {
	return l.highlighted
}

// Orientation returns the navigation axis.
func (l *List) Orientation() Orientation {
	return l.orientation
}

// SetOrientation sets the navigation axis.
func (l *List) SetOrientation(o Orientation) {
	l.orientation = o
}

// Activation returns the activation mode.
func (l *List) Activation() ActivationMode {
	return l.activation
}

// SetActivation sets the activation mode.
func (l *List) SetActivation(m ActivationMode) {
	l.activation = m
}

// Label returns the typeahead label for item i, or "" when out of range.
func (l *List) Label(i int) string {
	if !l.inRange(i) {
		return ""
	}
	return l.labels[i]
}

// SetLabel sets the typeahead label for item i. Out-of-range is a no-op.
func (l *List) SetLabel(i int, label string) {
	if l.inRange(i) {
		l.labels[i] = label
	}
}

// SetLabels replaces all labels. Extra labels are dropped; missing ones
// stay empty.
func (l *List) SetLabels(labels []string) {
	for i := range l.labels {
		if i < len(labels) {
			l.labels[i] = labels[i]
		} else {
			l.labels[i] = ""
		}
	}
}

// Disabled reports whether item i is disabled. Out-of-range indices
// report true: they are never valid navigation targets.
func (l *List) Disabled(i int) bool {
	if !l.inRange(i) {
		return true
	}
	return l.disabled[i]
}

// SetDisabled toggles item i. Disabling the currently highlighted index
// immediately relocates the highlight to the nearest enabled index
// (forward first, then backward), so the list is never left pointing at an
// inert target. If every item ends up disabled the highlight clears.
func (l *List) SetDisabled(i int, disabled bool) {
	if !l.inRange(i) {
		return
	}
	l.disabled[i] = disabled
	if disabled && l.highlighted == i {
		next := l.scan(i, Forward, false)
		if next == NoIndex {
			next = l.scan(i, Backward, false)
		}
		l.highlighted = next
	}
}

// SetItemCount resizes the list to n items. New slots default to enabled
// with empty labels. A highlight that now references an out-of-range
// index clears to NoIndex.
func (l *List) SetItemCount(n int) {
	if n < 0 {
		n = 0
	}
	switch {
	case n < len(l.disabled):
		l.disabled = l.disabled[:n]
		l.labels = l.labels[:n]
	case n > len(l.disabled):
		l.disabled = append(l.disabled, make([]bool, n-len(l.disabled))...)
		l.labels = append(l.labels, make([]string, n-len(l.labels))...)
	}
	if l.highlighted >= n {
		l.highlighted = NoIndex
	}
}

// Highlight moves the highlight to i. Disabled or out-of-range targets
// are suppressed; returns whether the highlight moved.
func (l *List) Highlight(i int) bool {
	if l.Disabled(i) {
		return false
	}
	l.highlighted = i
	return true
}

// ClearHighlight resets the highlight to NoIndex.
func (l *List) ClearHighlight() {
	l.highlighted = NoIndex
}

// Step walks from the current highlight in the given direction, skipping
// disabled items, and highlights the first enabled index found. With wrap
// it wraps around once. Starting from NoIndex the walk begins at the
// boundary (first index going Forward, last going Backward).
//
// Returns the new highlight, or NoIndex if no enabled index exists in that
// direction - in which case the highlight is left unchanged.
func (l *List) Step(dir Direction, wrap bool) int {
	var found int
	if l.highlighted == NoIndex {
		found = l.edge(dir)
	} else {
		found = l.scan(l.highlighted, dir, wrap)
	}
	if found == NoIndex {
		return NoIndex
	}
	l.highlighted = found
	return found
}

// First highlights the first enabled index, or returns NoIndex leaving
// the highlight unchanged.
func (l *List) First() int {
	if i := l.edge(Forward); i != NoIndex {
		l.highlighted = i
		return i
	}
	return NoIndex
}

// Last highlights the last enabled index, or returns NoIndex leaving the
// highlight unchanged.
func (l *List) Last() int {
	if i := l.edge(Backward); i != NoIndex {
		l.highlighted = i
		return i
	}
	return NoIndex
}

// CanActivate reports whether item i is a valid activation target:
// in range and enabled.
func (l *List) CanActivate(i int) bool {
	return !l.Disabled(i)
}

// SetTypeaheadTimeout sets the rolling buffer expiry window. The engine
// runs no timers; expiry is evaluated lazily against the clock on each
// keystroke.
func (l *List) SetTypeaheadTimeout(d time.Duration) {
	if d > 0 {
		l.taTimeout = d
	}
}

// TypeaheadTimeout returns the expiry window for the host's own timer
// integration.
func (l *List) TypeaheadTimeout() time.Duration {
	return l.taTimeout
}

// SetClock overrides the clock used for typeahead expiry. Tests inject a
// fake clock to drive expiry deterministically.
func (l *List) SetClock(now func() time.Time) {
	if now != nil {
		l.now = now
	}
}

// Typeahead feeds one keystroke into the rolling buffer and highlights the
// first enabled item whose label starts with the buffer
// (case-insensitive). Repeating the first letter cycles through its
// matches. A keystroke that matches nothing resets the buffer and leaves
// the highlight unchanged.
//
// Returns the new highlight, or NoIndex when nothing matched.
func (l *List) Typeahead(ch rune) int {
	now := l.now()
	if l.taBuffer != "" && now.Sub(l.taLast) > l.taTimeout {
		l.taBuffer = ""
	}
	l.taLast = now

	next := l.taBuffer + strings.ToLower(string(ch))
	query := next
	from := l.highlighted
	after := false

	if repeatedRune(next) {
		// Standard repeated-first-letter behavior: match the single
		// character and advance past the current highlight.
		query = next[:1]
		after = true
	} else if from != NoIndex && strings.EqualFold(l.labels[from], next) {
		// Buffer reproduces the highlighted label exactly: cycle to the
		// next match.
		after = true
	}

	match := l.matchFrom(from, query, after)
	if match == NoIndex {
		l.taBuffer = ""
		return NoIndex
	}
	l.taBuffer = next
	l.highlighted = match
	return match
}

// TypeaheadBuffer returns the current rolling buffer (lowercased). Exposed
// for hosts that render a search hint.
func (l *List) TypeaheadBuffer() string {
	return l.taBuffer
}

// ItemAttrs composes the attribute set for item i with the given role
// token: a positional data marker, a disabled marker when disabled, and a
// highlight marker when highlighted. Composed fresh per call; nothing is
// cached.
func (l *List) ItemAttrs(i int, role string) Attrs {
	b := NewAttrs().
		Role(role).
		Data("index", itoa(i))
	if l.Disabled(i) {
		b.Flag("aria-disabled", true).Data("disabled", "true")
	}
	if i == l.highlighted {
		b.Data("highlighted", "true")
	}
	return b.List()
}

// inRange reports whether i is a valid index.
func (l *List) inRange(i int) bool {
	return i >= 0 && i < len(l.disabled)
}

// edge returns the first enabled index from the boundary in dir, or
// NoIndex.
func (l *List) edge(dir Direction) int {
	n := len(l.disabled)
	if dir == Forward {
		for i := 0; i < n; i++ {
			if !l.disabled[i] {
				return i
			}
		}
		return NoIndex
	}
	for i := n - 1; i >= 0; i-- {
		if !l.disabled[i] {
			return i
		}
	}
	return NoIndex
}

// scan walks from (exclusive) start in dir, skipping disabled indices,
// wrapping around once when wrap is set. Returns NoIndex when no enabled
// index is reachable.
func (l *List) scan(start int, dir Direction, wrap bool) int {
	n := len(l.disabled)
	if n == 0 {
		return NoIndex
	}
	delta := 1
	if dir == Backward {
		delta = -1
	}
	for i := start + delta; i >= 0 && i < n; i += delta {
		if !l.disabled[i] {
			return i
		}
	}
	if !wrap {
		return NoIndex
	}
	if dir == Forward {
		for i := 0; i <= start && i < n; i++ {
			if !l.disabled[i] {
				return i
			}
		}
	} else {
		for i := n - 1; i >= start && i >= 0; i-- {
			if !l.disabled[i] {
				return i
			}
		}
	}
	return NoIndex
}

// matchFrom finds the first enabled index whose label starts with query
// (case-insensitive), scanning cyclically from `from`. With after set the
// scan starts past `from`; otherwise `from` itself is eligible. A NoIndex
// origin scans from the top.
func (l *List) matchFrom(from int, query string, after bool) int {
	n := len(l.disabled)
	if n == 0 || query == "" {
		return NoIndex
	}
	start := from
	if start == NoIndex {
		start = 0
	} else if after {
		start = (start + 1) % n
	}
	for off := 0; off < n; off++ {
		i := (start + off) % n
		if l.disabled[i] {
			continue
		}
		if strings.HasPrefix(strings.ToLower(l.labels[i]), query) {
			return i
		}
	}
	return NoIndex
}

// repeatedRune reports whether s is one rune repeated.
func repeatedRune(s string) bool {
	if s == "" {
		return false
	}
	first := []rune(s)[0]
	for _, r := range s {
		if r != first {
			return false
		}
	}
	return true
}
