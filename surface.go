package tacit

// Phase is the lifecycle state of an openable surface.
//
// Closed and Open are the stable states. Opening and Closing only occur
// for widgets that opt into transition tracking (or whose host signals a
// transition through SyncOpen); they exist so animated phases are explicit
// states rather than timers, keeping the engine deterministic.
type Phase int

const (
	PhaseClosed Phase = iota
	PhaseOpening
	PhaseOpen
	PhaseClosing
)

// String returns the phase token used in attributes.
func (p Phase) String() string {
	switch p {
	case PhaseOpening:
		return "opening"
	case PhaseOpen:
		return "open"
	case PhaseClosing:
		return "closing"
	default:
		return "closed"
	}
}

// Surface is the open/closed lifecycle core used by dialog, drawer,
// popover, snackbar, menu, and autocomplete popups.
//
// The authoritative open flag lives in a Controllable[bool]; phase tracks
// where in the lifecycle the surface is. The two stay consistent: an open
// flag of true always pairs with Opening or Open, false with Closing or
// Closed.
type Surface struct {
	open        Controllable[bool]
	phase       Phase
	role        string
	trap        bool
	transitions bool
	labelledBy  string
	describedBy string
}

// NewSurface creates a surface with the given ownership strategy for the
// open flag and the role token emitted in attributes.
func NewSurface(strategy Strategy, initiallyOpen bool, role string) *Surface {
	phase := PhaseClosed
	if initiallyOpen {
		phase = PhaseOpen
	}
	return &Surface{
		open:  NewControllable(strategy, initiallyOpen),
		phase: phase,
		role:  role,
	}
}

// TrapFocus marks the surface as a focus-trapping overlay (dialog,
// drawer). Trapping surfaces emit a modal marker and labelling/description
// reference slots the host fills with external element identifiers.
func (s *Surface) TrapFocus() *Surface {
	s.trap = true
	return s
}

// TrackTransitions opts the surface into transient Opening/Closing phases
// for uncontrolled open/close. Without it, uncontrolled surfaces jump
// straight between Closed and Open.
func (s *Surface) TrackTransitions(on bool) {
	s.transitions = on
}

// Open requests the surface to open. Uncontrolled: applies immediately
// (entering Opening when transition tracking is on, Open otherwise).
// Controlled: returns the intent without touching the phase.
func (s *Surface) Open() Outcome[bool] {
	out := s.open.Request(true)
	if out.Applied {
		s.applyOpen(true, s.transitions)
	}
	return out
}

// Close requests the surface to close. Same ownership semantics as Open.
func (s *Surface) Close() Outcome[bool] {
	out := s.open.Request(false)
	if out.Applied {
		s.applyOpen(false, s.transitions)
	}
	return out
}

// Toggle requests the opposite of the current open flag.
func (s *Surface) Toggle() Outcome[bool] {
	if s.open.Value() {
		return s.Close()
	}
	return s.Open()
}

// SyncOpen sets the authoritative open flag from the host. With
// transition set the surface enters Opening/Closing and waits for the
// matching Finish call; otherwise it lands directly on Open/Closed.
func (s *Surface) SyncOpen(open, transition bool) {
	s.open.Sync(open)
	s.applyOpen(open, transition)
}

// FinishOpen completes an in-flight opening transition. A no-op in any
// phase but Opening, so duplicate or late animation-end events are
// absorbed.
func (s *Surface) FinishOpen() {
	if s.phase == PhaseOpening {
		s.phase = PhaseOpen
	}
}

// FinishClose completes an in-flight closing transition. No-op outside
// Closing.
func (s *Surface) FinishClose() {
	if s.phase == PhaseClosing {
		s.phase = PhaseClosed
	}
}

// IsOpen returns the authoritative open flag.
func (s *Surface) IsOpen() bool {
	return s.open.Value()
}

// Phase returns the lifecycle phase.
func (s *Surface) Phase() Phase {
	return s.phase
}

// Role returns the surface's role token.
func (s *Surface) Role() string {
	return s.role
}

// SetLabelledBy fills the labelling reference slot of a focus-trapping
// surface with an external element identifier.
func (s *Surface) SetLabelledBy(id string) {
	s.labelledBy = id
}

// SetDescribedBy fills the description reference slot of a focus-trapping
// surface.
func (s *Surface) SetDescribedBy(id string) {
	s.describedBy = id
}

// Attrs composes the surface attribute list: role token, open flag, phase
// marker, and, for focus-trapping overlays, the modal marker and labelling
// slots.
func (s *Surface) Attrs() Attrs {
	b := NewAttrs().
		Role(s.role).
		Bool("data-open", s.open.Value()).
		Data("phase", s.phase.String())
	if s.trap {
		b.Flag("aria-modal", true).
			LabelledBy(s.labelledBy).
			DescribedBy(s.describedBy)
	}
	return b.List()
}

// applyOpen lands the phase for the given open flag, entering a transient
// phase only when asked and only when not already stable at the target.
func (s *Surface) applyOpen(open, transition bool) {
	if open {
		if transition && s.phase != PhaseOpen {
			s.phase = PhaseOpening
			return
		}
		s.phase = PhaseOpen
		return
	}
	if transition && s.phase != PhaseClosed {
		s.phase = PhaseClosing
		return
	}
	s.phase = PhaseClosed
}
