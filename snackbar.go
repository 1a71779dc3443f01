package tacit

import "time"

// Snackbar message levels. Rendering adapters map these to styling.
const (
	LevelSuccess = "success"
	LevelError   = "error"
	LevelWarning = "warning"
	LevelInfo    = "info"
)

// DefaultSnackbarDismiss is the auto-dismiss window used when the host
// does not supply one.
const DefaultSnackbarDismiss = 3 * time.Second

// SnackbarState is the interaction state of a transient notification
// surface. Show carries a message and level; the auto-dismiss window is
// returned to the host, which runs its own timer and calls Dismiss (or
// SyncOpen(false, ...)) when it fires - the engine schedules nothing.
type SnackbarState struct {
	surface *Surface
	message string
	level   string
	dismiss time.Duration
}

// NewSnackbar creates a closed snackbar with the given open-flag
// strategy.
func NewSnackbar(open Strategy) *SnackbarState {
	return &SnackbarState{
		surface: NewSurface(open, false, "status"),
		level:   LevelInfo,
		dismiss: DefaultSnackbarDismiss,
	}
}

// SnackbarControlled creates a snackbar whose open flag is host-owned.
func SnackbarControlled() *SnackbarState {
	return NewSnackbar(Controlled)
}

// SnackbarUncontrolled creates a snackbar that owns its open flag.
func SnackbarUncontrolled() *SnackbarState {
	return NewSnackbar(Uncontrolled)
}

// Surface exposes the lifecycle core for transition tracking.
func (s *SnackbarState) Surface() *Surface {
	return s.surface
}

// SetAutoDismiss sets the dismiss window reported by Show. Zero disables
// auto-dismissal.
func (s *SnackbarState) SetAutoDismiss(d time.Duration) {
	if d < 0 {
		d = 0
	}
	s.dismiss = d
}

// AutoDismiss returns the dismiss window.
func (s *SnackbarState) AutoDismiss() time.Duration {
	return s.dismiss
}

// Show records the message and requests the snackbar to open, returning
// the open outcome and the dismiss window for the host timer. Showing
// while already visible replaces the message.
func (s *SnackbarState) Show(level, message string) (Outcome[bool], time.Duration) {
	s.level = level
	s.message = message
	return s.surface.Open(), s.dismiss
}

// Dismiss requests the snackbar to close.
func (s *SnackbarState) Dismiss() Outcome[bool] {
	return s.surface.Close()
}

// SyncOpen applies the host's open decision.
func (s *SnackbarState) SyncOpen(open, transition bool) {
	s.surface.SyncOpen(open, transition)
}

// FinishOpen completes an opening transition; no-op otherwise.
func (s *SnackbarState) FinishOpen() {
	s.surface.FinishOpen()
}

// FinishClose completes a closing transition; no-op otherwise.
func (s *SnackbarState) FinishClose() {
	s.surface.FinishClose()
}

// IsOpen returns the authoritative open flag.
func (s *SnackbarState) IsOpen() bool {
	return s.surface.IsOpen()
}

// Phase returns the lifecycle phase.
func (s *SnackbarState) Phase() Phase {
	return s.surface.Phase()
}

// Message returns the current message.
func (s *SnackbarState) Message() string {
	return s.message
}

// Level returns the current level.
func (s *SnackbarState) Level() string {
	return s.level
}

// SurfaceAttrs composes the snackbar attribute list: the status surface
// markers, the level, and the live-region politeness (errors are
// assertive, everything else polite).
func (s *SnackbarState) SurfaceAttrs() Attrs {
	live := "polite"
	if s.level == LevelError {
		live = "assertive"
	}
	return NewAttrs().
		Merge(s.surface.Attrs()).
		Set("aria-live", live).
		Data("level", s.level).
		List()
}

// Kind implements Snapshotter.
func (s *SnackbarState) Kind() string { return "snackbar" }

// Snapshot implements Snapshotter.
func (s *SnackbarState) Snapshot() map[string]any {
	m := make(map[string]any)
	s.surface.snapshotInto(m)
	m["message"] = s.message
	m["level"] = s.level
	return m
}

// Restore implements Snapshotter.
func (s *SnackbarState) Restore(m map[string]any) error {
	s.surface.restoreFrom(m)
	if v, ok := m["message"].(string); ok {
		s.message = v
	}
	if v, ok := m["level"].(string); ok && v != "" {
		s.level = v
	}
	return nil
}
