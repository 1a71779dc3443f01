package tacit

// DialogState is the interaction state of a modal dialog: a focus-trapping
// surface with labelling and description reference slots the host fills
// with external element identifiers.
type DialogState struct {
	surface *Surface
}

// NewDialog creates a dialog with the given ownership strategy for the
// open flag.
func NewDialog(open Strategy, initiallyOpen bool) *DialogState {
	return &DialogState{
		surface: NewSurface(open, initiallyOpen, "dialog").TrapFocus(),
	}
}

// DialogControlled creates a closed dialog whose open flag is host-owned.
func DialogControlled() *DialogState {
	return NewDialog(Controlled, false)
}

// DialogUncontrolled creates a closed dialog that owns its open flag.
func DialogUncontrolled() *DialogState {
	return NewDialog(Uncontrolled, false)
}

// Surface exposes the lifecycle core for transition tracking.
func (d *DialogState) Surface() *Surface {
	return d.surface
}

// Open requests the dialog to open; intent under Controlled.
func (d *DialogState) Open() Outcome[bool] {
	return d.surface.Open()
}

// Close requests the dialog to close.
func (d *DialogState) Close() Outcome[bool] {
	return d.surface.Close()
}

// SyncOpen applies the host's open decision; see Surface.SyncOpen.
func (d *DialogState) SyncOpen(open, transition bool) {
	d.surface.SyncOpen(open, transition)
}

// FinishOpen completes an opening transition; no-op otherwise.
func (d *DialogState) FinishOpen() {
	d.surface.FinishOpen()
}

// FinishClose completes a closing transition; no-op otherwise.
func (d *DialogState) FinishClose() {
	d.surface.FinishClose()
}

// IsOpen returns the authoritative open flag.
func (d *DialogState) IsOpen() bool {
	return d.surface.IsOpen()
}

// Phase returns the lifecycle phase.
func (d *DialogState) Phase() Phase {
	return d.surface.Phase()
}

// SetLabelledBy fills the labelling slot with a host element identifier.
func (d *DialogState) SetLabelledBy(id string) {
	d.surface.SetLabelledBy(id)
}

// SetDescribedBy fills the description slot.
func (d *DialogState) SetDescribedBy(id string) {
	d.surface.SetDescribedBy(id)
}

// SurfaceAttrs composes the dialog attribute list.
func (d *DialogState) SurfaceAttrs() Attrs {
	return d.surface.Attrs()
}

// Kind implements Snapshotter.
func (d *DialogState) Kind() string { return "dialog" }

// Snapshot implements Snapshotter.
func (d *DialogState) Snapshot() map[string]any {
	m := make(map[string]any)
	d.surface.snapshotInto(m)
	return m
}

// Restore implements Snapshotter.
func (d *DialogState) Restore(m map[string]any) error {
	d.surface.restoreFrom(m)
	return nil
}

// DrawerState is a dialog variant that slides in from a viewport edge. It
// keeps the focus-trapping dialog contract and adds the edge it is
// attached to.
type DrawerState struct {
	surface *Surface
	edge    Placement
}

// NewDrawer creates a drawer attached to the given edge (PlacementStart,
// PlacementEnd, PlacementTop, or PlacementBottom).
func NewDrawer(open Strategy, edge Placement) *DrawerState {
	return &DrawerState{
		surface: NewSurface(open, false, "dialog").TrapFocus(),
		edge:    edge,
	}
}

// DrawerControlled creates a start-edge drawer with a host-owned open flag.
func DrawerControlled() *DrawerState {
	return NewDrawer(Controlled, PlacementStart)
}

// DrawerUncontrolled creates a start-edge drawer that owns its open flag.
func DrawerUncontrolled() *DrawerState {
	return NewDrawer(Uncontrolled, PlacementStart)
}

// Surface exposes the lifecycle core.
func (d *DrawerState) Surface() *Surface {
	return d.surface
}

// Edge returns the viewport edge the drawer is attached to.
func (d *DrawerState) Edge() Placement {
	return d.edge
}

// SetEdge changes the attached edge.
func (d *DrawerState) SetEdge(p Placement) {
	d.edge = p
}

// Open requests the drawer to open.
func (d *DrawerState) Open() Outcome[bool] {
	return d.surface.Open()
}

// Close requests the drawer to close.
func (d *DrawerState) Close() Outcome[bool] {
	return d.surface.Close()
}

// SyncOpen applies the host's open decision.
func (d *DrawerState) SyncOpen(open, transition bool) {
	d.surface.SyncOpen(open, transition)
}

// FinishOpen completes an opening transition; no-op otherwise.
func (d *DrawerState) FinishOpen() {
	d.surface.FinishOpen()
}

// FinishClose completes a closing transition; no-op otherwise.
func (d *DrawerState) FinishClose() {
	d.surface.FinishClose()
}

// IsOpen returns the authoritative open flag.
func (d *DrawerState) IsOpen() bool {
	return d.surface.IsOpen()
}

// Phase returns the lifecycle phase.
func (d *DrawerState) Phase() Phase {
	return d.surface.Phase()
}

// SetLabelledBy fills the labelling slot.
func (d *DrawerState) SetLabelledBy(id string) {
	d.surface.SetLabelledBy(id)
}

// SetDescribedBy fills the description slot.
func (d *DrawerState) SetDescribedBy(id string) {
	d.surface.SetDescribedBy(id)
}

// SurfaceAttrs composes the drawer attribute list with its edge marker.
func (d *DrawerState) SurfaceAttrs() Attrs {
	return NewAttrs().
		Merge(d.surface.Attrs()).
		Data("edge", string(d.edge)).
		List()
}

// Kind implements Snapshotter.
func (d *DrawerState) Kind() string { return "drawer" }

// Snapshot implements Snapshotter.
func (d *DrawerState) Snapshot() map[string]any {
	m := make(map[string]any)
	d.surface.snapshotInto(m)
	m["edge"] = string(d.edge)
	return m
}

// Restore implements Snapshotter.
func (d *DrawerState) Restore(m map[string]any) error {
	d.surface.restoreFrom(m)
	if e, ok := m["edge"].(string); ok && e != "" {
		d.edge = Placement(e)
	}
	return nil
}
