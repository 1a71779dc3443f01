package tacit

// PopoverState is the interaction state of a non-modal floating surface
// anchored to a trigger element. Unlike a dialog it does not trap focus;
// like every anchored surface it resolves its placement through a
// host-supplied collision strategy.
type PopoverState struct {
	surface *Surface
	anchor  *Anchor
	id      string
}

// NewPopover creates a closed popover with the given open-flag strategy
// and preferred placement.
func NewPopover(open Strategy, preferred Placement) *PopoverState {
	return &PopoverState{
		surface: NewSurface(open, false, "dialog"),
		anchor:  NewAnchor(preferred),
	}
}

// PopoverControlled creates a bottom-placed popover with a host-owned open
// flag.
func PopoverControlled() *PopoverState {
	return NewPopover(Controlled, PlacementBottom)
}

// PopoverUncontrolled creates a bottom-placed popover that owns its open
// flag.
func PopoverUncontrolled() *PopoverState {
	return NewPopover(Uncontrolled, PlacementBottom)
}

// SetID sets the widget identifier emitted on the trigger.
func (p *PopoverState) SetID(id string) {
	p.id = id
}

// Surface exposes the lifecycle core.
func (p *PopoverState) Surface() *Surface {
	return p.surface
}

// Anchor exposes the anchor/placement core.
func (p *PopoverState) Anchor() *Anchor {
	return p.anchor
}

// Open requests the popover to open.
func (p *PopoverState) Open() Outcome[bool] {
	return p.surface.Open()
}

// Close requests the popover to close.
func (p *PopoverState) Close() Outcome[bool] {
	return p.surface.Close()
}

// Toggle requests the opposite of the current open flag.
func (p *PopoverState) Toggle() Outcome[bool] {
	return p.surface.Toggle()
}

// SyncOpen applies the host's open decision.
func (p *PopoverState) SyncOpen(open, transition bool) {
	p.surface.SyncOpen(open, transition)
}

// IsOpen returns the authoritative open flag.
func (p *PopoverState) IsOpen() bool {
	return p.surface.IsOpen()
}

// Phase returns the lifecycle phase.
func (p *PopoverState) Phase() Phase {
	return p.surface.Phase()
}

// SetAnchorMetadata records the trigger element identifier and its latest
// measurement in one call, the common host pattern after layout.
func (p *PopoverState) SetAnchorMetadata(id string, g AnchorGeometry) {
	p.anchor.SetMetadata(id)
	p.anchor.SetGeometry(g)
}

// ResolveWith runs the host collision resolver; see Anchor.ResolveWith.
func (p *PopoverState) ResolveWith(resolve Resolver) Placement {
	return p.anchor.ResolveWith(resolve)
}

// ResolvedPlacement returns the last resolved placement.
func (p *PopoverState) ResolvedPlacement() Placement {
	return p.anchor.Resolved()
}

// TriggerAttrs composes the attribute list for the trigger element.
func (p *PopoverState) TriggerAttrs() Attrs {
	return NewAttrs().
		ID(p.id).
		Set("aria-haspopup", "dialog").
		Bool("aria-expanded", p.surface.IsOpen()).
		List()
}

// SurfaceAttrs composes the popover attribute list with placement markers.
func (p *PopoverState) SurfaceAttrs() Attrs {
	return NewAttrs().
		Merge(p.surface.Attrs()).
		Merge(p.anchor.Attrs()).
		List()
}

// Kind implements Snapshotter.
func (p *PopoverState) Kind() string { return "popover" }

// Snapshot implements Snapshotter.
func (p *PopoverState) Snapshot() map[string]any {
	m := make(map[string]any)
	p.surface.snapshotInto(m)
	p.anchor.snapshotInto(m)
	return m
}

// Restore implements Snapshotter.
func (p *PopoverState) Restore(m map[string]any) error {
	p.surface.restoreFrom(m)
	p.anchor.restoreFrom(m)
	return nil
}
