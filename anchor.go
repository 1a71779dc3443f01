package tacit

// AnchorGeometry is the position/size rectangle of the element a floating
// surface is positioned relative to, in abstract viewport units. Layout
// measurement is a host concern; the engine only records what it is given.
type AnchorGeometry struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Placement is a compass-style position of a floating surface relative to
// its anchor.
type Placement string

const (
	PlacementTop         Placement = "top"
	PlacementTopStart    Placement = "top-start"
	PlacementTopEnd      Placement = "top-end"
	PlacementBottom      Placement = "bottom"
	PlacementBottomStart Placement = "bottom-start"
	PlacementBottomEnd   Placement = "bottom-end"
	PlacementStart       Placement = "start"
	PlacementEnd         Placement = "end"
)

// Resolver is a host-supplied collision strategy. It receives the current
// anchor geometry and the preferred placement and returns the placement to
// record as resolved.
type Resolver func(AnchorGeometry, Placement) Placement

// Anchor is the anchor geometry bookkeeping and placement resolution
// plumbing used by popover, menu, and select surfaces.
//
// The engine implements no viewport collision math itself; it provides the
// deterministic last-write-wins bookkeeping any resolver strategy plugs
// into. Without geometry the resolved placement stays equal to the
// preferred one - rendering is never blocked on missing measurement data.
type Anchor struct {
	id        string
	geometry  *AnchorGeometry
	preferred Placement
	resolved  Placement
}

// NewAnchor creates an anchor with the given preferred placement.
func NewAnchor(preferred Placement) *Anchor {
	return &Anchor{preferred: preferred, resolved: preferred}
}

// SetMetadata records the opaque identifier of the host-owned anchor
// element. The engine never owns host objects; a back-reference is always
// an identifier plus externally supplied geometry.
func (a *Anchor) SetMetadata(id string) {
	a.id = id
}

// ID returns the anchor element identifier, or "".
func (a *Anchor) ID() string {
	return a.id
}

// SetGeometry records a fresh measurement from the host.
func (a *Anchor) SetGeometry(g AnchorGeometry) {
	a.geometry = &g
}

// ClearGeometry drops the recorded measurement; resolution falls back to
// the preferred placement.
func (a *Anchor) ClearGeometry() {
	a.geometry = nil
	a.resolved = a.preferred
}

// Geometry returns the recorded measurement and whether one is present.
func (a *Anchor) Geometry() (AnchorGeometry, bool) {
	if a.geometry == nil {
		return AnchorGeometry{}, false
	}
	return *a.geometry, true
}

// SetPreferred changes the preferred placement. The resolved placement
// follows until the next ResolveWith.
func (a *Anchor) SetPreferred(p Placement) {
	a.preferred = p
	a.resolved = p
}

// Preferred returns the preferred placement.
func (a *Anchor) Preferred() Placement {
	return a.preferred
}

// Resolved returns the last resolved placement. Defaults to preferred.
func (a *Anchor) Resolved() Placement {
	return a.resolved
}

// ResolveWith runs the host resolver against the recorded geometry and
// records its answer. Without geometry this is a no-op and the resolved
// placement stays at preferred (fail-open: measurement is inherently a
// host/layout concern).
func (a *Anchor) ResolveWith(resolve Resolver) Placement {
	if a.geometry != nil && resolve != nil {
		a.resolved = resolve(*a.geometry, a.preferred)
	}
	return a.resolved
}

// Attrs composes the anchor-related attribute pairs a floating surface
// merges into its own list: the anchor reference and the placement
// markers.
func (a *Anchor) Attrs() Attrs {
	return NewAttrs().
		SetNonEmpty("data-anchor", a.id).
		Data("placement", string(a.resolved)).
		Data("preferred-placement", string(a.preferred)).
		List()
}
