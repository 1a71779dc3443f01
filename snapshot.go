package tacit

import (
	"errors"
	"fmt"

	"github.com/tacit-ui/tacit/lib/encoding"
)

// Snapshotter is implemented by every widget state. Snapshots are flat,
// serializable maps carrying the interaction state (phase, highlight,
// selection, value bookkeeping) - not the configuration (roles, callbacks,
// control strategies), which the reconstructing call site supplies when it
// builds the fresh instance to restore into.
type Snapshotter interface {
	// Kind returns the widget kind token ("select", "dialog", ...) used to
	// reject snapshots applied to the wrong widget type.
	Kind() string

	// Snapshot returns the serializable interaction state.
	Snapshot() map[string]any

	// Restore applies a snapshot previously produced by a widget of the
	// same kind. Unknown keys are ignored; indices are clamped against the
	// receiver's configuration.
	Restore(map[string]any) error
}

// Codec turns widget snapshots into tamper-proof tokens a host can carry
// across the SSR/hydration boundary.
type Codec struct {
	enc *encoding.Encoder
}

// NewCodec creates a codec with the given key. Keys shorter than 32 bytes
// are stretched; see lib/encoding.
func NewCodec(key []byte) (*Codec, error) {
	enc, err := encoding.NewEncoder(key)
	if err != nil {
		return nil, err
	}
	return &Codec{enc: enc}, nil
}

// Encode wraps the widget's snapshot with its kind token and encodes it.
// Sensitive snapshots are encrypted; the default is signed and visible.
func (c *Codec) Encode(s Snapshotter, sensitive bool) (string, error) {
	return c.enc.Encode(map[string]any{
		"k": s.Kind(),
		"s": s.Snapshot(),
	}, sensitive)
}

// Decode verifies a token and restores it into the given widget state.
// The widget must be of the kind that produced the token.
func (c *Codec) Decode(token string, sensitive bool, s Snapshotter) error {
	m, err := c.enc.Decode(token, sensitive)
	if err != nil {
		return wrapEncodingError(err)
	}
	kind, _ := m["k"].(string)
	if kind != s.Kind() {
		return fmt.Errorf("%w: token is %q, widget is %q", ErrKindMismatch, kind, s.Kind())
	}
	snap, ok := asMap(m["s"])
	if !ok {
		return ErrInvalidFormat
	}
	return s.Restore(snap)
}

// wrapEncodingError maps encoding package errors onto the root sentinels.
func wrapEncodingError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, encoding.ErrInvalidFormat):
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	case errors.Is(err, encoding.ErrSignatureInvalid):
		return ErrSignatureInvalid
	case errors.Is(err, encoding.ErrDecryptFailed):
		return ErrDecryptFailed
	default:
		return err
	}
}

// Core snapshot contributions. Widgets merge these into their own maps so
// every widget file stays free of serialization detail.

func (s *Surface) snapshotInto(m map[string]any) {
	m["open"] = s.open.Value()
	m["phase"] = int(s.phase)
}

func (s *Surface) restoreFrom(m map[string]any) {
	if v, ok := m["open"].(bool); ok {
		s.open.Sync(v)
	}
	if p, ok := asInt(m["phase"]); ok && p >= int(PhaseClosed) && p <= int(PhaseClosing) {
		s.phase = Phase(p)
	}
	// Keep the pair consistent if the token carried a torn state.
	s.applyOpen(s.open.Value(), s.phase == PhaseOpening || s.phase == PhaseClosing)
}

func (l *List) snapshotInto(m map[string]any) {
	m["count"] = l.Count()
	m["highlighted"] = l.highlighted
	m["disabled"] = append([]bool(nil), l.disabled...)
}

func (l *List) restoreFrom(m map[string]any) {
	if n, ok := asInt(m["count"]); ok {
		l.SetItemCount(n)
	}
	if mask, ok := asBools(m["disabled"]); ok {
		for i := 0; i < len(mask) && i < len(l.disabled); i++ {
			l.disabled[i] = mask[i]
		}
	}
	if h, ok := asInt(m["highlighted"]); ok {
		h = clampIndex(h, l.Count())
		if h == NoIndex || !l.disabled[h] {
			l.highlighted = h
		}
	}
}

func (f *Field) snapshotInto(m map[string]any) {
	m["value"] = f.value.Value()
	m["dirty"] = f.dirty
	m["visited"] = f.visited
	m["errors"] = append([]string(nil), f.errors...)
}

func (f *Field) restoreFrom(m map[string]any) {
	if v, ok := m["value"].(string); ok {
		f.value.Sync(v)
	}
	if v, ok := m["dirty"].(bool); ok {
		f.dirty = v
	}
	if v, ok := m["visited"].(bool); ok {
		f.visited = v
	}
	if errs, ok := asStrings(m["errors"]); ok {
		f.errors = errs
	}
}

func (a *Anchor) snapshotInto(m map[string]any) {
	m["anchor"] = a.id
	m["preferred"] = string(a.preferred)
	m["resolved"] = string(a.resolved)
}

func (a *Anchor) restoreFrom(m map[string]any) {
	if v, ok := m["anchor"].(string); ok {
		a.id = v
	}
	if v, ok := m["preferred"].(string); ok && v != "" {
		a.preferred = Placement(v)
		a.resolved = a.preferred
	}
	if v, ok := m["resolved"].(string); ok && v != "" {
		a.resolved = Placement(v)
	}
}

// msgpack round-trips numbers through the smallest integer type that
// fits, so snapshot readers coerce instead of type-asserting.

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		return int(n), true
	case uint:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	default:
		if i, ok := asInt(v); ok {
			return float64(i), true
		}
		return 0, false
	}
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			key, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[key] = val
		}
		return out, true
	default:
		return nil, false
	}
}

func asBools(v any) ([]bool, bool) {
	items, ok := v.([]any)
	if !ok {
		if b, ok := v.([]bool); ok {
			return append([]bool(nil), b...), true
		}
		return nil, false
	}
	out := make([]bool, 0, len(items))
	for _, it := range items {
		b, ok := it.(bool)
		if !ok {
			return nil, false
		}
		out = append(out, b)
	}
	return out, true
}

func asStrings(v any) ([]string, bool) {
	items, ok := v.([]any)
	if !ok {
		if s, ok := v.([]string); ok {
			return append([]string(nil), s...), true
		}
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		s, ok := it.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

func asInts(v any) ([]int, bool) {
	items, ok := v.([]any)
	if !ok {
		if s, ok := v.([]int); ok {
			return append([]int(nil), s...), true
		}
		return nil, false
	}
	out := make([]int, 0, len(items))
	for _, it := range items {
		n, ok := asInt(it)
		if !ok {
			return nil, false
		}
		out = append(out, n)
	}
	return out, true
}
