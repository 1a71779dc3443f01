package tacit

import "strings"

// AttrsResult wraps an attribute list with assertion helpers for tests
// and harnesses. It mirrors how hosts consume the engine: read-only,
// order-sensitive.
type AttrsResult struct {
	Attrs Attrs
}

// ReadAttrs wraps an attribute list for assertions.
func ReadAttrs(a Attrs) *AttrsResult {
	return &AttrsResult{Attrs: a}
}

// Has reports whether the key is present.
func (r *AttrsResult) Has(key string) bool {
	return r.Attrs.Has(key)
}

// Value returns the value for key, or "".
func (r *AttrsResult) Value(key string) string {
	v, _ := r.Attrs.Get(key)
	return v
}

// Is reports whether key is present with exactly the given value.
func (r *AttrsResult) Is(key, value string) bool {
	v, ok := r.Attrs.Get(key)
	return ok && v == value
}

// Equal reports byte-for-byte equality with another list, order included.
// This is the comparison SSR/hydration parity rests on.
func (r *AttrsResult) Equal(other Attrs) bool {
	return r.Attrs.String() == other.String()
}

// Diff renders a minimal textual difference against another list, or ""
// when equal. Meant for test failure messages, not machine consumption.
func (r *AttrsResult) Diff(other Attrs) string {
	if r.Equal(other) {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("got:  " + r.Attrs.String() + "\n")
	sb.WriteString("want: " + other.String())
	return sb.String()
}

// Replay constructs two independent instances, drives both through the
// same script, and returns both reads. Identical construction plus an
// identical call sequence must yield byte-identical output; tests assert
// the two reads are equal.
//
//	a, b := tacit.Replay(
//	    func() *tacit.SelectState { return tacit.SelectUncontrolled(4) },
//	    func(s *tacit.SelectState) { s.Open(); s.Step(tacit.Forward, false) },
//	    (*tacit.SelectState).SurfaceAttrs,
//	)
//	if !tacit.ReadAttrs(a).Equal(b) { ... }
func Replay[S any](build func() S, script func(S), read func(S) Attrs) (Attrs, Attrs) {
	first := build()
	second := build()
	if script != nil {
		script(first)
		script(second)
	}
	return read(first), read(second)
}

// RoundTrip encodes a widget through the codec and restores the token
// into fresh, which must be a same-kind instance built with the same
// configuration. Tests then compare the two states' reads.
func RoundTrip(codec *Codec, w, fresh Snapshotter, sensitive bool) error {
	token, err := codec.Encode(w, sensitive)
	if err != nil {
		return err
	}
	return codec.Decode(token, sensitive, fresh)
}
