package tacit

import (
	"errors"
	"testing"
)

func testCodec(t *testing.T) *Codec {
	t.Helper()
	c, err := NewCodec([]byte("test-key"))
	if err != nil {
		t.Fatalf("NewCodec failed: %v", err)
	}
	return c
}

func TestCodecSelectRoundTrip(t *testing.T) {
	codec := testCodec(t)

	sel := SelectUncontrolled(4)
	sel.Items().SetLabels([]string{"Ash", "Beech", "Cedar", "Oak"})
	sel.Items().SetDisabled(1, true)
	sel.Open()
	sel.Step(Forward, false)
	sel.Step(Forward, false)
	sel.ActivateHighlighted()

	fresh := SelectUncontrolled(4)
	fresh.Items().SetLabels([]string{"Ash", "Beech", "Cedar", "Oak"})
	if err := RoundTrip(codec, sel, fresh, false); err != nil {
		t.Fatalf("round trip failed: %v", err)
	}

	if fresh.Selected() != sel.Selected() {
		t.Errorf("Selected() = %d, want %d", fresh.Selected(), sel.Selected())
	}
	if fresh.Highlighted() != sel.Highlighted() {
		t.Errorf("Highlighted() = %d, want %d", fresh.Highlighted(), sel.Highlighted())
	}
	if fresh.IsOpen() != sel.IsOpen() {
		t.Errorf("IsOpen() = %v, want %v", fresh.IsOpen(), sel.IsOpen())
	}
	if !fresh.Items().Disabled(1) {
		t.Error("disabled mask must survive the round trip")
	}
	if !ReadAttrs(fresh.SurfaceAttrs()).Equal(sel.SurfaceAttrs()) {
		t.Errorf("hydration divergence:\n%s", ReadAttrs(fresh.SurfaceAttrs()).Diff(sel.SurfaceAttrs()))
	}
}

func TestCodecSensitiveRoundTrip(t *testing.T) {
	codec := testCodec(t)

	tf := TextFieldUncontrolled("")
	tf.Change("secret value")
	tf.SetErrors([]string{"too plain"})
	tf.Commit()

	fresh := TextFieldUncontrolled("")
	if err := RoundTrip(codec, tf, fresh, true); err != nil {
		t.Fatalf("round trip failed: %v", err)
	}
	if fresh.Value() != "secret value" || !fresh.Dirty() || !fresh.Visited() {
		t.Errorf("restored: value=%q dirty=%v visited=%v", fresh.Value(), fresh.Dirty(), fresh.Visited())
	}
	if len(fresh.Errors()) != 1 {
		t.Errorf("Errors() = %v", fresh.Errors())
	}
}

func TestCodecKindMismatch(t *testing.T) {
	codec := testCodec(t)

	token, err := codec.Encode(DialogUncontrolled(), false)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	err = codec.Decode(token, false, MenuUncontrolled(2))
	if !errors.Is(err, ErrKindMismatch) {
		t.Errorf("Decode = %v, want ErrKindMismatch", err)
	}
}

func TestCodecTamperedToken(t *testing.T) {
	codec := testCodec(t)

	token, err := codec.Encode(DialogUncontrolled(), false)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	tampered := token[:len(token)-2] + "XX"
	err = codec.Decode(tampered, false, DialogUncontrolled())
	if !errors.Is(err, ErrSignatureInvalid) {
		t.Errorf("Decode = %v, want ErrSignatureInvalid", err)
	}
}

func TestCodecGarbageToken(t *testing.T) {
	codec := testCodec(t)
	err := codec.Decode("not-a-token", false, DialogUncontrolled())
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Decode = %v, want ErrInvalidFormat", err)
	}
}

func TestCodecWrongKey(t *testing.T) {
	codec := testCodec(t)
	other, err := NewCodec([]byte("another-key"))
	if err != nil {
		t.Fatalf("NewCodec failed: %v", err)
	}

	token, err := codec.Encode(SwitchUncontrolled(true), true)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	err = other.Decode(token, true, SwitchUncontrolled(false))
	if !errors.Is(err, ErrDecryptFailed) {
		t.Errorf("Decode = %v, want ErrDecryptFailed", err)
	}
	if !IsDecryptionError(err) {
		t.Error("IsDecryptionError must match decrypt failures")
	}
}

func TestRestoreClampsTornState(t *testing.T) {
	// A token recorded against a larger list restores into a smaller
	// configuration without panicking; indices clamp.
	src := RadioGroupUncontrolled(5)
	src.Select(4)

	dst := RadioGroupUncontrolled(5)
	snap := src.Snapshot()
	snap["count"] = 3
	snap["highlighted"] = 9
	snap["selected"] = 4
	if err := dst.Restore(snap); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	if dst.Radios().Count() != 3 {
		t.Errorf("Count() = %d, want 3", dst.Radios().Count())
	}
	if dst.Selected() != NoIndex || dst.Highlighted() != NoIndex {
		t.Errorf("selected=%d highlighted=%d, want NoIndex", dst.Selected(), dst.Highlighted())
	}
}

func TestSurfaceRestoreRepairsTornPhase(t *testing.T) {
	d := DialogUncontrolled()
	// open=false but phase says open: the pair must come back consistent.
	if err := d.Restore(map[string]any{"open": false, "phase": int(PhaseOpen)}); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	if d.IsOpen() || d.Phase() != PhaseClosed {
		t.Errorf("open=%v phase=%v, want closed/PhaseClosed", d.IsOpen(), d.Phase())
	}
}

func TestAccordionSnapshotRoundTrip(t *testing.T) {
	codec := testCodec(t)

	a := AccordionUncontrolled(4)
	a.SetMultiple(true)
	a.Toggle(1)
	a.Toggle(3)

	fresh := AccordionUncontrolled(4)
	if err := RoundTrip(codec, a, fresh, false); err != nil {
		t.Fatalf("round trip failed: %v", err)
	}
	if !fresh.Expanded(1) || !fresh.Expanded(3) || fresh.Expanded(0) {
		t.Errorf("expanded = %v", fresh.ExpandedSections())
	}
}

func TestAutocompleteSnapshotCarriesLabels(t *testing.T) {
	codec := testCodec(t)

	a := AutocompleteUncontrolled()
	a.SetID("city")
	a.Change("ber")
	a.SetSuggestions([]string{"Bergen", "Berlin", "Bern"})
	a.Step(Forward, false)

	fresh := AutocompleteUncontrolled()
	fresh.SetID("city")
	if err := RoundTrip(codec, a, fresh, false); err != nil {
		t.Fatalf("round trip failed: %v", err)
	}
	if fresh.Suggestions().Label(1) != "Berlin" {
		t.Errorf("Label(1) = %q", fresh.Suggestions().Label(1))
	}
	if fresh.Value() != "ber" || !fresh.IsOpen() || fresh.Highlighted() != 0 {
		t.Errorf("value=%q open=%v highlighted=%d", fresh.Value(), fresh.IsOpen(), fresh.Highlighted())
	}
	if !ReadAttrs(fresh.InputAttrs()).Equal(a.InputAttrs()) {
		t.Errorf("hydration divergence:\n%s", ReadAttrs(fresh.InputAttrs()).Diff(a.InputAttrs()))
	}
}
