package tacit

import "testing"

// TestSelectKeyboardFlow walks a four-option select through the canonical
// keyboard interaction: open, arrow past a disabled option, activate.
func TestSelectKeyboardFlow(t *testing.T) {
	sel := SelectUncontrolled(4)
	sel.Items().SetLabels([]string{"Ash", "Beech", "Cedar", "Oak"})
	sel.Items().SetDisabled(2, true)

	var picked []int
	sel.OnSelect(func(i int) { picked = append(picked, i) })

	if out := sel.Open(); !out.Applied || !sel.IsOpen() {
		t.Fatalf("Open() = %+v, IsOpen = %v", out, sel.IsOpen())
	}

	if got := sel.Step(Forward, false); got != 0 {
		t.Fatalf("first step = %d, want 0", got)
	}
	// Index 2 is disabled; the highlight must land on 3.
	sel.Step(Forward, false)
	if got := sel.Step(Forward, false); got != 3 {
		t.Fatalf("step over disabled = %d, want 3", got)
	}

	out, ok := sel.ActivateHighlighted()
	if !ok || !out.Applied || out.Value != 3 {
		t.Fatalf("activate = %+v ok=%v, want applied value 3", out, ok)
	}
	if sel.Selected() != 3 {
		t.Errorf("Selected() = %d, want 3", sel.Selected())
	}
	if len(picked) != 1 || picked[0] != 3 {
		t.Errorf("callback log = %v, want [3]", picked)
	}
}

func TestSelectActivateDisabledSuppressed(t *testing.T) {
	sel := SelectUncontrolled(3)
	sel.Items().SetDisabled(1, true)

	fired := false
	sel.OnSelect(func(int) { fired = true })

	for _, i := range []int{1, -1, 3, NoIndex} {
		out, ok := sel.Activate(i)
		if ok {
			t.Errorf("Activate(%d) ok = true, want suppressed", i)
		}
		if out.Applied {
			t.Errorf("Activate(%d) applied, want no state change", i)
		}
	}
	if fired {
		t.Error("suppressed activations must not fire the callback")
	}
	if sel.Selected() != NoIndex {
		t.Errorf("Selected() = %d, want NoIndex", sel.Selected())
	}
}

func TestSelectControlledSelection(t *testing.T) {
	sel := NewSelect(3, Uncontrolled, Controlled)

	out, ok := sel.Activate(1)
	if !ok {
		t.Fatal("valid activation must be acknowledged")
	}
	if out.Applied {
		t.Error("controlled selection must return an intent, not apply")
	}
	if out.Value != 1 {
		t.Errorf("intent value = %d, want 1", out.Value)
	}
	if sel.Selected() != NoIndex {
		t.Errorf("Selected() = %d before sync, want NoIndex", sel.Selected())
	}

	sel.SyncSelected(1)
	if sel.Selected() != 1 {
		t.Errorf("Selected() = %d after sync, want 1", sel.Selected())
	}
}

func TestSelectOpenHighlightsSelection(t *testing.T) {
	sel := SelectUncontrolled(4)
	sel.Activate(2)
	sel.Open()
	sel.Close()

	sel.Open()
	if sel.Highlighted() != 2 {
		t.Errorf("Highlighted() = %d after reopen, want selection 2", sel.Highlighted())
	}
}

func TestSelectSetItemCountClearsSelection(t *testing.T) {
	sel := SelectUncontrolled(5)
	sel.Activate(4)

	sel.SetItemCount(3)
	if sel.Selected() != NoIndex {
		t.Errorf("Selected() = %d after shrink, want NoIndex", sel.Selected())
	}
	if sel.Items().Count() != 3 {
		t.Errorf("Count() = %d, want 3", sel.Items().Count())
	}
}

func TestSelectDisableSelectedRelocates(t *testing.T) {
	sel := SelectUncontrolled(3)
	sel.Activate(1)

	sel.SetDisabled(1, true)
	if sel.Selected() != 2 {
		t.Errorf("Selected() = %d, want relocated to 2", sel.Selected())
	}

	sel.SetDisabled(2, true)
	if sel.Selected() != 0 {
		t.Errorf("Selected() = %d, want backward relocation to 0", sel.Selected())
	}

	sel.SetDisabled(0, true)
	if sel.Selected() != NoIndex {
		t.Errorf("Selected() = %d with everything disabled, want NoIndex", sel.Selected())
	}
}

func TestSelectAttrs(t *testing.T) {
	sel := SelectUncontrolled(2)
	sel.SetID("fruit")
	sel.Activate(0)

	trigger := ReadAttrs(sel.TriggerAttrs())
	if !trigger.Is("id", "fruit") || !trigger.Is("role", "combobox") {
		t.Errorf("trigger = %s", sel.TriggerAttrs())
	}
	if !trigger.Is("aria-expanded", "false") {
		t.Errorf("aria-expanded = %q, want false while closed", trigger.Value("aria-expanded"))
	}

	sel.Open()
	trigger = ReadAttrs(sel.TriggerAttrs())
	if !trigger.Is("aria-expanded", "true") {
		t.Errorf("aria-expanded = %q, want true while open", trigger.Value("aria-expanded"))
	}

	popup := ReadAttrs(sel.SurfaceAttrs())
	if !popup.Is("role", "listbox") || !popup.Is("data-open", "true") {
		t.Errorf("popup = %s", sel.SurfaceAttrs())
	}
	if !popup.Is("data-placement", "bottom-start") {
		t.Errorf("data-placement = %q", popup.Value("data-placement"))
	}

	item := ReadAttrs(sel.ItemAttrs(0))
	if !item.Is("role", "option") || !item.Is("aria-selected", "true") {
		t.Errorf("item 0 = %s", sel.ItemAttrs(0))
	}
	other := ReadAttrs(sel.ItemAttrs(1))
	if !other.Is("aria-selected", "false") {
		t.Errorf("item 1 = %s", sel.ItemAttrs(1))
	}
}

func TestSelectReplayParity(t *testing.T) {
	a, b := Replay(
		func() *SelectState {
			s := SelectUncontrolled(4)
			s.Items().SetLabels([]string{"Ash", "Beech", "Cedar", "Oak"})
			return s
		},
		func(s *SelectState) {
			s.Open()
			s.Step(Forward, false)
			s.Step(Forward, false)
			s.ActivateHighlighted()
		},
		(*SelectState).SurfaceAttrs,
	)
	if !ReadAttrs(a).Equal(b) {
		t.Errorf("replay divergence:\n%s", ReadAttrs(a).Diff(b))
	}
}
