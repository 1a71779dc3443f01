package tacit

import "testing"

func TestRadioGroupStepSelects(t *testing.T) {
	r := RadioGroupUncontrolled(3)
	var log []int
	r.OnChange(func(i int) { log = append(log, i) })

	out, ok := r.Step(Forward)
	if !ok || !out.Applied || out.Value != 0 {
		t.Fatalf("step = %+v ok=%v, want selection 0", out, ok)
	}
	if r.Selected() != 0 || r.Highlighted() != 0 {
		t.Errorf("selected=%d highlighted=%d, want both 0", r.Selected(), r.Highlighted())
	}
	if len(log) != 1 || log[0] != 0 {
		t.Errorf("callback log = %v, want [0]", log)
	}
}

func TestRadioGroupStepWrapsAndSkipsDisabled(t *testing.T) {
	r := RadioGroupUncontrolled(3)
	r.SetDisabled(1, true)

	r.Step(Forward) // 0
	r.Step(Forward) // skip 1, land 2
	if r.Selected() != 2 {
		t.Fatalf("Selected() = %d, want 2", r.Selected())
	}
	r.Step(Forward) // wrap back to 0
	if r.Selected() != 0 {
		t.Errorf("Selected() = %d after wrap, want 0", r.Selected())
	}
}

func TestRadioGroupAllDisabled(t *testing.T) {
	r := RadioGroupUncontrolled(2)
	r.SetDisabled(0, true)
	r.SetDisabled(1, true)

	out, ok := r.Step(Forward)
	if ok || out.Applied {
		t.Errorf("step with no enabled radios = %+v ok=%v, want suppressed", out, ok)
	}
	if r.Selected() != NoIndex {
		t.Errorf("Selected() = %d, want NoIndex", r.Selected())
	}
}

func TestRadioGroupControlled(t *testing.T) {
	r := RadioGroupControlled(3)

	out, ok := r.Select(2)
	if !ok || out.Applied {
		t.Fatalf("controlled select = %+v ok=%v", out, ok)
	}
	if r.Selected() != NoIndex {
		t.Errorf("Selected() = %d before sync, want NoIndex", r.Selected())
	}
	r.SyncSelected(2)
	if r.Selected() != 2 {
		t.Errorf("Selected() = %d after sync, want 2", r.Selected())
	}
}

func TestRadioGroupDisableSelectedRelocates(t *testing.T) {
	r := RadioGroupUncontrolled(3)
	r.Select(2)
	r.SetDisabled(2, true)
	if r.Selected() != 1 {
		t.Errorf("Selected() = %d, want backward relocation to 1", r.Selected())
	}
}

func TestRadioGroupAttrs(t *testing.T) {
	r := RadioGroupUncontrolled(2)
	r.SetID("plan")
	r.Select(1)

	group := ReadAttrs(r.GroupAttrs())
	if !group.Is("id", "plan") || !group.Is("role", "radiogroup") || !group.Is("aria-orientation", "vertical") {
		t.Errorf("group = %s", r.GroupAttrs())
	}

	on := ReadAttrs(r.ItemAttrs(1))
	if !on.Is("role", "radio") || !on.Is("aria-checked", "true") {
		t.Errorf("item 1 = %s", r.ItemAttrs(1))
	}
	off := ReadAttrs(r.ItemAttrs(0))
	if !off.Is("aria-checked", "false") {
		t.Errorf("item 0 = %s", r.ItemAttrs(0))
	}
}
