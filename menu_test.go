package tacit

import "testing"

func TestMenuOpenHighlightsFirstEnabled(t *testing.T) {
	m := MenuUncontrolled(3)
	m.Items().SetDisabled(0, true)

	m.Open()
	if m.Highlighted() != 1 {
		t.Errorf("Highlighted() = %d after open, want first enabled 1", m.Highlighted())
	}
}

func TestMenuActivateClosesAndFires(t *testing.T) {
	m := MenuUncontrolled(3)
	var log []int
	m.OnActivate(func(i int) { log = append(log, i) })

	m.Open()
	m.Step(Forward, false)
	if !m.ActivateHighlighted() {
		t.Fatal("activation of an enabled item must succeed")
	}
	if len(log) != 1 || log[0] != 1 {
		t.Errorf("callback log = %v, want [1]", log)
	}
	if m.IsOpen() {
		t.Error("activation must close an engine-owned menu")
	}
	if m.Highlighted() != NoIndex {
		t.Errorf("Highlighted() = %d after close, want NoIndex", m.Highlighted())
	}
}

func TestMenuActivateDisabledSuppressed(t *testing.T) {
	m := MenuUncontrolled(2)
	m.Items().SetDisabled(1, true)
	fired := false
	m.OnActivate(func(int) { fired = true })

	m.Open()
	if m.Activate(1) {
		t.Error("disabled item must not activate")
	}
	if fired {
		t.Error("suppressed activation must not fire the callback")
	}
	if !m.IsOpen() {
		t.Error("suppressed activation must leave the menu open")
	}
}

func TestMenuControlledOpenIntent(t *testing.T) {
	m := MenuControlled(2)

	out := m.Open()
	if out.Applied || m.IsOpen() {
		t.Fatalf("controlled open must be an intent: %+v, open=%v", out, m.IsOpen())
	}
	if m.Highlighted() != NoIndex {
		t.Error("unapplied open must not move the highlight")
	}

	m.SyncOpen(true, false)
	if !m.IsOpen() {
		t.Error("SyncOpen(true) must open the menu")
	}

	m.SyncOpen(false, false)
	if m.IsOpen() || m.Highlighted() != NoIndex {
		t.Error("SyncOpen(false) must close and clear the highlight")
	}
}

func TestMenuWrapStep(t *testing.T) {
	m := MenuUncontrolled(3)
	m.Open()
	m.Step(Forward, true)
	m.Step(Forward, true)
	if got := m.Step(Forward, true); got != 0 {
		t.Errorf("wrap step = %d, want 0", got)
	}
}

func TestMenuItemAttrs(t *testing.T) {
	m := MenuUncontrolled(2)
	m.Items().SetDisabled(1, true)

	item := ReadAttrs(m.ItemAttrs(1))
	if !item.Is("role", "menuitem") || !item.Is("aria-disabled", "true") {
		t.Errorf("item 1 = %s", m.ItemAttrs(1))
	}
}
