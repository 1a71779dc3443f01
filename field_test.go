package tacit

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestFieldDirtyTracking(t *testing.T) {
	f := NewField(Uncontrolled, "hello")

	if f.Dirty() {
		t.Fatal("fresh field must not be dirty")
	}

	ch := f.Change("hello")
	if ch.Dirty {
		t.Error("re-entering the initial value must not dirty the field")
	}

	ch = f.Change("hello!")
	if !ch.Dirty {
		t.Error("diverging from initial must dirty the field")
	}
	if f.Value() != "hello!" {
		t.Errorf("Value() = %q, want %q", f.Value(), "hello!")
	}

	// Dirty is sticky: returning to the initial value does not clear it.
	ch = f.Change("hello")
	if !ch.Dirty || !f.Dirty() {
		t.Error("dirty must stick after returning to the initial value")
	}
}

func TestFieldControlledChange(t *testing.T) {
	f := NewField(Controlled, "Acme")

	ch := f.Change("Acme Inc")
	if ch.Outcome.Applied {
		t.Error("controlled change must not apply")
	}
	if ch.Outcome.Value != "Acme Inc" {
		t.Errorf("intent value = %q, want %q", ch.Outcome.Value, "Acme Inc")
	}
	if f.Value() != "Acme" {
		t.Errorf("Value() = %q, controlled field must not mutate", f.Value())
	}
	if !ch.Dirty {
		t.Error("dirty tracking runs even when the value is externally owned")
	}

	f.SyncValue("Acme Inc")
	if f.Value() != "Acme Inc" {
		t.Errorf("Value() = %q after sync, want %q", f.Value(), "Acme Inc")
	}
}

func TestFieldCommitAndErrors(t *testing.T) {
	f := NewField(Uncontrolled, "")

	if f.Commit() {
		t.Error("commit with no errors must report false")
	}
	if !f.Visited() {
		t.Error("commit must mark the field visited")
	}

	f.SetErrors([]string{"name is required"})
	if !f.Commit() {
		t.Error("commit with errors must report true")
	}
	if diff := cmp.Diff([]string{"name is required"}, f.Errors()); diff != "" {
		t.Errorf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestFieldSetErrorsCopies(t *testing.T) {
	f := NewField(Uncontrolled, "")
	src := []string{"too short"}
	f.SetErrors(src)
	src[0] = "mutated"
	if f.Errors()[0] != "too short" {
		t.Error("SetErrors must copy the host slice")
	}
}

func TestFieldReset(t *testing.T) {
	f := NewField(Controlled, "seed")
	f.Change("other")
	f.SyncValue("other")
	f.SetErrors([]string{"bad"})
	f.Commit()

	f.Reset()

	if f.Value() != "seed" {
		t.Errorf("Value() = %q after reset, want initial", f.Value())
	}
	if f.Dirty() || f.Visited() || len(f.Errors()) != 0 {
		t.Errorf("reset must clear bookkeeping: dirty=%v visited=%v errors=%v",
			f.Dirty(), f.Visited(), f.Errors())
	}
}

func TestFieldDebounce(t *testing.T) {
	f := NewField(Uncontrolled, "")
	f.SetDebounce(250 * time.Millisecond)

	ch := f.Change("a")
	if ch.Debounce != 250*time.Millisecond {
		t.Errorf("Debounce = %v, want 250ms", ch.Debounce)
	}

	f.SetDebounce(-1)
	if f.Debounce() != 0 {
		t.Errorf("negative debounce must clamp to zero, got %v", f.Debounce())
	}
}

func TestFieldAttrs(t *testing.T) {
	f := NewField(Uncontrolled, "")
	got := ReadAttrs(f.Attrs())
	if !got.Is("data-dirty", "false") || !got.Is("data-visited", "false") {
		t.Errorf("fresh attrs = %s", f.Attrs())
	}
	if got.Has("aria-invalid") {
		t.Error("aria-invalid must be absent without errors")
	}

	f.Change("x")
	f.SetErrors([]string{"bad"})
	f.Commit()
	got = ReadAttrs(f.Attrs())
	if !got.Is("data-dirty", "true") || !got.Is("data-visited", "true") || !got.Is("aria-invalid", "true") {
		t.Errorf("attrs = %s", f.Attrs())
	}
}
