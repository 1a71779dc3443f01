package tacit

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAccordionSingleExpansion(t *testing.T) {
	a := AccordionUncontrolled(3)

	out, ok := a.Toggle(0)
	if !ok || !out.Applied || !a.Expanded(0) {
		t.Fatalf("toggle = %+v ok=%v", out, ok)
	}

	// Expanding another section collapses the first.
	a.Toggle(2)
	if a.Expanded(0) {
		t.Error("single-expansion must collapse section 0")
	}
	if diff := cmp.Diff([]int{2}, a.ExpandedSections()); diff != "" {
		t.Errorf("expanded set (-want +got):\n%s", diff)
	}

	// Toggling the open section collapses it.
	a.Toggle(2)
	if len(a.ExpandedSections()) != 0 {
		t.Errorf("expanded set = %v, want empty", a.ExpandedSections())
	}
}

func TestAccordionMultipleExpansion(t *testing.T) {
	a := AccordionUncontrolled(3)
	a.SetMultiple(true)

	a.Toggle(2)
	a.Toggle(0)
	if diff := cmp.Diff([]int{0, 2}, a.ExpandedSections()); diff != "" {
		t.Errorf("expanded set (-want +got):\n%s", diff)
	}

	a.Toggle(2)
	if diff := cmp.Diff([]int{0}, a.ExpandedSections()); diff != "" {
		t.Errorf("expanded set after collapse (-want +got):\n%s", diff)
	}
}

func TestAccordionDisabledSuppressed(t *testing.T) {
	a := AccordionUncontrolled(2)
	a.Sections().SetDisabled(1, true)
	fired := false
	a.OnToggle(func(int, bool) { fired = true })

	out, ok := a.Toggle(1)
	if ok || out.Applied || fired {
		t.Errorf("disabled toggle = %+v ok=%v fired=%v", out, ok, fired)
	}
}

func TestAccordionControlled(t *testing.T) {
	a := AccordionControlled(3)

	out, ok := a.Toggle(1)
	if !ok || out.Applied {
		t.Fatalf("controlled toggle = %+v ok=%v", out, ok)
	}
	if diff := cmp.Diff([]int{1}, out.Value); diff != "" {
		t.Errorf("intent set (-want +got):\n%s", diff)
	}
	if a.Expanded(1) {
		t.Error("controlled accordion must not mutate before sync")
	}

	a.SyncExpanded(out.Value)
	if !a.Expanded(1) {
		t.Error("sync must apply the expanded set")
	}
}

func TestAccordionSyncDropsOutOfRange(t *testing.T) {
	a := AccordionUncontrolled(2)
	a.SyncExpanded([]int{0, 5, -1})
	if diff := cmp.Diff([]int{0}, a.ExpandedSections()); diff != "" {
		t.Errorf("expanded set (-want +got):\n%s", diff)
	}
}

func TestAccordionSetItemCount(t *testing.T) {
	a := AccordionUncontrolled(4)
	a.SetMultiple(true)
	a.Toggle(1)
	a.Toggle(3)

	a.SetItemCount(2)
	if diff := cmp.Diff([]int{1}, a.ExpandedSections()); diff != "" {
		t.Errorf("expanded set after shrink (-want +got):\n%s", diff)
	}
}

func TestAccordionAttrs(t *testing.T) {
	a := AccordionUncontrolled(2)
	a.SetID("faq")
	a.Toggle(0)

	root := ReadAttrs(a.RootAttrs())
	if !root.Is("id", "faq") || !root.Is("data-multiple", "false") {
		t.Errorf("root = %s", a.RootAttrs())
	}

	header := ReadAttrs(a.HeaderAttrs(0))
	if !header.Is("role", "button") || !header.Is("aria-expanded", "true") {
		t.Errorf("header 0 = %s", a.HeaderAttrs(0))
	}

	panel := ReadAttrs(a.PanelAttrs(1))
	if !panel.Is("role", "region") || !panel.Is("data-expanded", "false") {
		t.Errorf("panel 1 = %s", a.PanelAttrs(1))
	}
}
