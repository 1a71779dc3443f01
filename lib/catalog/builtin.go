package catalog

import "github.com/tacit-ui/tacit"

// Builtin returns the catalog of every widget kind the engine ships.
// Default instances are small (three items where a list is involved) so
// generated references stay readable.
func Builtin() *Catalog {
	c := New()

	c.Register(Entry{
		Kind:    "select",
		Summary: "Single-select trigger with an anchored listbox popup.",
		Build:   func() tacit.Snapshotter { return tacit.SelectUncontrolled(3) },
		Surfaces: func(w tacit.Snapshotter) []Surface {
			s := w.(*tacit.SelectState)
			return []Surface{
				{Name: "trigger", Attrs: s.TriggerAttrs()},
				{Name: "popup", Attrs: s.SurfaceAttrs()},
				{Name: "item", Attrs: s.ItemAttrs(0)},
			}
		},
	})

	c.Register(Entry{
		Kind:    "menu",
		Summary: "Anchored menu of activatable items.",
		Build:   func() tacit.Snapshotter { return tacit.MenuUncontrolled(3) },
		Surfaces: func(w tacit.Snapshotter) []Surface {
			m := w.(*tacit.MenuState)
			return []Surface{
				{Name: "trigger", Attrs: m.TriggerAttrs()},
				{Name: "popup", Attrs: m.SurfaceAttrs()},
				{Name: "item", Attrs: m.ItemAttrs(0)},
			}
		},
	})

	c.Register(Entry{
		Kind:    "dialog",
		Summary: "Focus-trapping modal overlay.",
		Build:   func() tacit.Snapshotter { return tacit.DialogUncontrolled() },
		Surfaces: func(w tacit.Snapshotter) []Surface {
			d := w.(*tacit.DialogState)
			return []Surface{{Name: "surface", Attrs: d.SurfaceAttrs()}}
		},
	})

	c.Register(Entry{
		Kind:    "drawer",
		Summary: "Edge-attached focus-trapping overlay.",
		Build:   func() tacit.Snapshotter { return tacit.DrawerUncontrolled() },
		Surfaces: func(w tacit.Snapshotter) []Surface {
			d := w.(*tacit.DrawerState)
			return []Surface{{Name: "surface", Attrs: d.SurfaceAttrs()}}
		},
	})

	c.Register(Entry{
		Kind:    "popover",
		Summary: "Non-modal anchored floating surface.",
		Build:   func() tacit.Snapshotter { return tacit.PopoverUncontrolled() },
		Surfaces: func(w tacit.Snapshotter) []Surface {
			p := w.(*tacit.PopoverState)
			return []Surface{
				{Name: "trigger", Attrs: p.TriggerAttrs()},
				{Name: "surface", Attrs: p.SurfaceAttrs()},
			}
		},
	})

	c.Register(Entry{
		Kind:    "tabs",
		Summary: "Tab strip with roving tabindex and panels.",
		Build:   func() tacit.Snapshotter { return tacit.TabsUncontrolled(3) },
		Surfaces: func(w tacit.Snapshotter) []Surface {
			t := w.(*tacit.TabsState)
			return []Surface{
				{Name: "list", Attrs: t.ListAttrs()},
				{Name: "tab", Attrs: t.TabAttrs(0)},
				{Name: "panel", Attrs: t.PanelAttrs(0)},
			}
		},
	})

	c.Register(Entry{
		Kind:    "textfield",
		Summary: "Single-line validated text input.",
		Build:   func() tacit.Snapshotter { return tacit.TextFieldUncontrolled("") },
		Surfaces: func(w tacit.Snapshotter) []Surface {
			t := w.(*tacit.TextFieldState)
			return []Surface{{Name: "input", Attrs: t.Attrs()}}
		},
	})

	c.Register(Entry{
		Kind:    "textarea",
		Summary: "Multi-line validated text input.",
		Build:   func() tacit.Snapshotter { return tacit.TextAreaUncontrolled("") },
		Surfaces: func(w tacit.Snapshotter) []Surface {
			t := w.(*tacit.TextAreaState)
			return []Surface{{Name: "input", Attrs: t.Attrs()}}
		},
	})

	c.Register(Entry{
		Kind:    "checkbox",
		Summary: "Tri-state toggle control.",
		Build:   func() tacit.Snapshotter { return tacit.CheckboxUncontrolled(false) },
		Surfaces: func(w tacit.Snapshotter) []Surface {
			cb := w.(*tacit.CheckboxState)
			return []Surface{{Name: "control", Attrs: cb.Attrs()}}
		},
	})

	c.Register(Entry{
		Kind:    "switch",
		Summary: "Two-state on/off control.",
		Build:   func() tacit.Snapshotter { return tacit.SwitchUncontrolled(false) },
		Surfaces: func(w tacit.Snapshotter) []Surface {
			sw := w.(*tacit.SwitchState)
			return []Surface{{Name: "control", Attrs: sw.Attrs()}}
		},
	})

	c.Register(Entry{
		Kind:    "radiogroup",
		Summary: "Single-select group where stepping selects.",
		Build:   func() tacit.Snapshotter { return tacit.RadioGroupUncontrolled(3) },
		Surfaces: func(w tacit.Snapshotter) []Surface {
			r := w.(*tacit.RadioGroupState)
			return []Surface{
				{Name: "group", Attrs: r.GroupAttrs()},
				{Name: "radio", Attrs: r.ItemAttrs(0)},
			}
		},
	})

	c.Register(Entry{
		Kind:    "slider",
		Summary: "Continuous value on a clamped, snapped range.",
		Build:   func() tacit.Snapshotter { return tacit.SliderUncontrolled(0) },
		Surfaces: func(w tacit.Snapshotter) []Surface {
			s := w.(*tacit.SliderState)
			return []Surface{{Name: "control", Attrs: s.Attrs()}}
		},
	})

	c.Register(Entry{
		Kind:    "stepper",
		Summary: "Integer value nudged between bounds.",
		Build:   func() tacit.Snapshotter { return tacit.StepperUncontrolled(0) },
		Surfaces: func(w tacit.Snapshotter) []Surface {
			s := w.(*tacit.StepperState)
			return []Surface{{Name: "control", Attrs: s.Attrs()}}
		},
	})

	c.Register(Entry{
		Kind:    "snackbar",
		Summary: "Transient status surface with host-timed dismissal.",
		Build:   func() tacit.Snapshotter { return tacit.SnackbarUncontrolled() },
		Surfaces: func(w tacit.Snapshotter) []Surface {
			s := w.(*tacit.SnackbarState)
			return []Surface{{Name: "surface", Attrs: s.SurfaceAttrs()}}
		},
	})

	c.Register(Entry{
		Kind:    "accordion",
		Summary: "Expandable sections over a navigable header list.",
		Build:   func() tacit.Snapshotter { return tacit.AccordionUncontrolled(3) },
		Surfaces: func(w tacit.Snapshotter) []Surface {
			a := w.(*tacit.AccordionState)
			return []Surface{
				{Name: "root", Attrs: a.RootAttrs()},
				{Name: "header", Attrs: a.HeaderAttrs(0)},
				{Name: "panel", Attrs: a.PanelAttrs(0)},
			}
		},
	})

	c.Register(Entry{
		Kind:    "autocomplete",
		Summary: "Combobox input with a host-fed suggestion popup.",
		Build:   func() tacit.Snapshotter { return tacit.AutocompleteUncontrolled() },
		Surfaces: func(w tacit.Snapshotter) []Surface {
			a := w.(*tacit.AutocompleteState)
			return []Surface{
				{Name: "input", Attrs: a.InputAttrs()},
				{Name: "popup", Attrs: a.SurfaceAttrs()},
			}
		},
	})

	c.Register(Entry{
		Kind:    "togglegroup",
		Summary: "Multi- or exclusive-press button group.",
		Build:   func() tacit.Snapshotter { return tacit.ToggleGroupUncontrolled(3) },
		Surfaces: func(w tacit.Snapshotter) []Surface {
			g := w.(*tacit.ToggleGroupState)
			return []Surface{
				{Name: "group", Attrs: g.GroupAttrs()},
				{Name: "button", Attrs: g.ItemAttrs(0)},
			}
		},
	})

	return c
}
