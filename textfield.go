package tacit

import "time"

// TextFieldState is the interaction state of a single-line text input.
//
// It is a thin composition over the validated field core: value ownership,
// dirty/visited bookkeeping, host-supplied errors, and the debounce window
// returned to the host for its own timer integration.
//
//	tf := tacit.TextFieldControlled("Acme")
//	ch := tf.Change("Acme Inc") // intent; ch.Dirty == true
//	tf.SyncValue(ch.Outcome.Value)
//	tf.SetErrors([]string{"too short"})
//	hasErrors := tf.Commit() // true, and the field is now visited
type TextFieldState struct {
	field *Field
	id    string
	label string
}

// NewTextField creates a text field with the given ownership strategy and
// initial value.
func NewTextField(strategy Strategy, initial string) *TextFieldState {
	return &TextFieldState{field: NewField(strategy, initial)}
}

// TextFieldControlled creates a text field whose value is host-owned.
func TextFieldControlled(initial string) *TextFieldState {
	return NewTextField(Controlled, initial)
}

// TextFieldUncontrolled creates a text field that owns its value.
func TextFieldUncontrolled(initial string) *TextFieldState {
	return NewTextField(Uncontrolled, initial)
}

// SetID sets the widget identifier.
func (t *TextFieldState) SetID(id string) {
	t.id = id
}

// SetLabelledBy references the external labelling element.
func (t *TextFieldState) SetLabelledBy(id string) {
	t.label = id
}

// SetDebounce sets the validation debounce window; see Field.SetDebounce.
func (t *TextFieldState) SetDebounce(d time.Duration) {
	t.field.SetDebounce(d)
}

// Change requests a value change; see Field.Change.
func (t *TextFieldState) Change(v string) Change {
	return t.field.Change(v)
}

// SyncValue applies the host's value decision.
func (t *TextFieldState) SyncValue(v string) {
	t.field.SyncValue(v)
}

// Value returns the current value.
func (t *TextFieldState) Value() string {
	return t.field.Value()
}

// Dirty reports whether the value has diverged from the initial one.
func (t *TextFieldState) Dirty() bool {
	return t.field.Dirty()
}

// Visited reports whether the field has been committed.
func (t *TextFieldState) Visited() bool {
	return t.field.Visited()
}

// SetErrors replaces the host-supplied validation errors.
func (t *TextFieldState) SetErrors(errs []string) {
	t.field.SetErrors(errs)
}

// Errors returns the current validation errors.
func (t *TextFieldState) Errors() []string {
	return t.field.Errors()
}

// Commit marks the field visited and reports whether errors are present.
func (t *TextFieldState) Commit() bool {
	return t.field.Commit()
}

// Reset restores the initial value and clears all bookkeeping.
func (t *TextFieldState) Reset() {
	t.field.Reset()
}

// Attrs composes the input attribute list.
func (t *TextFieldState) Attrs() Attrs {
	return NewAttrs().
		ID(t.id).
		Role("textbox").
		LabelledBy(t.label).
		Merge(t.field.Attrs()).
		List()
}

// Kind implements Snapshotter.
func (t *TextFieldState) Kind() string { return "textfield" }

// Snapshot implements Snapshotter.
func (t *TextFieldState) Snapshot() map[string]any {
	m := make(map[string]any)
	t.field.snapshotInto(m)
	return m
}

// Restore implements Snapshotter.
func (t *TextFieldState) Restore(m map[string]any) error {
	t.field.restoreFrom(m)
	return nil
}

// TextAreaState is the multi-line variant. Behavior is identical to
// TextFieldState; it only differs in role and the multiline marker, which
// rendering adapters use to choose the element.
type TextAreaState struct {
	TextFieldState
}

// NewTextArea creates a text area with the given ownership strategy and
// initial value.
func NewTextArea(strategy Strategy, initial string) *TextAreaState {
	return &TextAreaState{TextFieldState{field: NewField(strategy, initial)}}
}

// TextAreaControlled creates a text area whose value is host-owned.
func TextAreaControlled(initial string) *TextAreaState {
	return NewTextArea(Controlled, initial)
}

// TextAreaUncontrolled creates a text area that owns its value.
func TextAreaUncontrolled(initial string) *TextAreaState {
	return NewTextArea(Uncontrolled, initial)
}

// Attrs composes the input attribute list with the multiline marker.
func (t *TextAreaState) Attrs() Attrs {
	return NewAttrs().
		ID(t.id).
		Role("textbox").
		Set("aria-multiline", "true").
		LabelledBy(t.label).
		Merge(t.field.Attrs()).
		List()
}

// Kind implements Snapshotter.
func (t *TextAreaState) Kind() string { return "textarea" }
