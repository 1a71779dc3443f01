// Package tacit is a headless interaction-state engine for UI widgets.
//
// tacit owns the behavioral contract of a widget - open/closed phase,
// selection and highlight, validation, anchor placement, keyboard and
// typeahead navigation - completely independent of any rendering
// technology. A host (framework adapter, test harness, or SSR renderer)
// drives a widget state object through its mutation methods and reads back
// deterministic attribute lists it converts into markup. The same state
// object produces identical output whether it is driven from a one-shot
// server render or an interactive client session, which is what makes
// server-render and hydration snapshots comparable byte-for-byte.
//
// # Core Primitives
//
// Every widget is an independent struct composed from a small set of shared
// primitives (composition, never inheritance):
//
//   - Controllable[T]: the controlled/uncontrolled value-ownership
//     primitive. Under Uncontrolled the widget owns the value and mutation
//     methods write it directly; under Controlled, mutation methods return
//     an intent without mutating, and the host applies its decision back
//     through a Sync call.
//   - List: disabled-aware index, selection, and highlight bookkeeping with
//     keyboard stepping and typeahead, shared by select, menu,
//     autocomplete, tabs, radio group, toggle group, and accordion.
//   - Surface: the open/closed lifecycle with transition phases
//     (Closed, Opening, Open, Closing) used by dialog, drawer, popover,
//     snackbar, menu, and autocomplete popups.
//   - Anchor: anchor geometry bookkeeping and placement resolution for
//     floating surfaces. Layout measurement is a host concern; the engine
//     only records geometry and delegates collision strategy to a
//     host-supplied resolver.
//   - Field: value/dirty/visited/error/debounce bookkeeping for text
//     inputs. Validation authority stays with the host.
//   - Builder: deterministic, order-preserving assembly of the
//     accessibility and automation attributes a widget exposes.
//
// # Controlled and Uncontrolled
//
// Control strategy is attached per logical value: a select may be
// controlled for its open flag but uncontrolled for its selection. The one
// invariant everything else rests on: under Controlled, a value changes
// only via an explicit Sync* call from the host, never from an internal
// mutation method.
//
//	sel := tacit.NewSelect(4, tacit.Controlled, tacit.Uncontrolled)
//	out := sel.Open()          // intent only; phase stays Closed
//	if !out.Applied {
//	    // host decides, then:
//	    sel.SyncOpen(out.Value, false)
//	}
//
// # Error Model
//
// The engine performs no I/O and cannot fail a render. Out-of-range
// indices clamp or report NoIndex, invalid phase transitions are no-ops,
// and interactions with disabled items are silently suppressed. The only
// fallible surface is the snapshot codec (see below), which returns the
// sentinel errors in errors.go.
//
// # Attribute Lists
//
// Widget read surfaces produce an Attrs value: an ordered list of key/value
// pairs with no duplicate keys. Construction is pure - identical inputs
// always yield identical lists - so SSR output and hydration output can be
// compared directly. The adapters/templ package converts an Attrs into
// templ.Attributes for rendering.
//
// # Snapshots
//
// Widget states can be carried across the server/client boundary as
// tamper-proof tokens. Each state implements Snapshot/Restore; the Codec
// packs snapshots with msgpack and signs (default) or encrypts them:
//
//	codec, _ := tacit.NewCodec(key)
//	token, _ := codec.Encode(sel, false)
//	// later, on another request:
//	restored := tacit.NewSelect(4, tacit.Controlled, tacit.Uncontrolled)
//	_ = codec.Decode(token, false, restored)
//
// # Concurrency
//
// There is none. Every mutation method runs to completion synchronously;
// the engine never suspends, blocks, or schedules work. Typeahead expiry
// and field debounce are expressed as Duration values returned to the host
// for the host's own timer integration. Instances share nothing: SSR call
// sites must construct a fresh instance per request.
package tacit
