// Package colorinput implements the synchronization core of a color field:
// a text input and a swatch picker that update each other through a
// per-field event Channel, and a ValidationController that validates typed
// values asynchronously and lets only the most recently started run decide
// the field state.
//
// Nothing in this package blocks. Validation runs are handed to a Scheduler
// and come back through Field.Resolve; the interactive picker is requested
// with a PickRequest and completed with Field.CompletePick. Hosts call every
// method except Field.Pick from a single event loop.
package colorinput
