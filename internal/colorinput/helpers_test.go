package colorinput

import (
	"context"

	"github.com/alexisbeaulieu97/colorfield/internal/domain/color"
)

func colorValue(s string) color.Value { return color.Value(s) }

// runQueue collects scheduled runs so tests choose when and in which order
// they resolve.
type runQueue struct {
	runs []Run
}

func (q *runQueue) Schedule(r Run) { q.runs = append(q.runs, r) }

func (q *runQueue) last() Run { return q.runs[len(q.runs)-1] }

type fakeText struct {
	value   color.Value
	focused int
}

func (t *fakeText) Value() color.Value     { return t.value }
func (t *fakeText) SetValue(v color.Value) { t.value = v }
func (t *fakeText) Focus()                 { t.focused++ }

type fakeButton struct {
	background color.Value
	sets       int
}

func (b *fakeButton) SetBackground(v color.Value) {
	b.background = v
	b.sets++
}

type fakeRoot struct {
	classes map[string]bool
}

func newFakeRoot() *fakeRoot { return &fakeRoot{classes: map[string]bool{}} }

func (r *fakeRoot) AddClass(c string)    { r.classes[c] = true }
func (r *fakeRoot) RemoveClass(c string) { delete(r.classes, c) }

type fakeSink struct {
	buttons map[string]SwatchButton
}

func (s *fakeSink) SwatchButton(id string) (SwatchButton, bool) {
	b, ok := s.buttons[id]
	return b, ok
}

type fakeProviders struct {
	sink *fakeSink
}

func (p *fakeProviders) RenderLabel(label string) string { return "[" + label + "]" }

func (p *fakeProviders) Sink() (Sink, bool) {
	if p.sink == nil {
		return nil, false
	}
	return p.sink, true
}

type fakeBackstage struct {
	custom bool
	value  color.Value
	ok     bool
	seeds  []color.Value
}

func (b *fakeBackstage) HasCustomColors() bool { return b.custom }

func (b *fakeBackstage) PickColor(_ context.Context, seed color.Value) (color.Value, bool) {
	b.seeds = append(b.seeds, seed)
	return b.value, b.ok
}

// terminalBackstage also accepts the host's streams.
type terminalBackstage struct {
	fakeBackstage
	terms []Terminal
}

func (b *terminalBackstage) PickColorOn(ctx context.Context, seed color.Value, term Terminal) (color.Value, bool) {
	b.terms = append(b.terms, term)
	return b.PickColor(ctx, seed)
}
