package colorinput

import (
	"context"

	"github.com/alexisbeaulieu97/colorfield/internal/domain/color"
	"github.com/alexisbeaulieu97/colorfield/internal/ports"
)

// Kind identifies one of the two change events a color field routes between
// its text input and its swatch picker.
type Kind int

const (
	// KindPrimary is emitted once validation commits a typed value.
	KindPrimary Kind = iota + 1
	// KindSecondary is emitted when the picker supplies a value.
	KindSecondary
)

func (k Kind) String() string {
	switch k {
	case KindPrimary:
		return "color-change"
	case KindSecondary:
		return "hex-change"
	default:
		return "unknown"
	}
}

// ChangeEvent is an immutable snapshot of a value at the moment it was
// committed or picked.
type ChangeEvent struct {
	kind  Kind
	value color.Value
}

// PrimaryChange builds the event emitted after a successful validation.
func PrimaryChange(c color.Value) ChangeEvent {
	return ChangeEvent{kind: KindPrimary, value: c}
}

// SecondaryChange builds the event emitted when the picker yields a value.
func SecondaryChange(v color.Value) ChangeEvent {
	return ChangeEvent{kind: KindSecondary, value: v}
}

// Kind returns the event kind.
func (e ChangeEvent) Kind() Kind { return e.kind }

// Color returns the committed color of a primary event.
func (e ChangeEvent) Color() color.Value { return e.value }

// Value returns the picked value of a secondary event.
func (e ChangeEvent) Value() color.Value { return e.value }

// Listener handles a change event. Listeners must tolerate receiving a value
// they already reflect.
type Listener func(ChangeEvent)

// Subscription detaches a listener from a Channel.
type Subscription interface {
	Unsubscribe()
}

// Channel dispatches change events to the listeners of one color field.
// Dispatch is synchronous and follows registration order. A Channel belongs to
// the event loop that owns the field and is not safe for concurrent use.
type Channel struct {
	scope  string
	logger ports.Logger
	subs   map[Kind][]listenerEntry
	nextID int
}

type listenerEntry struct {
	id       int
	listener Listener
}

// NewChannel returns a Channel scoped to the widget identified by scope.
func NewChannel(scope string, logger ports.Logger) *Channel {
	return &Channel{
		scope:  scope,
		logger: logger,
		subs:   make(map[Kind][]listenerEntry),
	}
}

// Subscribe registers listener for events of kind.
func (c *Channel) Subscribe(kind Kind, listener Listener) Subscription {
	if c == nil || listener == nil {
		return noopSubscription{}
	}
	c.nextID++
	id := c.nextID
	c.subs[kind] = append(c.subs[kind], listenerEntry{id: id, listener: listener})

	return subscription{cancel: func() {
		entries := c.subs[kind]
		for i, entry := range entries {
			if entry.id == id {
				c.subs[kind] = append(entries[:i:i], entries[i+1:]...)
				return
			}
		}
	}}
}

// Emit delivers event to every listener of its kind before returning.
func (c *Channel) Emit(event ChangeEvent) {
	if c == nil {
		return
	}
	entries := append([]listenerEntry(nil), c.subs[event.kind]...)
	if c.logger != nil {
		c.logger.Debug(context.Background(), "change event",
			"event", event.kind.String(), "value", string(event.value), "listeners", len(entries), "widget_id", c.scope)
	}
	for _, entry := range entries {
		entry.listener(event)
	}
}

// Listeners reports how many listeners are registered for kind.
func (c *Channel) Listeners(kind Kind) int {
	if c == nil {
		return 0
	}
	return len(c.subs[kind])
}

type noopSubscription struct{}

func (noopSubscription) Unsubscribe() {}

type subscription struct {
	cancel func()
}

func (s subscription) Unsubscribe() {
	if s.cancel != nil {
		s.cancel()
	}
}
