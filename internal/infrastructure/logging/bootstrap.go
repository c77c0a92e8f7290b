package logging

import (
	"context"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/colorfield/internal/ports"
)

const defaultBootstrapLimit = 256

type entryLevel int

const (
	entryInfo entryLevel = iota
	entryDebug
	entryWarn
	entryError
)

type pendingEntry struct {
	ctx    context.Context
	at     time.Time
	level  entryLevel
	msg    string
	fields []interface{}
}

// Bootstrap holds what is logged while the configuration that picks the
// real sink is still loading. Replay forwards the entries to that sink.
type Bootstrap struct {
	mu      sync.Mutex
	limit   int
	entries []pendingEntry
	dropped int
	now     func() time.Time
}

// NewBootstrap keeps at most limit entries; older ones are dropped first.
func NewBootstrap(limit int) *Bootstrap {
	if limit <= 0 {
		limit = defaultBootstrapLimit
	}
	return &Bootstrap{limit: limit, now: time.Now}
}

// Logger returns a ports.Logger writing into the bootstrap buffer.
func (b *Bootstrap) Logger() ports.Logger {
	return &bootstrapLogger{owner: b}
}

// Replay sends every held entry to sink, oldest first, and empties the
// buffer. Replayed entries carry phase=bootstrap and the time they were
// logged; entries lost to the limit are reported once as a warning.
func (b *Bootstrap) Replay(sink ports.Logger) int {
	if b == nil || sink == nil {
		return 0
	}
	b.mu.Lock()
	entries := b.entries
	dropped := b.dropped
	b.entries = nil
	b.dropped = 0
	b.mu.Unlock()

	for _, e := range entries {
		fields := append([]interface{}{"phase", "bootstrap", "logged_at", e.at.Format(time.RFC3339Nano)}, e.fields...)
		switch e.level {
		case entryError:
			sink.Error(e.ctx, e.msg, fields...)
		case entryWarn:
			sink.Warn(e.ctx, e.msg, fields...)
		case entryDebug:
			sink.Debug(e.ctx, e.msg, fields...)
		default:
			sink.Info(e.ctx, e.msg, fields...)
		}
	}
	if dropped > 0 {
		sink.Warn(context.Background(), "bootstrap log entries dropped", "phase", "bootstrap", "count", dropped)
	}
	return len(entries)
}

func (b *Bootstrap) hold(e pendingEntry) {
	b.mu.Lock()
	defer b.mu.Unlock()

	e.at = b.now()
	if len(b.entries) == b.limit {
		b.entries = append(b.entries[:0], b.entries[1:]...)
		b.dropped++
	}
	b.entries = append(b.entries, e)
}

type bootstrapLogger struct {
	owner  *Bootstrap
	fields []interface{}
}

func (l *bootstrapLogger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.hold(pendingEntry{ctx: ctx, level: entryDebug, msg: msg}, fields)
}

func (l *bootstrapLogger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.hold(pendingEntry{ctx: ctx, msg: msg}, fields)
}

func (l *bootstrapLogger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.hold(pendingEntry{ctx: ctx, level: entryWarn, msg: msg}, fields)
}

func (l *bootstrapLogger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.hold(pendingEntry{ctx: ctx, level: entryError, msg: msg}, fields)
}

func (l *bootstrapLogger) With(fields ...interface{}) ports.Logger {
	return &bootstrapLogger{owner: l.owner, fields: append(append([]interface{}{}, l.fields...), fields...)}
}

func (l *bootstrapLogger) hold(e pendingEntry, fields []interface{}) {
	e.fields = append(append([]interface{}{}, l.fields...), fields...)
	l.owner.hold(e)
}

// discard drops every entry. The terminal UI logs into it when no log file
// is configured, since terminal output would tear the screen.
type discard struct{}

var discardLogger = &discard{}

func (*discard) Debug(context.Context, string, ...interface{}) {}

func (*discard) Info(context.Context, string, ...interface{}) {}

func (*discard) Warn(context.Context, string, ...interface{}) {}

func (*discard) Error(context.Context, string, ...interface{}) {}

func (d *discard) With(...interface{}) ports.Logger { return d }

// NewNoOpLogger returns the shared logger that drops everything.
func NewNoOpLogger() ports.Logger {
	return discardLogger
}
