package swatch

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/colorfield/internal/domain/color"
	"github.com/alexisbeaulieu97/colorfield/internal/ports"
)

// Store persists the custom colors between sessions.
type Store interface {
	Load(ctx context.Context) ([]color.Value, error)
	Save(ctx context.Context, colors []color.Value) error
}

// Options configures a Registry.
type Options struct {
	Presets     []Preset
	CustomLimit int
	Store       Store
	Logger      ports.Logger
}

// Registry is the quick-pick set shared by every color field of a process.
// Custom colors only ever accumulate; the newest is listed first and the
// oldest fall off once CustomLimit is reached.
type Registry struct {
	mu      sync.RWMutex
	presets []Preset
	custom  []color.Value
	limit   int
	store   Store
	logger  ports.Logger
}

// NewRegistry builds a registry and loads previously stored custom colors.
// Nil presets fall back to DefaultPresets; an empty non-nil slice disables
// the palette.
func NewRegistry(ctx context.Context, opts Options) (*Registry, error) {
	presets := opts.Presets
	if presets == nil {
		presets = DefaultPresets()
	}
	limit := opts.CustomLimit
	if limit <= 0 {
		limit = DefaultCustomLimit
	}

	r := &Registry{
		presets: append([]Preset(nil), presets...),
		limit:   limit,
		store:   opts.Store,
		logger:  opts.Logger,
	}
	if r.logger != nil {
		r.logger = r.logger.With("component", "swatch_registry")
	}

	if r.store != nil {
		stored, err := r.store.Load(ctx)
		if err != nil {
			return nil, err
		}
		for i := len(stored) - 1; i >= 0; i-- {
			r.insert(stored[i])
		}
		if r.logger != nil {
			r.logger.Debug(ctx, "custom colors loaded", "count", len(r.custom))
		}
	}

	return r, nil
}

// AddColor remembers value for future quick access. Persistence failures
// are logged and otherwise ignored.
func (r *Registry) AddColor(value color.Value) {
	if value.IsNone() {
		return
	}

	r.mu.Lock()
	r.insert(value)
	snapshot := append([]color.Value(nil), r.custom...)
	r.mu.Unlock()

	if r.store == nil {
		return
	}
	ctx := context.Background()
	if err := r.store.Save(ctx, snapshot); err != nil && r.logger != nil {
		r.logger.Warn(ctx, "failed to persist custom colors", "error", err)
	}
}

func (r *Registry) insert(value color.Value) {
	next := make([]color.Value, 0, len(r.custom)+1)
	next = append(next, value)
	for _, existing := range r.custom {
		if existing.EqualFold(value) {
			continue
		}
		next = append(next, existing)
	}
	if len(next) > r.limit {
		next = next[:r.limit]
	}
	r.custom = next
}

// Fetch returns a FetchFunc yielding the current menu. The custom entry is
// offered only when includeCustom is set; the remove entry always is.
func (r *Registry) Fetch(includeCustom bool) FetchFunc {
	return func(callback func([]Item)) {
		if callback == nil {
			return
		}
		callback(r.Items(includeCustom))
	}
}

// Items lists presets, stored custom colors and the menu actions.
func (r *Registry) Items(includeCustom bool) []Item {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]Item, 0, len(r.presets)+len(r.custom)+2)
	for _, p := range r.presets {
		items = append(items, Item{Kind: ItemPreset, Label: p.Name, Value: string(p.Value)})
	}
	for _, c := range r.custom {
		items = append(items, Item{Kind: ItemCustomColor, Label: string(c), Value: string(c)})
	}
	if includeCustom {
		items = append(items, Item{Kind: ItemCustom, Label: "Custom color", Value: ActionCustom})
	}
	items = append(items, Item{Kind: ItemRemove, Label: "Remove color", Value: ActionRemove})
	return items
}

// Presets returns the configured palette.
func (r *Registry) Presets() []Preset {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Preset(nil), r.presets...)
}

// CustomColors returns the remembered custom colors, newest first.
func (r *Registry) CustomColors() []color.Value {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]color.Value(nil), r.custom...)
}
