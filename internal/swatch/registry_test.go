package swatch

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/colorfield/internal/domain/color"
)

type memoryStore struct {
	colors  []color.Value
	saves   int
	loadErr error
	saveErr error
}

func (s *memoryStore) Load(context.Context) ([]color.Value, error) {
	return append([]color.Value(nil), s.colors...), s.loadErr
}

func (s *memoryStore) Save(_ context.Context, colors []color.Value) error {
	s.saves++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.colors = append([]color.Value(nil), colors...)
	return nil
}

func TestNewRegistryStartsWithDefaultsAndNoCustomColors(t *testing.T) {
	reg, err := NewRegistry(context.Background(), Options{})
	require.NoError(t, err)

	assert.Len(t, reg.Presets(), len(DefaultPresets()))
	assert.Empty(t, reg.CustomColors())
}

func TestAddColorNewestFirstWithoutDuplicates(t *testing.T) {
	reg, err := NewRegistry(context.Background(), Options{Presets: []Preset{}})
	require.NoError(t, err)

	reg.AddColor("#123456")
	reg.AddColor("#abcdef")
	reg.AddColor("#ABCDEF")
	reg.AddColor("")

	assert.Equal(t, []color.Value{"#ABCDEF", "#123456"}, reg.CustomColors())
}

func TestAddColorRespectsLimit(t *testing.T) {
	reg, err := NewRegistry(context.Background(), Options{Presets: []Preset{}, CustomLimit: 2})
	require.NoError(t, err)

	reg.AddColor("#000001")
	reg.AddColor("#000002")
	reg.AddColor("#000003")

	assert.Equal(t, []color.Value{"#000003", "#000002"}, reg.CustomColors())
}

func TestRegistryIsSharedAcrossFetches(t *testing.T) {
	reg, err := NewRegistry(context.Background(), Options{Presets: []Preset{{Name: "Red", Value: "#E03E2D"}}})
	require.NoError(t, err)

	fetch := reg.Fetch(true)
	reg.AddColor("#123456")

	var got []Item
	fetch(func(items []Item) { got = items })

	want := []Item{
		{Kind: ItemPreset, Label: "Red", Value: "#E03E2D"},
		{Kind: ItemCustomColor, Label: "#123456", Value: "#123456"},
		{Kind: ItemCustom, Label: "Custom color", Value: ActionCustom},
		{Kind: ItemRemove, Label: "Remove color", Value: ActionRemove},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected items (-want +got):\n%s", diff)
	}
}

func TestFetchWithoutCustomOption(t *testing.T) {
	reg, err := NewRegistry(context.Background(), Options{Presets: []Preset{}})
	require.NoError(t, err)

	items := reg.Items(false)
	require.Len(t, items, 1)
	assert.Equal(t, ItemRemove, items[0].Kind)

	_, ok := items[0].Color()
	assert.False(t, ok)
}

func TestRegistryLoadsAndPersistsThroughStore(t *testing.T) {
	store := &memoryStore{colors: []color.Value{"#111111", "#222222"}}
	reg, err := NewRegistry(context.Background(), Options{Presets: []Preset{}, Store: store})
	require.NoError(t, err)
	assert.Equal(t, []color.Value{"#111111", "#222222"}, reg.CustomColors())

	reg.AddColor("#333333")
	assert.Equal(t, 1, store.saves)
	assert.Equal(t, []color.Value{"#333333", "#111111", "#222222"}, store.colors)
}

func TestRegistryLoadFailure(t *testing.T) {
	store := &memoryStore{loadErr: errors.New("disk on fire")}
	_, err := NewRegistry(context.Background(), Options{Store: store})
	require.Error(t, err)
}

func TestRegistrySaveFailureKeepsColorInMemory(t *testing.T) {
	store := &memoryStore{saveErr: errors.New("read-only")}
	reg, err := NewRegistry(context.Background(), Options{Presets: []Preset{}, Store: store})
	require.NoError(t, err)

	reg.AddColor("#444444")
	assert.Equal(t, []color.Value{"#444444"}, reg.CustomColors())
}
