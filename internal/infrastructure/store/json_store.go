// Package store persists the custom swatch colors.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/alexisbeaulieu97/colorfield/internal/domain/color"
	apperrors "github.com/alexisbeaulieu97/colorfield/pkg/errors"
)

const jsonFileVersion = "1.0"

// jsonFile is the on-disk layout of a JSONStore.
type jsonFile struct {
	Version      string   `json:"version"`
	CustomColors []string `json:"custom_colors"`
}

// JSONStore keeps custom colors in a single JSON file.
type JSONStore struct {
	path string
	mu   sync.Mutex
}

// NewJSONStore creates the parent directory of path and returns a store. The
// file itself is created on first save.
func NewJSONStore(path string) (*JSONStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, apperrors.NewStoreError("json", "init", fmt.Errorf("failed to create store directory: %w", err))
	}
	return &JSONStore{path: path}, nil
}

// Load reads the stored colors, newest first. A missing file yields none.
func (s *JSONStore) Load(ctx context.Context) ([]color.Value, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, apperrors.NewStoreError("json", "load", err)
	}

	var file jsonFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, apperrors.NewStoreError("json", "load", fmt.Errorf("failed to parse %s: %w", s.path, err))
	}

	colors := make([]color.Value, 0, len(file.CustomColors))
	for _, c := range file.CustomColors {
		colors = append(colors, color.Value(c))
	}
	return colors, nil
}

// Save replaces the stored colors atomically.
func (s *JSONStore) Save(ctx context.Context, colors []color.Value) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	file := jsonFile{Version: jsonFileVersion, CustomColors: make([]string, 0, len(colors))}
	for _, c := range colors {
		file.CustomColors = append(file.CustomColors, string(c))
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return apperrors.NewStoreError("json", "save", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return apperrors.NewStoreError("json", "save", fmt.Errorf("failed to write temporary file: %w", err))
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return apperrors.NewStoreError("json", "save", fmt.Errorf("failed to rename temporary file: %w", err))
	}
	return nil
}
