package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/colorfield/internal/domain/color"
	"github.com/alexisbeaulieu97/colorfield/internal/swatch"
	apperrors "github.com/alexisbeaulieu97/colorfield/pkg/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "colorfield.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestParseConfigFull(t *testing.T) {
	path := writeConfig(t, `
label: Background
seed: "#336699"
custom_colors: false
custom_limit: 5
presets:
  - name: Red
    value: "#e03e2d"
  - name: Teal
    value: teal
storage:
  driver: sqlite
  path: /tmp/swatches.db
log:
  level: debug
  format: json
`)

	cfg, err := ParseConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "Background", cfg.Label)
	assert.Equal(t, "#336699", cfg.Seed)
	assert.False(t, cfg.CustomColorsEnabled())
	assert.Equal(t, 5, cfg.CustomLimit)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, []swatch.Preset{
		{Name: "Red", Value: color.Value("#e03e2d")},
		{Name: "Teal", Value: color.Value("teal")},
	}, cfg.SwatchPresets())
}

func TestParseConfigAppliesDefaults(t *testing.T) {
	cfg, err := ParseConfig(writeConfig(t, "label: Accent\n"))
	require.NoError(t, err)

	assert.Equal(t, "Accent", cfg.Label)
	assert.Equal(t, "#ffffff", cfg.Seed)
	assert.True(t, cfg.CustomColorsEnabled())
	assert.Equal(t, swatch.DefaultCustomLimit, cfg.CustomLimit)
	assert.Equal(t, DriverJSON, cfg.Storage.Driver)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Nil(t, cfg.SwatchPresets())
}

func TestLoadWithoutPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseConfigMissingFile(t *testing.T) {
	_, err := ParseConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	var parseErr *apperrors.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestParseConfigReportsLine(t *testing.T) {
	path := writeConfig(t, "label: ok\nseed: [unterminated\n")

	_, err := ParseConfig(path)
	require.Error(t, err)

	var parseErr *apperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, path, parseErr.Path)
	assert.Positive(t, parseErr.Line)
}

func TestParseRejectsInvalidDocuments(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{name: "seed not a color", body: "seed: nope\n", field: "seed"},
		{name: "preset not a color", body: "presets:\n  - name: Bad\n    value: \"#12\"\n", field: "presets[0].value"},
		{name: "preset without name", body: "presets:\n  - value: red\n", field: "presets[0].name"},
		{name: "unknown driver", body: "storage:\n  driver: redis\n", field: "storage.driver"},
		{name: "limit too large", body: "custom_limit: 1000\n", field: "customlimit"},
		{name: "bad log level", body: "log:\n  level: trace\n", field: "log.level"},
		{name: "duplicate preset", body: "presets:\n  - name: Red\n    value: red\n  - name: red\n    value: \"#f00\"\n", field: "presets[1].name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("inline.yaml", []byte(tt.body))
			require.Error(t, err)

			var validationErr *apperrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestValidateConfigNil(t *testing.T) {
	err := ValidateConfig(nil)
	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "config", validationErr.Field)
}

func TestExtractLine(t *testing.T) {
	assert.Equal(t, 0, extractLine(nil))
	assert.Equal(t, 0, extractLine(errors.New("no position")))
	assert.Equal(t, 12, extractLine(errors.New("yaml: line 12: mapping values are not allowed in this context")))
}
