package config

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	cfgpkg "github.com/alexisbeaulieu97/colorfield/internal/config"
	"github.com/alexisbeaulieu97/colorfield/internal/ports"
)

const appDirName = "colorfield"

// YAMLLoader reads colorfield configuration from disk and resolves the
// locations derived from it.
type YAMLLoader struct {
	logger    ports.Logger
	configDir func() (string, error)
}

// NewYAMLLoader returns a loader that logs through logger.
func NewYAMLLoader(logger ports.Logger) *YAMLLoader {
	return &YAMLLoader{logger: logger, configDir: os.UserConfigDir}
}

// Load parses path, or returns the defaults when path is empty. Relative
// storage paths are resolved against the directory holding the file.
func (l *YAMLLoader) Load(ctx context.Context, path string) (*cfgpkg.Config, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.logDebug(ctx, "loading configuration", map[string]interface{}{"path": path})

	cfg, err := cfgpkg.Load(path)
	if err != nil {
		l.logError(ctx, "failed to load configuration", err, map[string]interface{}{"path": path})
		return nil, err
	}

	if err := l.resolveStoragePath(cfg, path); err != nil {
		l.logError(ctx, "failed to resolve storage path", err, map[string]interface{}{"driver": cfg.Storage.Driver})
		return nil, err
	}

	l.logInfo(ctx, "configuration loaded", map[string]interface{}{
		"path":           path,
		"driver":         cfg.Storage.Driver,
		"storage":        cfg.Storage.Path,
		"custom_colors":  cfg.CustomColorsEnabled(),
		"preset_palette": len(cfg.Presets) > 0,
	})
	return cfg, nil
}

func (l *YAMLLoader) resolveStoragePath(cfg *cfgpkg.Config, source string) error {
	var file string
	switch cfg.Storage.Driver {
	case cfgpkg.DriverJSON:
		file = "swatches.json"
	case cfgpkg.DriverSQLite:
		file = "swatches.db"
	default:
		return nil
	}

	if cfg.Storage.Path == "" {
		dir, err := l.configDir()
		if err != nil {
			return err
		}
		cfg.Storage.Path = filepath.Join(dir, appDirName, file)
		return nil
	}

	if !filepath.IsAbs(cfg.Storage.Path) && source != "" {
		cfg.Storage.Path = filepath.Join(filepath.Dir(source), cfg.Storage.Path)
	}
	return nil
}

func (l *YAMLLoader) logDebug(ctx context.Context, msg string, fields map[string]interface{}) {
	if l.logger == nil {
		return
	}
	l.logger.Debug(ctx, msg, flattenFields(fields)...)
}

func (l *YAMLLoader) logInfo(ctx context.Context, msg string, fields map[string]interface{}) {
	if l.logger == nil {
		return
	}
	l.logger.Info(ctx, msg, flattenFields(fields)...)
}

func (l *YAMLLoader) logError(ctx context.Context, msg string, err error, fields map[string]interface{}) {
	if l.logger == nil {
		return
	}
	payload := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		payload[k] = v
	}
	payload["error"] = err
	l.logger.Error(ctx, msg, flattenFields(payload)...)
}

func flattenFields(fields map[string]interface{}) []interface{} {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]interface{}, 0, len(fields)*2)
	for _, k := range keys {
		args = append(args, k, fields[k])
	}
	return args
}
