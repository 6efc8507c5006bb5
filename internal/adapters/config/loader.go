// Package config provides the configuration loader for yango.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	adapterfs "go.trai.ch/yango/internal/adapters/fs"
	"go.trai.ch/yango/internal/core/domain"
	"go.trai.ch/yango/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
	codec  *adapterfs.Codec
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger, codec *adapterfs.Codec) *Loader {
	return &Loader{logger: logger, codec: codec}
}

// Load reads the configuration file at path and resolves it into a domain.Config.
//
// Relative baseDir is resolved against the directory of the file; targetDir,
// sourceDirectory and directories are resolved against baseDir. Directories
// given as overrides are resolved against the working directory.
func (l *Loader) Load(path string, overrides domain.ConfigOverrides) (*domain.Config, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file Yangofile
	data, err := os.ReadFile(absPath) //nolint:gosec // path is provided by user
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", absPath)
		}
	case errors.Is(err, fs.ErrNotExist):
		l.logger.Debug("no " + filepath.Base(absPath) + " found, using defaults")
	default:
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", absPath)
	}

	cfg, err := resolve(&file, filepath.Dir(absPath))
	if err != nil {
		return nil, zerr.With(err, "path", absPath)
	}

	if err := applyOverrides(cfg, overrides); err != nil {
		return nil, err
	}

	if err := l.validate(cfg); err != nil {
		return nil, zerr.With(err, "path", absPath)
	}

	return cfg, nil
}

func resolve(file *Yangofile, configDir string) (*domain.Config, error) {
	baseDir := resolvePath(configDir, file.BaseDir, ".")

	timeout := time.Duration(0)
	if t := strings.TrimSpace(file.Timeout); t != "" {
		d, err := time.ParseDuration(t)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidConfig.Error()), "timeout", t)
		}
		timeout = d
	}

	cfg := &domain.Config{
		BaseDir:             baseDir,
		TargetDir:           resolvePath(baseDir, file.TargetDir, domain.DefaultTargetDirName),
		SourceDir:           resolvePath(baseDir, file.SourceDirectory, domain.DefaultSourceDirName),
		Includes:            orDefault(file.Includes, domain.DefaultIncludes()),
		Excludes:            orDefault(file.Excludes, domain.DefaultExcludes()),
		Encoding:            orDefaultString(file.Encoding, domain.DefaultEncoding),
		FailOnError:         true,
		Tool:                orDefaultString(file.Tool, domain.DefaultToolName),
		RecommendedVersion:  orDefaultString(file.RecommendedVersion, domain.DefaultRecommendedVersion),
		ModulePath:          file.ModulePath,
		Timeout:             timeout,
		Jobs:                1,
		CacheFailedAttempts: file.CacheFailedAttempts,
		FormatArgs:          file.FormatArgs,
		ConvertArgs:         file.ConvertArgs,
		CompileArgs:         file.CompileArgs,
	}

	if file.FailOnError != nil {
		cfg.FailOnError = *file.FailOnError
	}
	if file.Jobs != nil {
		cfg.Jobs = *file.Jobs
	}
	for _, dir := range file.Directories {
		cfg.Directories = append(cfg.Directories, resolvePath(baseDir, dir, "."))
	}

	return cfg, nil
}

func applyOverrides(cfg *domain.Config, o domain.ConfigOverrides) error {
	if len(o.Directories) > 0 {
		dirs := make([]string, 0, len(o.Directories))
		for _, dir := range o.Directories {
			abs, err := filepath.Abs(dir)
			if err != nil {
				return zerr.With(zerr.Wrap(err, domain.ErrInvalidConfig.Error()), "directory", dir)
			}
			dirs = append(dirs, abs)
		}
		cfg.Directories = dirs
	}
	if o.FailOnError != nil {
		cfg.FailOnError = *o.FailOnError
	}
	if o.Encoding != "" {
		cfg.Encoding = o.Encoding
	}
	if o.Timeout != nil {
		cfg.Timeout = *o.Timeout
	}
	if o.Jobs != nil {
		cfg.Jobs = *o.Jobs
	}
	return nil
}

func (l *Loader) validate(cfg *domain.Config) error {
	if cfg.Jobs < 0 {
		return zerr.With(zerr.Wrap(zerr.New("jobs must not be negative"), domain.ErrInvalidConfig.Error()), "jobs", cfg.Jobs)
	}
	if cfg.Timeout < 0 {
		return zerr.With(zerr.Wrap(zerr.New("timeout must not be negative"), domain.ErrInvalidConfig.Error()), "timeout", cfg.Timeout.String())
	}
	if strings.TrimSpace(cfg.Tool) == "" {
		return zerr.Wrap(zerr.New("tool must not be empty"), domain.ErrInvalidConfig.Error())
	}
	if err := l.codec.Validate(cfg.Encoding); err != nil {
		return zerr.Wrap(err, domain.ErrInvalidConfig.Error())
	}
	return nil
}

func resolvePath(base, value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		value = fallback
	}
	if filepath.IsAbs(value) {
		return filepath.Clean(value)
	}
	return filepath.Join(base, value)
}

func orDefault(values, fallback []string) []string {
	if len(values) == 0 {
		return fallback
	}
	return values
}

func orDefaultString(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
