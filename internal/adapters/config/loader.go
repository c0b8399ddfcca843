// Package config provides the profile loader for fclean.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/fclean/internal/core/domain"
	"go.trai.ch/fclean/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger        ports.Logger
	fs            FileSystem
	userConfigDir func() (string, error)
}

// NewLoader creates a new Loader reading from the real filesystem.
func NewLoader(logger ports.Logger) *Loader {
	return NewLoaderWithFS(logger, NewOSFS(), os.UserConfigDir)
}

// NewLoaderWithFS creates a Loader with a custom filesystem and config dir lookup.
func NewLoaderWithFS(logger ports.Logger, fsys FileSystem, userConfigDir func() (string, error)) *Loader {
	return &Loader{
		Logger:        logger,
		fs:            fsys,
		userConfigDir: userConfigDir,
	}
}

// Load resolves the effective profile.
// An empty path selects the default location, which may be absent.
// An empty profile name selects the top-level settings only.
func (l *Loader) Load(path, profile string) (*domain.Profile, error) {
	configPath, explicit := path, path != ""
	if !explicit {
		configPath = l.defaultPath()
	}

	if configPath == "" {
		return builtinProfile(profile)
	}

	if _, err := l.fs.Stat(configPath); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			err = zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
			return nil, zerr.With(err, "path", configPath)
		}
		if explicit {
			return nil, zerr.With(domain.ErrConfigNotFound, "path", configPath)
		}
		l.Logger.Debug("no config file at " + configPath + ", using defaults")
		return builtinProfile(profile)
	}

	var file Configfile
	if err := readAndUnmarshalYAML(l.fs, configPath, &file); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}
	l.Logger.Debug("loaded config from " + configPath)

	resolved := file.toDomain()
	if profile != "" {
		named, ok := file.Profiles[profile]
		if !ok {
			return nil, zerr.With(domain.ErrProfileNotFound, "profile", profile)
		}
		resolved = resolved.Overlay(named.toDomain())
	}

	if err := validateProfile(&resolved); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}
	return &resolved, nil
}

func (l *Loader) defaultPath() string {
	dir, err := l.userConfigDir()
	if err != nil || dir == "" {
		return ""
	}
	return filepath.Join(dir, domain.AppDirName, domain.ConfigFileName)
}

// builtinProfile is used when no config file exists; only the unnamed profile is defined.
func builtinProfile(profile string) (*domain.Profile, error) {
	if profile != "" {
		return nil, zerr.With(domain.ErrProfileNotFound, "profile", profile)
	}
	return &domain.Profile{}, nil
}

func validateProfile(p *domain.Profile) error {
	if p.MaxDepth != nil && *p.MaxDepth < 0 {
		return zerr.With(domain.ErrInvalidMaxDepth, "max_depth", *p.MaxDepth)
	}
	return nil
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](fsys FileSystem, configPath string, target *T) error {
	configFile, err := fsys.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
