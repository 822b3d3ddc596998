// Package config provides the configuration loader for wrp.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"regexp"

	"go.trai.ch/wrp/internal/core/domain"
	"go.trai.ch/wrp/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
	path   string
}

// NewLoader creates a loader for the file at path. An empty path means defaults only.
func NewLoader(logger ports.Logger, path string) *Loader {
	return &Loader{logger: logger, path: path}
}

// Load reads the configuration file and overlays it on the defaults.
func (l *Loader) Load() (*domain.Config, error) {
	file := fromDomain(domain.DefaultConfig())

	if l.path == "" {
		return file.toDomain(), nil
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.logger.Debug("no config file at " + l.path + ", using defaults")
			return file.toDomain(), nil
		}
		return nil, zerr.With(errors.Join(domain.ErrConfigReadFailed, err), "path", l.path)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.With(errors.Join(domain.ErrConfigParseFailed, err), "path", l.path)
	}

	for key, pattern := range map[string]string{"audio.hdmi": file.Audio.HDMI, "audio.headset": file.Audio.Headset} {
		if _, err := regexp.Compile(pattern); err != nil {
			return nil, zerr.With(zerr.With(errors.Join(domain.ErrInvalidPattern, err), "key", key), "path", l.path)
		}
	}

	return file.toDomain(), nil
}
