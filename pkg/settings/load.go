package settings

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/spred/plotplotplot/pkg/errors"
)

// Settings file formats.
const (
	FormatJSON = "json"
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// FormatFromPath returns the settings format implied by the file extension.
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat,
		"settings file %s: extension must be .json, .toml, .yaml or .yml", path)
}

// Load reads and decodes a settings file. It fails with CONFIGURATION when
// a required key is missing or a value has the wrong type, and validates
// the result.
func Load(path string) (Settings, error) {
	if err := errors.ValidatePath(path); err != nil {
		return Settings{}, err
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return Settings{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "read settings %s", path)
	}
	s, err := Decode(data, format)
	if err != nil {
		return Settings{}, err
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Decode parses settings data in the given format and checks that every
// required key is present. It does not validate values.
func Decode(data []byte, format string) (Settings, error) {
	var (
		s       Settings
		defined func(key string) bool
	)
	switch format {
	case FormatJSON:
		var keys map[string]json.RawMessage
		if err := json.Unmarshal(data, &keys); err != nil {
			return Settings{}, errors.Wrap(errors.ErrCodeConfiguration, err, "decode json settings")
		}
		if err := json.Unmarshal(data, &s); err != nil {
			return Settings{}, errors.Wrap(errors.ErrCodeConfiguration, err, "decode json settings")
		}
		defined = func(key string) bool { _, ok := keys[key]; return ok }
	case FormatTOML:
		md, err := toml.Decode(string(data), &s)
		if err != nil {
			return Settings{}, errors.Wrap(errors.ErrCodeConfiguration, err, "decode toml settings")
		}
		defined = func(key string) bool { return md.IsDefined(key) }
	case FormatYAML:
		var keys map[string]any
		if err := yaml.Unmarshal(data, &keys); err != nil {
			return Settings{}, errors.Wrap(errors.ErrCodeConfiguration, err, "decode yaml settings")
		}
		if err := yaml.Unmarshal(data, &s); err != nil {
			return Settings{}, errors.Wrap(errors.ErrCodeConfiguration, err, "decode yaml settings")
		}
		defined = func(key string) bool { _, ok := keys[key]; return ok }
	default:
		return Settings{}, errors.New(errors.ErrCodeInvalidFormat, "unknown settings format %q", format)
	}

	for _, key := range RequiredKeys {
		if !defined(key) {
			return Settings{}, errors.New(errors.ErrCodeConfiguration, "missing required setting %q", key)
		}
	}
	return s, nil
}

// Encode serializes s in the given format.
func (s Settings) Encode(format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(s, "", "    ")
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode json settings")
		}
		return append(data, '\n'), nil
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(s); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode toml settings")
		}
		return buf.Bytes(), nil
	case FormatYAML:
		data, err := yaml.Marshal(s)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode yaml settings")
		}
		return data, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown settings format %q", format)
}

// Write saves s to path in the format implied by its extension.
func (s Settings) Write(path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := s.Encode(format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write settings %s", path)
	}
	return nil
}
