package ruletable

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// DefaultEnvPrefix is the prefix used for table environment overrides.
const DefaultEnvPrefix = "SITECONFIG_"

// Parse decodes a YAML tables document. Only keys present in the document are
// set on the returned value; the rest stay nil so Merge keeps their defaults.
// Unknown keys are rejected.
func Parse(data []byte) (*Tables, error) {
	var t Tables
	if len(bytes.TrimSpace(data)) == 0 {
		return &t, nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrParseTables, err)
	}
	return &t, nil
}

// LoadFile reads and parses a YAML tables file without merging defaults.
func LoadFile(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrReadTables, err)
	}
	return Parse(data)
}

// ApplyEnv overlays environment variables onto t in place. Variables that are
// not set leave the corresponding table untouched.
func ApplyEnv(t *Tables, prefix string) error {
	if t == nil {
		return errors.Join(ErrEnvOverlay, errors.New("nil tables"))
	}
	if err := env.ParseWithOptions(t, env.Options{Prefix: prefix}); err != nil {
		return errors.Join(ErrEnvOverlay, err)
	}
	return nil
}

// Load builds validated tables from the defaults, an optional YAML file and
// optional environment overrides. An empty path skips the file layer and an
// empty prefix skips the environment layer.
func Load(path, envPrefix string) (*Tables, error) {
	t := Default()

	if path != "" {
		fileTables, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		t = t.Merge(fileTables)
	}

	if envPrefix != "" {
		if err := ApplyEnv(t, envPrefix); err != nil {
			return nil, err
		}
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}
