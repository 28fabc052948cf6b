package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPropsFilename is the props file looked up when no path is given.
const DefaultPropsFilename = "eksbp.yaml"

// LoadProps reads managed node group provider props from a YAML file.
// The props are not validated here; validation belongs to the base provider.
func LoadProps(path string) (*MngClusterProviderProps, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read props file: %w", err)
	}

	return ParseProps(data)
}

// ParseProps parses managed node group provider props from YAML.
// Unknown keys are rejected so that typos do not silently fall back to defaults.
// An empty document yields empty props.
func ParseProps(data []byte) (*MngClusterProviderProps, error) {
	var props MngClusterProviderProps

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&props); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return &props, nil
}
