package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"modelmap/internal/common"
)

// LoadFile loads and parses a YAML configuration file from the given path.
func LoadFile(path string) (*ModulesFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	mf, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return mf, nil
}

// LoadFiles loads every file matching the given patterns (doublestar
// globs such as "mappings/**/*.yaml", or plain paths) and concatenates
// their mappings. Files are read in pattern order, and in lexical order
// within a pattern. A pattern that matches nothing is an error.
func LoadFiles(patterns ...string) (*ModulesFile, []string, error) {
	var paths []string

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid config pattern %q: %w", pattern, err)
		}

		if len(matches) == 0 {
			return nil, nil, fmt.Errorf("no config files match %q", pattern)
		}

		sort.Strings(matches)
		paths = append(paths, matches...)
	}

	paths = common.Unique(paths)

	merged := &ModulesFile{Version: "1"}

	for _, path := range paths {
		mf, err := LoadFile(path)
		if err != nil {
			return nil, nil, err
		}

		merged.MapUnconfiguredPackages = merged.MapUnconfiguredPackages || mf.MapUnconfiguredPackages
		merged.Mappings = append(merged.Mappings, mf.Mappings...)
	}

	return merged, paths, nil
}

// Parse parses YAML data into a ModulesFile.
func Parse(data []byte) (*ModulesFile, error) {
	var mf ModulesFile

	err := yaml.Unmarshal(data, &mf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&mf)

	return &mf, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(mf *ModulesFile) {
	if mf.Version == "" {
		mf.Version = "1"
	}

	for i := range mf.Mappings {
		m := &mf.Mappings[i]
		if m.Name == "" {
			m.Name = common.MappingName(m.Package)
		}
	}
}

// Marshal serializes a ModulesFile to YAML.
func Marshal(mf *ModulesFile) ([]byte, error) {
	return yaml.Marshal(mf)
}

// WriteFile writes a ModulesFile to the given path.
func WriteFile(mf *ModulesFile, path string) error {
	data, err := Marshal(mf)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}
