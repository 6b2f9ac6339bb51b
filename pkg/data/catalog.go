package data

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed datasets/catalog.yaml datasets/*.csv
var bundled embed.FS

// Entry is one dataset registered in the catalog.
type Entry struct {
	Name        string `yaml:"name"`
	Version     int    `yaml:"version"`
	File        string `yaml:"file"`
	Target      string `yaml:"target"`
	Description string `yaml:"description,omitempty"`
}

type catalog struct {
	Datasets []Entry `yaml:"datasets"`
}

// Catalog lists the bundled datasets.
func Catalog() ([]Entry, error) {
	raw, err := bundled.ReadFile("datasets/catalog.yaml")
	if err != nil {
		return nil, fmt.Errorf("catalog: read: %w", err)
	}
	var c catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("catalog: parse: %w", err)
	}
	return c.Datasets, nil
}

// lookup resolves name and version to a catalog entry. A known name with a
// different version is reported separately from an unknown name.
func lookup(name string, version int) (Entry, error) {
	entries, err := Catalog()
	if err != nil {
		return Entry{}, err
	}
	var versions []int
	for _, e := range entries {
		if e.Name != name {
			continue
		}
		if e.Version == version {
			return e, nil
		}
		versions = append(versions, e.Version)
	}
	if len(versions) > 0 {
		return Entry{}, fmt.Errorf("version mismatch: %q is available as version %v", name, versions)
	}
	return Entry{}, fmt.Errorf("unknown dataset %q", name)
}
