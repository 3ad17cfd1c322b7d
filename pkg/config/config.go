// Package config loads intent catalogs from YAML files. A catalog file
// mirrors vocab.Catalog: intents with exemplars and keywords, clusters,
// importance weights, vocabulary, and the normalizer tables.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/millerdave152-droid/street-legacy-sub014/pkg/vocab"
)

// Parse decodes a YAML catalog and validates it by constructing a Store.
func Parse(data []byte) (*vocab.Store, error) {
	var cat vocab.Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("config: parse catalog: %w", err)
	}
	if len(cat.Intents) == 0 {
		return nil, fmt.Errorf("config: catalog defines no intents")
	}
	store, err := vocab.New(cat)
	if err != nil {
		return nil, fmt.Errorf("config: invalid catalog: %w", err)
	}
	return store, nil
}

// Load reads and parses a YAML catalog file.
func Load(path string) (*vocab.Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read catalog: %w", err)
	}
	return Parse(data)
}

// Save writes a catalog to a YAML file, e.g. to seed a starting point from
// the built-in catalog for hand editing.
func Save(path string, cat vocab.Catalog) error {
	data, err := yaml.Marshal(cat)
	if err != nil {
		return fmt.Errorf("config: marshal catalog: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write catalog: %w", err)
	}
	return nil
}
