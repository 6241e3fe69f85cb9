package catalog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Exercises []Entry `yaml:"exercises"`
}

func LoadSeedFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return ParseSeed(data)
}

// ParseSeed decodes a yaml seed document and normalizes names and categories.
func ParseSeed(data []byte) ([]Entry, error) {
	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("unmarshal seed: %w", err)
	}

	entries := make([]Entry, 0, len(seed.Exercises))
	for i, e := range seed.Exercises {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return nil, fmt.Errorf("seed entry %d: empty name", i)
		}
		category, err := ParseCategory(string(e.Category))
		if err != nil {
			return nil, fmt.Errorf("seed entry %q: %w", name, err)
		}
		entries = append(entries, Entry{
			Name:     name,
			Category: category,
			URL:      strings.TrimSpace(e.URL),
		})
	}

	return entries, nil
}
