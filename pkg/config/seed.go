// Package config loads the seed catalog that populates the outline on
// startup.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"foldline/pkg/model"
)

// SeedItem is one item entry of the seed catalog. IDs are assigned at
// load time, never stored in the file.
type SeedItem struct {
	Name string `yaml:"name" json:"name"`
}

// SeedFolder is one folder entry of the seed catalog.
type SeedFolder struct {
	Name     string     `yaml:"name" json:"name"`
	Expanded bool       `yaml:"expanded,omitempty" json:"expanded,omitempty"`
	Items    []SeedItem `yaml:"items,omitempty" json:"items,omitempty"`
}

// Seed is the on-disk startup catalog: loose root items followed by
// folders.
type Seed struct {
	Name    string       `yaml:"name,omitempty" json:"name,omitempty"`
	Items   []SeedItem   `yaml:"items,omitempty" json:"items,omitempty"`
	Folders []SeedFolder `yaml:"folders,omitempty" json:"folders,omitempty"`
}

// Load reads and validates a seed catalog from path.
func Load(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var s Seed
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}
	return &s, nil
}

// Validate checks every entry has a name.
func (s *Seed) Validate() error {
	for i, it := range s.Items {
		if it.Name == "" {
			return fmt.Errorf("item %d has no name", i)
		}
	}
	for i, f := range s.Folders {
		if f.Name == "" {
			return fmt.Errorf("folder %d has no name", i)
		}
		for j, it := range f.Items {
			if it.Name == "" {
				return fmt.Errorf("folder %q item %d has no name", f.Name, j)
			}
		}
	}
	return nil
}

// Materialize converts the catalog into model values with IDs left empty
// for the engine to assign.
func (s *Seed) Materialize() ([]model.Item, []model.Folder) {
	items := make([]model.Item, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, model.Item{Name: it.Name})
	}
	folders := make([]model.Folder, 0, len(s.Folders))
	for _, f := range s.Folders {
		contents := make([]model.Item, 0, len(f.Items))
		for _, it := range f.Items {
			contents = append(contents, model.Item{Name: it.Name})
		}
		folders = append(folders, model.Folder{
			Name:     f.Name,
			Expanded: f.Expanded,
			Items:    contents,
		})
	}
	return items, folders
}

// Default returns the built-in demo catalog used when no seed file is
// given.
func Default() *Seed {
	return &Seed{
		Name: "demo",
		Items: []SeedItem{
			{Name: "Inbox note"},
			{Name: "Scratch pad"},
		},
		Folders: []SeedFolder{
			{
				Name:     "Projects",
				Expanded: true,
				Items: []SeedItem{
					{Name: "Write proposal"},
					{Name: "Review budget"},
					{Name: "Plan offsite"},
				},
			},
			{
				Name: "Archive",
				Items: []SeedItem{
					{Name: "Old roadmap"},
				},
			},
		},
	}
}
