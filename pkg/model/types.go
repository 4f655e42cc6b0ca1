package model

import "fmt"

// ItemID uniquely identifies a row for the lifetime of the process.
// IDs are opaque: callers must never parse or order them.
type ItemID string

// FolderID uniquely identifies a folder for the lifetime of the process.
type FolderID string

// Item is a leaf row. An item is owned by exactly one container at any
// time: the root sequence or a single folder's contents, never both.
type Item struct {
	ID   ItemID `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Validate checks if the item data is logically valid
func (i *Item) Validate() error {
	if i.ID == "" {
		return fmt.Errorf("item ID cannot be empty")
	}
	if i.Name == "" {
		return fmt.Errorf("item name cannot be empty")
	}
	return nil
}

// Folder is a named, ordered holder of items. Folders hold items only and
// never nest. The folder table is the authoritative home for Items and
// Expanded; the root sequence refers to a folder by ID alone, so there is
// no second copy to drift out of sync.
type Folder struct {
	ID       FolderID `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Items    []Item   `json:"items,omitempty" yaml:"items,omitempty"`
	Expanded bool     `json:"expanded,omitempty" yaml:"expanded,omitempty"`
}

// Clone creates a deep copy of the folder
func (f Folder) Clone() Folder {
	clone := f
	if f.Items != nil {
		clone.Items = make([]Item, len(f.Items))
		copy(clone.Items, f.Items)
	}
	return clone
}

// Validate checks if the folder data is logically valid
func (f *Folder) Validate() error {
	if f.ID == "" {
		return fmt.Errorf("folder ID cannot be empty")
	}
	if f.Name == "" {
		return fmt.Errorf("folder name cannot be empty")
	}
	for idx := range f.Items {
		if err := f.Items[idx].Validate(); err != nil {
			return fmt.Errorf("folder %s item %d: %w", f.ID, idx, err)
		}
	}
	return nil
}
