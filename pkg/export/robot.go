// Package export renders the display projection for machine and document
// consumers.
package export

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"

	"foldline/pkg/outline"
)

// Row is one display row of a robot snapshot.
type Row struct {
	Index    int    `json:"index"`
	Kind     string `json:"kind"` // item, folder or dropzone
	ID       string `json:"id"`
	Name     string `json:"name,omitempty"`
	Nested   bool   `json:"nested,omitempty"`
	Expanded bool   `json:"expanded,omitempty"`
	Count    int    `json:"count,omitempty"` // folder content count
}

// Snapshot is the machine-readable form of a display list.
type Snapshot struct {
	Rows  []Row `json:"rows"`
	Total int   `json:"total"`
}

// BuildSnapshot converts a display list into its snapshot form.
func BuildSnapshot(nodes []outline.Node) Snapshot {
	rows := make([]Row, 0, len(nodes))
	for i, n := range nodes {
		switch v := n.(type) {
		case outline.ItemNode:
			rows = append(rows, Row{
				Index:  i,
				Kind:   "item",
				ID:     string(v.Item.ID),
				Name:   v.Item.Name,
				Nested: v.Nested,
			})
		case outline.FolderNode:
			rows = append(rows, Row{
				Index:    i,
				Kind:     "folder",
				ID:       string(v.Folder.ID),
				Name:     v.Folder.Name,
				Expanded: v.Folder.Expanded,
				Count:    len(v.Folder.Items),
			})
		case outline.DropZoneNode:
			rows = append(rows, Row{
				Index: i,
				Kind:  "dropzone",
				ID:    string(v.Folder),
			})
		}
	}
	return Snapshot{Rows: rows, Total: len(rows)}
}

// WriteJSON writes the snapshot of nodes to w as indented JSON.
func WriteJSON(w io.Writer, nodes []outline.Node) error {
	data, err := json.MarshalIndent(BuildSnapshot(nodes), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
