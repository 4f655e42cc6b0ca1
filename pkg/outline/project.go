package outline

import (
	"fmt"

	"foldline/pkg/model"
)

// Node is one row of the flat display projection. The concrete types are
// ItemNode, FolderNode and DropZoneNode; nothing else implements it.
type Node interface {
	node()
}

// ItemNode displays a single item. Nested reports whether the item is
// rendered inside an expanded folder rather than at the root level.
type ItemNode struct {
	Item   model.Item
	Nested bool
}

// FolderNode displays a folder header row.
type FolderNode struct {
	Folder model.Folder
}

// DropZoneNode is the insertion sentinel rendered after a folder's block
// when drop zones are enabled. It is a drop target, never a drag source.
type DropZoneNode struct {
	Folder model.FolderID
}

func (ItemNode) node()     {}
func (FolderNode) node()   {}
func (DropZoneNode) node() {}

// project flattens the two-level model into display order: root items in
// sequence order, each folder as a header row followed by its contents
// when expanded, followed by its drop zone when sentinels are enabled.
// Root entries referencing a missing folder are skipped rather than
// rendered; audit surfaces such breakage in tests.
func project(s *store, dropZones bool) []Node {
	out := make([]Node, 0, len(s.root))
	for _, r := range s.root {
		if !r.isFolder() {
			out = append(out, ItemNode{Item: r.item})
			continue
		}
		f := s.folder(r.folder)
		if f == nil {
			continue
		}
		out = append(out, FolderNode{Folder: f.Clone()})
		if f.Expanded {
			for _, it := range f.Items {
				out = append(out, ItemNode{Item: it, Nested: true})
			}
		}
		if dropZones {
			out = append(out, DropZoneNode{Folder: f.ID})
		}
	}
	return out
}

// NodeKey returns a stable identity string for a display node, usable as
// a cursor anchor across rebuilds.
func NodeKey(n Node) string {
	switch v := n.(type) {
	case ItemNode:
		return "item:" + string(v.Item.ID)
	case FolderNode:
		return "folder:" + string(v.Folder.ID)
	case DropZoneNode:
		return "dropzone:" + string(v.Folder)
	default:
		return fmt.Sprintf("unknown:%T", n)
	}
}
