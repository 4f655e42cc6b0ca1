package outline

import "foldline/pkg/model"

// context names the container a display row belongs to for reorder
// purposes. The zero value is the root sequence.
type context struct {
	folder model.FolderID
}

func (c context) isRoot() bool { return c.folder == "" }

// span returns the number of display rows a root entry occupies: one for
// an item, and for a folder the header plus its contents when expanded
// plus the drop zone sentinel when enabled. Entries referencing a missing
// folder occupy no rows, matching project.
func (s *store) span(r ref, dropZones bool) int {
	if !r.isFolder() {
		return 1
	}
	f := s.folder(r.folder)
	if f == nil {
		return 0
	}
	n := 1
	if f.Expanded {
		n += len(f.Items)
	}
	if dropZones {
		n++
	}
	return n
}

// displayLen returns the total number of display rows.
func (s *store) displayLen(dropZones bool) int {
	n := 0
	for _, r := range s.root {
		n += s.span(r, dropZones)
	}
	return n
}

// rootIndexForDisplay maps a display index to the root entry whose block
// covers it. A display index at or past the end maps to len(root), the
// append position.
func (s *store) rootIndexForDisplay(d int, dropZones bool) int {
	if d < 0 {
		return 0
	}
	row := 0
	for i, r := range s.root {
		row += s.span(r, dropZones)
		if d < row {
			return i
		}
	}
	return len(s.root)
}

// locateContext resolves the container a display row belongs to. Content
// rows of an expanded folder belong to that folder; folder headers, drop
// zones and root items belong to the root sequence.
func (s *store) locateContext(d int, dropZones bool) context {
	row := 0
	for _, r := range s.root {
		sp := s.span(r, dropZones)
		if d >= row+sp {
			row += sp
			continue
		}
		if !r.isFolder() {
			return context{}
		}
		f := s.folder(r.folder)
		if f == nil {
			return context{}
		}
		offset := d - row
		if f.Expanded && offset >= 1 && offset <= len(f.Items) {
			return context{folder: f.ID}
		}
		return context{}
	}
	return context{}
}

// folderSpan returns the insertable display range of an expanded folder's
// contents. start is the row of the first content slot (header row plus
// one) and end is start plus the content count, so end itself is a valid
// target meaning insert after the last item. ok is false for collapsed or
// missing folders, which expose no interior positions.
func (s *store) folderSpan(id model.FolderID, dropZones bool) (start, end int, ok bool) {
	row := 0
	for _, r := range s.root {
		if r.folder == id {
			f := s.folder(id)
			if f == nil || !f.Expanded {
				return 0, 0, false
			}
			start = row + 1
			return start, start + len(f.Items), true
		}
		row += s.span(r, dropZones)
	}
	return 0, 0, false
}

// nodeAt returns the display node at index d without materializing the
// whole projection.
func (s *store) nodeAt(d int, dropZones bool) (Node, bool) {
	if d < 0 {
		return nil, false
	}
	row := 0
	for _, r := range s.root {
		sp := s.span(r, dropZones)
		if d >= row+sp {
			row += sp
			continue
		}
		if !r.isFolder() {
			return ItemNode{Item: r.item}, true
		}
		f := s.folder(r.folder)
		if f == nil {
			return nil, false
		}
		offset := d - row
		if offset == 0 {
			return FolderNode{Folder: f.Clone()}, true
		}
		if f.Expanded && offset <= len(f.Items) {
			return ItemNode{Item: f.Items[offset-1], Nested: true}, true
		}
		return DropZoneNode{Folder: f.ID}, true
	}
	return nil, false
}
