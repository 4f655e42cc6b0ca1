package outline

import "foldline/pkg/model"

type moveKind int

const (
	moveInvalid moveKind = iota
	moveReorder
	moveTransfer
	moveFolderReorder
)

// moveOp is a resolved drag: either a reorder within one container, a
// transfer of an item between containers, or a root-level folder move.
// All indices are pre-mutation positions.
type moveOp struct {
	kind moveKind

	// moveReorder and moveFolderReorder
	ctx      context
	from, to int

	// moveTransfer
	item     model.ItemID
	toCtx    context
	insertAt int
}

// resolve classifies a drag from display index src to display index tgt.
// tgt may equal the display length, meaning drop after the last row. The
// rules, in order:
//
//   - drop zones are never drag sources
//   - folder headers move as whole blocks within the root sequence
//   - dropping an item on a folder's own drop zone ejects it to the root
//     sequence just below that folder; any other drop zone appends into
//     its folder
//   - dropping just past the last row of the item's own expanded folder
//     reorders to the folder's last position rather than leaving it
//   - dropping on a collapsed folder header appends into that folder
//   - otherwise the containers of src and tgt decide between a reorder
//     and a transfer
func resolve(s *store, src, tgt int, dropZones bool) moveOp {
	n := s.displayLen(dropZones)
	if src < 0 || src >= n || tgt < 0 || tgt > n || src == tgt {
		return moveOp{kind: moveInvalid}
	}

	srcNode, ok := s.nodeAt(src, dropZones)
	if !ok {
		return moveOp{kind: moveInvalid}
	}

	switch sn := srcNode.(type) {
	case DropZoneNode:
		return moveOp{kind: moveInvalid}

	case FolderNode:
		return moveOp{
			kind: moveFolderReorder,
			from: s.rootIndexOfFolder(sn.Folder.ID),
			to:   s.rootIndexForDisplay(tgt, dropZones),
		}

	case ItemNode:
		return resolveItem(s, sn.Item.ID, src, tgt, dropZones)
	}
	return moveOp{kind: moveInvalid}
}

func resolveItem(s *store, id model.ItemID, src, tgt int, dropZones bool) moveOp {
	srcCtx := s.locateContext(src, dropZones)
	n := s.displayLen(dropZones)

	// Drop past the last row: append at root level, leaving the source
	// folder when there is one. When the source folder itself ends the
	// display, one past its last content row is still the in-folder
	// insert-after-last position, not an exit.
	if tgt == n {
		if srcCtx.isRoot() {
			return moveOp{
				kind: moveReorder,
				from: s.rootIndexForDisplay(src, dropZones),
				to:   len(s.root),
			}
		}
		if start, end, ok := s.folderSpan(srcCtx.folder, dropZones); ok && end == n {
			return moveOp{
				kind: moveReorder,
				ctx:  srcCtx,
				from: src - start,
				to:   end - start,
			}
		}
		return moveOp{
			kind:     moveTransfer,
			item:     id,
			toCtx:    context{},
			insertAt: len(s.root),
		}
	}

	tgtNode, ok := s.nodeAt(tgt, dropZones)
	if !ok {
		return moveOp{kind: moveInvalid}
	}

	if dz, isDZ := tgtNode.(DropZoneNode); isDZ {
		if dz.Folder == srcCtx.folder {
			// The item's own drop zone ejects it to the root sequence
			// directly below its folder.
			return moveOp{
				kind:     moveTransfer,
				item:     id,
				toCtx:    context{},
				insertAt: s.rootIndexOfFolder(dz.Folder) + 1,
			}
		}
		f := s.folder(dz.Folder)
		if f == nil {
			return moveOp{kind: moveInvalid}
		}
		return moveOp{
			kind:     moveTransfer,
			item:     id,
			toCtx:    context{folder: dz.Folder},
			insertAt: len(f.Items),
		}
	}

	// One past the last content row of the item's own expanded folder is
	// still an in-folder target: move to the last position.
	if !srcCtx.isRoot() {
		if start, end, ok := s.folderSpan(srcCtx.folder, dropZones); ok && tgt == end {
			return moveOp{
				kind: moveReorder,
				ctx:  srcCtx,
				from: src - start,
				to:   end - start,
			}
		}
	}

	if fn, isFolder := tgtNode.(FolderNode); isFolder && !fn.Folder.Expanded {
		if srcCtx.folder == fn.Folder.ID {
			return moveOp{kind: moveInvalid}
		}
		return moveOp{
			kind:     moveTransfer,
			item:     id,
			toCtx:    context{folder: fn.Folder.ID},
			insertAt: len(fn.Folder.Items),
		}
	}

	tgtCtx := s.locateContext(tgt, dropZones)
	if tgtCtx == srcCtx {
		if srcCtx.isRoot() {
			return moveOp{
				kind: moveReorder,
				from: s.rootIndexForDisplay(src, dropZones),
				to:   s.rootIndexForDisplay(tgt, dropZones),
			}
		}
		start, _, ok := s.folderSpan(srcCtx.folder, dropZones)
		if !ok {
			return moveOp{kind: moveInvalid}
		}
		return moveOp{
			kind: moveReorder,
			ctx:  srcCtx,
			from: src - start,
			to:   tgt - start,
		}
	}

	insertAt := 0
	if tgtCtx.isRoot() {
		insertAt = s.rootIndexForDisplay(tgt, dropZones)
	} else {
		start, _, ok := s.folderSpan(tgtCtx.folder, dropZones)
		if !ok {
			return moveOp{kind: moveInvalid}
		}
		insertAt = tgt - start
	}
	return moveOp{
		kind:     moveTransfer,
		item:     id,
		toCtx:    tgtCtx,
		insertAt: insertAt,
	}
}
