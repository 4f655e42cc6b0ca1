package outline

import (
	"fmt"

	"foldline/pkg/model"
)

// ref is one entry of the root sequence: an item held by value, or a
// folder held by identity only. Folder contents and the expanded flag
// live exclusively in the folder table, so a ref can never carry a stale
// snapshot of either.
type ref struct {
	folder model.FolderID // non-empty marks a folder entry
	item   model.Item     // valid only when folder is empty
}

func (r ref) isFolder() bool { return r.folder != "" }

// store is the authoritative two-level model: an ordered root sequence of
// refs plus the folder table keyed by folder identity.
type store struct {
	root    []ref
	folders map[model.FolderID]*model.Folder
}

func newStore() store {
	return store{folders: make(map[model.FolderID]*model.Folder)}
}

// folder returns the table entry for id, or nil when the id is unknown.
func (s *store) folder(id model.FolderID) *model.Folder {
	return s.folders[id]
}

// updateFolder is the single path for folder content and flag mutations.
// All inserts, removals, reorders and toggles of folder state go through
// here; the root sequence never holds folder state, so one write keeps
// the model consistent. Reports whether the folder was found.
func (s *store) updateFolder(id model.FolderID, fn func(*model.Folder)) bool {
	f, ok := s.folders[id]
	if !ok {
		return false
	}
	fn(f)
	return true
}

// rootIndexOfFolder returns the root sequence position of a folder, or -1.
func (s *store) rootIndexOfFolder(id model.FolderID) int {
	for i, r := range s.root {
		if r.folder == id {
			return i
		}
	}
	return -1
}

// location identifies where an item currently lives.
type location struct {
	folder model.FolderID // empty means the root sequence
	index  int            // position within the owning container
}

// findItem locates an item by ID across the root sequence and every
// folder's contents.
func (s *store) findItem(id model.ItemID) (location, bool) {
	for i, r := range s.root {
		if !r.isFolder() && r.item.ID == id {
			return location{index: i}, true
		}
	}
	for fid, f := range s.folders {
		for i := range f.Items {
			if f.Items[i].ID == id {
				return location{folder: fid, index: i}, true
			}
		}
	}
	return location{}, false
}

// takeItem removes an item from its current owner and returns it.
func (s *store) takeItem(id model.ItemID) (model.Item, bool) {
	loc, ok := s.findItem(id)
	if !ok {
		return model.Item{}, false
	}
	if loc.folder == "" {
		it := s.root[loc.index].item
		s.root = removeAt(s.root, loc.index)
		return it, true
	}
	var it model.Item
	s.updateFolder(loc.folder, func(f *model.Folder) {
		it = f.Items[loc.index]
		f.Items = removeAt(f.Items, loc.index)
	})
	return it, true
}

// insertItemAtRoot places an item into the root sequence at pos, clamped
// to [0, len(root)].
func (s *store) insertItemAtRoot(it model.Item, pos int) {
	s.root = insertAt(s.root, ref{item: it}, pos)
}

// insertItemInFolder places an item into a folder's contents at pos,
// clamped to [0, len(contents)]. Unknown folders fall back to the end of
// the root sequence so the item is never dropped.
func (s *store) insertItemInFolder(it model.Item, id model.FolderID, pos int) {
	if !s.updateFolder(id, func(f *model.Folder) {
		f.Items = insertAt(f.Items, it, pos)
	}) {
		s.insertItemAtRoot(it, len(s.root))
	}
}

// audit verifies the structural invariants: the root sequence and folder
// table reference exactly the same folder identities, every item ID is
// owned exactly once, and every owned entity passes its model
// validation. Violations are programming defects; audit exists so tests
// can assert they never happen.
func (s *store) audit() error {
	seenFolders := make(map[model.FolderID]bool)
	seenItems := make(map[model.ItemID]bool)
	for i, r := range s.root {
		if r.isFolder() {
			if seenFolders[r.folder] {
				return fmt.Errorf("folder %s appears twice in root sequence", r.folder)
			}
			seenFolders[r.folder] = true
			if _, ok := s.folders[r.folder]; !ok {
				return fmt.Errorf("root entry %d references folder %s with no table entry", i, r.folder)
			}
			continue
		}
		if err := r.item.Validate(); err != nil {
			return fmt.Errorf("root entry %d: %w", i, err)
		}
		if seenItems[r.item.ID] {
			return fmt.Errorf("item %s owned more than once", r.item.ID)
		}
		seenItems[r.item.ID] = true
	}
	for fid, f := range s.folders {
		if !seenFolders[fid] {
			return fmt.Errorf("folder table entry %s is orphaned from the root sequence", fid)
		}
		if f == nil {
			return fmt.Errorf("folder table entry %s is nil", fid)
		}
		if f.ID != fid {
			return fmt.Errorf("folder table entry %s holds folder with ID %s", fid, f.ID)
		}
		if err := f.Validate(); err != nil {
			return err
		}
		for _, it := range f.Items {
			if seenItems[it.ID] {
				return fmt.Errorf("item %s owned more than once", it.ID)
			}
			seenItems[it.ID] = true
		}
	}
	return nil
}

// removeAt returns xs without the element at i.
func removeAt[T any](xs []T, i int) []T {
	return append(xs[:i:i], xs[i+1:]...)
}

// insertAt returns xs with v inserted so it ends up at position pos,
// clamped to the valid range.
func insertAt[T any](xs []T, v T, pos int) []T {
	if pos < 0 {
		pos = 0
	}
	if pos > len(xs) {
		pos = len(xs)
	}
	out := make([]T, 0, len(xs)+1)
	out = append(out, xs[:pos]...)
	out = append(out, v)
	out = append(out, xs[pos:]...)
	return out
}

// moveWithin removes the element at from and re-inserts it at to, the
// stable list-move semantics shared by every reorder.
func moveWithin[T any](xs []T, from, to int) []T {
	if from < 0 || from >= len(xs) {
		return xs
	}
	v := xs[from]
	xs = removeAt(xs, from)
	return insertAt(xs, v, to)
}
