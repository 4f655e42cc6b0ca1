package outline

import (
	"fmt"

	"foldline/pkg/model"
)

// Engine owns the two-level outline model and exposes every mutation the
// host acts through. It is not safe for concurrent use; the host drives
// it from a single update loop.
type Engine struct {
	store     store
	dropZones bool

	itemSeq   int
	folderSeq int
}

// Option configures a new Engine.
type Option func(*Engine)

// WithDropZones enables drop zone sentinels in the display projection.
func WithDropZones(enabled bool) Option {
	return func(e *Engine) { e.dropZones = enabled }
}

// New returns an empty engine.
func New(opts ...Option) *Engine {
	e := &Engine{store: newStore()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetDropZones switches drop zone sentinels on or off. Display indices
// shift accordingly on the next projection.
func (e *Engine) SetDropZones(enabled bool) { e.dropZones = enabled }

// DropZones reports whether drop zone sentinels are enabled.
func (e *Engine) DropZones() bool { return e.dropZones }

// Initialize replaces the whole model with the given root items followed
// by the given folders. Entries with an empty ID are assigned one.
func (e *Engine) Initialize(items []model.Item, folders []model.Folder) {
	e.store = newStore()
	for _, it := range items {
		if it.ID == "" {
			it.ID = e.nextItemID()
		}
		e.store.root = append(e.store.root, ref{item: it})
	}
	for _, f := range folders {
		f = f.Clone()
		if f.ID == "" {
			f.ID = e.nextFolderID()
		}
		for i := range f.Items {
			if f.Items[i].ID == "" {
				f.Items[i].ID = e.nextItemID()
			}
		}
		e.store.root = append(e.store.root, ref{folder: f.ID})
		e.store.folders[f.ID] = &f
	}
}

func (e *Engine) nextItemID() model.ItemID {
	e.itemSeq++
	return model.ItemID(fmt.Sprintf("item-%d", e.itemSeq))
}

func (e *Engine) nextFolderID() model.FolderID {
	e.folderSeq++
	return model.FolderID(fmt.Sprintf("folder-%d", e.folderSeq))
}

// DisplayList projects the model into display order. The slice is
// rebuilt on every call and safe for the caller to retain.
func (e *Engine) DisplayList() []Node {
	return project(&e.store, e.dropZones)
}

// NodeAt returns the display node at index d, if any.
func (e *Engine) NodeAt(d int) (Node, bool) {
	return e.store.nodeAt(d, e.dropZones)
}

// Len returns the number of display rows.
func (e *Engine) Len() int {
	return e.store.displayLen(e.dropZones)
}

// ToggleFolder flips a folder between expanded and collapsed. Unknown
// folders are a no-op.
func (e *Engine) ToggleFolder(id model.FolderID) {
	e.store.updateFolder(id, func(f *model.Folder) {
		f.Expanded = !f.Expanded
	})
}

// ExpandAll expands every folder.
func (e *Engine) ExpandAll() {
	for id := range e.store.folders {
		e.store.updateFolder(id, func(f *model.Folder) { f.Expanded = true })
	}
}

// CollapseAll collapses every folder.
func (e *Engine) CollapseAll() {
	for id := range e.store.folders {
		e.store.updateFolder(id, func(f *model.Folder) { f.Expanded = false })
	}
}

// AddFolder creates an empty collapsed folder at the end of the root
// sequence and returns its ID.
func (e *Engine) AddFolder(name string) model.FolderID {
	id := e.nextFolderID()
	f := model.Folder{ID: id, Name: name}
	e.store.root = append(e.store.root, ref{folder: id})
	e.store.folders[id] = &f
	return id
}

// AddItem creates an item at the end of the root sequence and returns
// its ID.
func (e *Engine) AddItem(name string) model.ItemID {
	id := e.nextItemID()
	e.store.root = append(e.store.root, ref{item: model.Item{ID: id, Name: name}})
	return id
}

// DeleteFolder removes a folder and promotes its contents to the root
// sequence at the folder's former position, preserving their order.
// Unknown folders are a no-op.
func (e *Engine) DeleteFolder(id model.FolderID) {
	f := e.store.folder(id)
	if f == nil {
		return
	}
	pos := e.store.rootIndexOfFolder(id)
	if pos < 0 {
		delete(e.store.folders, id)
		return
	}
	promoted := make([]ref, 0, len(f.Items))
	for _, it := range f.Items {
		promoted = append(promoted, ref{item: it})
	}
	rest := append([]ref{}, e.store.root[pos+1:]...)
	e.store.root = append(append(e.store.root[:pos], promoted...), rest...)
	delete(e.store.folders, id)
}

// DeleteItem removes an item wherever it lives. Unknown items are a
// no-op.
func (e *Engine) DeleteItem(id model.ItemID) {
	e.store.takeItem(id)
}

// RenameFolder sets a folder's name. Unknown folders are a no-op.
func (e *Engine) RenameFolder(id model.FolderID, name string) {
	e.store.updateFolder(id, func(f *model.Folder) { f.Name = name })
}

// RenameItem sets an item's name wherever it lives. Unknown items are a
// no-op.
func (e *Engine) RenameItem(id model.ItemID, name string) {
	loc, ok := e.store.findItem(id)
	if !ok {
		return
	}
	if loc.folder == "" {
		e.store.root[loc.index].item.Name = name
		return
	}
	e.store.updateFolder(loc.folder, func(f *model.Folder) {
		f.Items[loc.index].Name = name
	})
}

// MoveItemToFolder removes an item from its current owner and appends it
// to the given folder's contents. Unknown items or folders are a no-op.
func (e *Engine) MoveItemToFolder(id model.ItemID, folder model.FolderID) {
	if e.store.folder(folder) == nil {
		return
	}
	it, ok := e.store.takeItem(id)
	if !ok {
		return
	}
	e.store.updateFolder(folder, func(f *model.Folder) {
		f.Items = append(f.Items, it)
	})
}

// RemoveItemFromFolder ejects an item from its folder into the root
// sequence directly below that folder. Items already at root level are a
// no-op.
func (e *Engine) RemoveItemFromFolder(id model.ItemID) {
	loc, ok := e.store.findItem(id)
	if !ok || loc.folder == "" {
		return
	}
	pos := e.store.rootIndexOfFolder(loc.folder)
	it, _ := e.store.takeItem(id)
	e.store.insertItemAtRoot(it, pos+1)
}

// HandleDrag resolves and applies a drag from display index src to
// display index tgt. It reports whether the model changed; invalid drags
// leave the model untouched.
func (e *Engine) HandleDrag(src, tgt int) bool {
	op := resolve(&e.store, src, tgt, e.dropZones)
	return e.apply(op)
}

func (e *Engine) apply(op moveOp) bool {
	switch op.kind {
	case moveReorder:
		if op.ctx.isRoot() {
			e.store.root = moveWithin(e.store.root, op.from, op.to)
			return true
		}
		return e.store.updateFolder(op.ctx.folder, func(f *model.Folder) {
			f.Items = moveWithin(f.Items, op.from, op.to)
		})

	case moveFolderReorder:
		e.store.root = moveWithin(e.store.root, op.from, op.to)
		return true

	case moveTransfer:
		it, ok := e.store.takeItem(op.item)
		if !ok {
			return false
		}
		if op.toCtx.isRoot() {
			e.store.insertItemAtRoot(it, op.insertAt)
		} else {
			e.store.insertItemInFolder(it, op.toCtx.folder, op.insertAt)
		}
		return true
	}
	return false
}

// Audit verifies the structural invariants of the model and returns the
// first violation found, or nil.
func (e *Engine) Audit() error {
	return e.store.audit()
}

// Folders returns the folders in root sequence order.
func (e *Engine) Folders() []model.Folder {
	out := make([]model.Folder, 0, len(e.store.folders))
	for _, r := range e.store.root {
		if !r.isFolder() {
			continue
		}
		if f := e.store.folder(r.folder); f != nil {
			out = append(out, f.Clone())
		}
	}
	return out
}

// RootItems returns the items living directly in the root sequence, in
// order.
func (e *Engine) RootItems() []model.Item {
	var out []model.Item
	for _, r := range e.store.root {
		if !r.isFolder() {
			out = append(out, r.item)
		}
	}
	return out
}
