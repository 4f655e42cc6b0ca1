package outline

import (
	"sort"
	"testing"

	"pgregory.net/rapid"

	"foldline/pkg/model"
)

// itemSet collects every item ID the engine currently owns, sorted.
func itemSet(e *Engine) []string {
	var out []string
	for _, it := range e.RootItems() {
		out = append(out, string(it.ID))
	}
	for _, f := range e.Folders() {
		for _, it := range f.Items {
			out = append(out, string(it.ID))
		}
	}
	sort.Strings(out)
	return out
}

func equalSets(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func genEngine(t *rapid.T) *Engine {
	dz := rapid.Bool().Draw(t, "dropZones")
	e := New(WithDropZones(dz))

	nRoot := rapid.IntRange(0, 5).Draw(t, "rootItems")
	items := make([]model.Item, nRoot)
	for i := range items {
		items[i] = model.Item{Name: "loose"}
	}

	nFolders := rapid.IntRange(0, 4).Draw(t, "folders")
	folders := make([]model.Folder, nFolders)
	for i := range folders {
		n := rapid.IntRange(0, 4).Draw(t, "folderItems")
		contents := make([]model.Item, n)
		for j := range contents {
			contents[j] = model.Item{Name: "inner"}
		}
		folders[i] = model.Folder{
			Name:     "box",
			Expanded: rapid.Bool().Draw(t, "expanded"),
			Items:    contents,
		}
	}
	e.Initialize(items, folders)
	return e
}

func TestDragNeverBreaksInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		e := genEngine(t)
		before := itemSet(e)

		steps := rapid.IntRange(1, 30).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			n := e.Len()
			src := rapid.IntRange(-1, n+1).Draw(t, "src")
			tgt := rapid.IntRange(-1, n+1).Draw(t, "tgt")
			e.HandleDrag(src, tgt)
			if err := e.Audit(); err != nil {
				t.Fatalf("audit after drag %d -> %d: %v", src, tgt, err)
			}
		}
		if got := itemSet(e); !equalSets(got, before) {
			t.Fatalf("drags changed the item set: %v -> %v", before, got)
		}
	})
}

func TestToggleRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		e := genEngine(t)
		before := keys(e)
		for _, f := range e.Folders() {
			e.ToggleFolder(f.ID)
			e.ToggleFolder(f.ID)
		}
		assertKeysRapid(t, e, before)
	})
}

func TestDropZonesNeverMove(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		e := genEngine(t)
		e.SetDropZones(true)
		n := e.Len()
		if n == 0 {
			return
		}
		src := rapid.IntRange(0, n-1).Draw(t, "src")
		node, ok := e.NodeAt(src)
		if !ok {
			t.Fatalf("no node at %d", src)
		}
		if _, isDZ := node.(DropZoneNode); !isDZ {
			return
		}
		tgt := rapid.IntRange(0, n).Draw(t, "tgt")
		if e.HandleDrag(src, tgt) {
			t.Fatalf("drop zone at %d was dragged to %d", src, tgt)
		}
	})
}

func TestMutationsKeepModelConsistent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		e := genEngine(t)
		steps := rapid.IntRange(1, 25).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			switch rapid.IntRange(0, 6).Draw(t, "op") {
			case 0:
				e.AddItem("added")
			case 1:
				e.AddFolder("added")
			case 2:
				if fs := e.Folders(); len(fs) > 0 {
					idx := rapid.IntRange(0, len(fs)-1).Draw(t, "folder")
					e.ToggleFolder(fs[idx].ID)
				}
			case 3:
				if fs := e.Folders(); len(fs) > 0 {
					idx := rapid.IntRange(0, len(fs)-1).Draw(t, "folder")
					e.DeleteFolder(fs[idx].ID)
				}
			case 4:
				if ids := itemSet(e); len(ids) > 0 {
					idx := rapid.IntRange(0, len(ids)-1).Draw(t, "item")
					e.DeleteItem(model.ItemID(ids[idx]))
				}
			case 5:
				ids := itemSet(e)
				fs := e.Folders()
				if len(ids) > 0 && len(fs) > 0 {
					i := rapid.IntRange(0, len(ids)-1).Draw(t, "item")
					f := rapid.IntRange(0, len(fs)-1).Draw(t, "folder")
					e.MoveItemToFolder(model.ItemID(ids[i]), fs[f].ID)
				}
			case 6:
				if ids := itemSet(e); len(ids) > 0 {
					idx := rapid.IntRange(0, len(ids)-1).Draw(t, "item")
					e.RemoveItemFromFolder(model.ItemID(ids[idx]))
				}
			}
			if err := e.Audit(); err != nil {
				t.Fatalf("audit after step %d: %v", i, err)
			}
		}
	})
}

func assertKeysRapid(t *rapid.T, e *Engine, want []string) {
	t.Helper()
	got := keys(e)
	if len(got) != len(want) {
		t.Fatalf("display list = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("display list = %v, want %v", got, want)
		}
	}
}
