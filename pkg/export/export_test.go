package export

import (
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	"foldline/pkg/model"
	"foldline/pkg/outline"
)

func testNodes(dropZones bool) []outline.Node {
	e := outline.New(outline.WithDropZones(dropZones))
	e.Initialize(
		[]model.Item{{ID: "a", Name: "Alpha"}},
		[]model.Folder{
			{ID: "F", Name: "Open", Expanded: true, Items: []model.Item{
				{ID: "f1", Name: "Inner"},
			}},
			{ID: "G", Name: "Closed", Items: []model.Item{
				{ID: "g1", Name: "Hidden"},
			}},
		},
	)
	return e.DisplayList()
}

func TestBuildSnapshot(t *testing.T) {
	snap := BuildSnapshot(testNodes(true))
	if snap.Total != 6 || len(snap.Rows) != 6 {
		t.Fatalf("snapshot has %d rows, want 6", len(snap.Rows))
	}
	wantKinds := []string{"item", "folder", "item", "dropzone", "folder", "dropzone"}
	for i, k := range wantKinds {
		if snap.Rows[i].Kind != k {
			t.Errorf("row %d kind = %q, want %q", i, snap.Rows[i].Kind, k)
		}
		if snap.Rows[i].Index != i {
			t.Errorf("row %d index = %d", i, snap.Rows[i].Index)
		}
	}
	if !snap.Rows[2].Nested {
		t.Error("folder content row should be nested")
	}
	if snap.Rows[4].Count != 1 || snap.Rows[4].Expanded {
		t.Errorf("collapsed folder row = %+v", snap.Rows[4])
	}
}

func TestWriteJSON(t *testing.T) {
	var buf strings.Builder
	if err := WriteJSON(&buf, testNodes(false)); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	var snap Snapshot
	if err := json.Unmarshal([]byte(buf.String()), &snap); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if snap.Total != 4 {
		t.Errorf("total = %d, want 4", snap.Total)
	}
}

func TestWriteMarkdown(t *testing.T) {
	var buf strings.Builder
	if err := WriteMarkdown(&buf, "Outline", testNodes(true)); err != nil {
		t.Fatalf("WriteMarkdown: %v", err)
	}
	got := buf.String()
	for _, want := range []string{
		"# Outline",
		"- Alpha",
		"- **Open**",
		"  - Inner",
		"- **Closed** (1)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("markdown missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "dropzone") || strings.Contains(got, "Hidden") {
		t.Errorf("markdown leaked hidden rows:\n%s", got)
	}
}
