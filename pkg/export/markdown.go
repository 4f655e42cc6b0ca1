package export

import (
	"fmt"
	"io"
	"strings"

	"foldline/pkg/outline"
)

// WriteMarkdown renders the display list as a nested markdown bullet
// list. Collapsed folders show their content count; drop zone sentinels
// are omitted.
func WriteMarkdown(w io.Writer, title string, nodes []outline.Node) error {
	var b strings.Builder
	if title != "" {
		fmt.Fprintf(&b, "# %s\n\n", title)
	}
	for _, n := range nodes {
		switch v := n.(type) {
		case outline.ItemNode:
			if v.Nested {
				fmt.Fprintf(&b, "  - %s\n", v.Item.Name)
			} else {
				fmt.Fprintf(&b, "- %s\n", v.Item.Name)
			}
		case outline.FolderNode:
			if v.Folder.Expanded {
				fmt.Fprintf(&b, "- **%s**\n", v.Folder.Name)
			} else {
				fmt.Fprintf(&b, "- **%s** (%d)\n", v.Folder.Name, len(v.Folder.Items))
			}
		case outline.DropZoneNode:
			// not a document row
		}
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}
