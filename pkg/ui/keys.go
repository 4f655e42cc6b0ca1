package ui

// footerHints is the always-visible key reminder. The full reference
// lives in the help overlay.
func footerHints(grabbing bool) string {
	if grabbing {
		return "j/k position • enter drop • esc cancel"
	}
	return "j/k move • enter toggle • m grab • a/A add • r rename • d delete • ? help • q quit"
}

// helpText is the markdown source of the help overlay.
const helpText = `# Keys

## Navigate

| Key | Action |
|-----|--------|
| j / down | Move cursor down |
| k / up | Move cursor up |
| g / G | Jump to top / bottom |
| enter / o | Toggle folder open or closed |
| E / C | Expand or collapse every folder |

## Rearrange

| Key | Action |
|-----|--------|
| m / space | Grab the row under the cursor |
| j / k | Carry the grabbed row to a new position |
| enter | Drop the grabbed row |
| esc | Cancel the grab |
| u | Pull the item out of its folder |
| t | Send the item to the next folder |
| z | Toggle drop zones |

Dropping an item on a collapsed folder puts it inside. Dropping it on
its own drop zone pulls it out, just below the folder.

## Edit

| Key | Action |
|-----|--------|
| a | Add an item |
| A | Add a folder |
| r | Rename the row under the cursor |
| d | Delete the row under the cursor |
| y | Copy the row's name to the clipboard |

Deleting a folder keeps its items: they move to the top level in place.

Press esc or ? to close this help.
`
