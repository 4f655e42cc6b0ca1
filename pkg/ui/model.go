// Package ui hosts the interactive outline in a terminal.
package ui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"foldline/pkg/config"
	"foldline/pkg/model"
	"foldline/pkg/outline"
)

type mode int

const (
	modeBrowse mode = iota
	modeGrab
	modeInput
	modeHelp
)

type inputAction int

const (
	actionAddItem inputAction = iota
	actionAddFolder
	actionRename
)

// ReloadMsg asks the model to replace its contents from a fresh seed.
type ReloadMsg struct {
	Seed *config.Seed
}

// reloadErrMsg reports a failed seed reload; the outline keeps its
// current contents.
type reloadErrMsg struct{ err error }

type Model struct {
	engine *outline.Engine
	theme  Theme

	cursor int
	mode   mode

	// grab state
	grabSrc int
	target  int

	// input state
	input  textinput.Model
	action inputAction
	rename outline.Node // row being renamed

	status string
	width  int
	height int

	reload  func() (*config.Seed, error)
	changes <-chan struct{}
}

// Option configures a Model.
type Option func(*Model)

// WithLiveReload wires a change signal channel and the loader invoked on
// each signal.
func WithLiveReload(changes <-chan struct{}, load func() (*config.Seed, error)) Option {
	return func(m *Model) {
		m.changes = changes
		m.reload = load
	}
}

// NewModel builds the TUI around an engine that has already been
// initialized.
func NewModel(engine *outline.Engine, theme Theme, opts ...Option) Model {
	ti := textinput.New()
	ti.CharLimit = 120
	ti.Width = 40

	m := Model{
		engine: engine,
		theme:  theme,
		input:  ti,
		width:  80,
		height: 24,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	return m.waitForChange()
}

// waitForChange blocks on the change channel and turns each signal into
// a reload message.
func (m Model) waitForChange() tea.Cmd {
	changes, load := m.changes, m.reload
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		seed, err := load()
		if err != nil {
			return reloadErrMsg{err: err}
		}
		return ReloadMsg{Seed: seed}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ReloadMsg:
		items, folders := msg.Seed.Materialize()
		m.engine.Initialize(items, folders)
		m.clampCursor()
		m.mode = modeBrowse
		m.status = "reloaded from seed file"
		return m, m.waitForChange()

	case reloadErrMsg:
		m.status = fmt.Sprintf("reload failed: %v", msg.err)
		return m, m.waitForChange()

	case tea.KeyMsg:
		switch m.mode {
		case modeInput:
			return m.updateInput(msg)
		case modeHelp:
			return m.updateHelp(msg)
		case modeGrab:
			return m.updateGrab(msg)
		default:
			return m.updateBrowse(msg)
		}
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "j", "down":
		if m.cursor < m.engine.Len()-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "g":
		m.cursor = 0
	case "G":
		if n := m.engine.Len(); n > 0 {
			m.cursor = n - 1
		}

	case "enter", "o":
		if fn, ok := m.folderUnderCursor(); ok {
			m.engine.ToggleFolder(fn.Folder.ID)
		}
	case "E":
		m.engine.ExpandAll()
	case "C":
		m.engine.CollapseAll()
		m.clampCursor()

	case "m", " ":
		node, ok := m.engine.NodeAt(m.cursor)
		if !ok {
			break
		}
		if _, isDZ := node.(outline.DropZoneNode); isDZ {
			m.status = "drop zones cannot move"
			break
		}
		m.mode = modeGrab
		m.grabSrc = m.cursor
		m.target = m.cursor
		m.status = "carrying " + nodeName(node)

	case "a":
		return m.startInput(actionAddItem, "new item name"), textinput.Blink
	case "A":
		return m.startInput(actionAddFolder, "new folder name"), textinput.Blink
	case "r":
		node, ok := m.engine.NodeAt(m.cursor)
		if !ok {
			break
		}
		if _, isDZ := node.(outline.DropZoneNode); isDZ {
			break
		}
		m.rename = node
		next := m.startInput(actionRename, "rename")
		next.input.SetValue(nodeName(node))
		return next, textinput.Blink

	case "d":
		m.deleteUnderCursor()

	case "u":
		if it, ok := m.itemUnderCursor(); ok {
			m.engine.RemoveItemFromFolder(it.Item.ID)
			m.followNode(outline.ItemNode{Item: it.Item})
		}
	case "t":
		m.sendToNextFolder()

	case "z":
		m.engine.SetDropZones(!m.engine.DropZones())
		m.clampCursor()

	case "y":
		node, ok := m.engine.NodeAt(m.cursor)
		if !ok {
			break
		}
		if err := clipboard.WriteAll(nodeName(node)); err != nil {
			m.status = "clipboard unavailable"
		} else {
			m.status = "copied " + nodeName(node)
		}

	case "?":
		m.mode = modeHelp
	}
	return m, nil
}

func (m Model) updateGrab(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.target < m.engine.Len() {
			m.target++
		}
	case "k", "up":
		if m.target > 0 {
			m.target--
		}
	case "enter":
		if m.target == m.grabSrc {
			m.mode = modeBrowse
			m.cursor = m.grabSrc
			m.status = ""
			return m, nil
		}
		node, _ := m.engine.NodeAt(m.grabSrc)
		if m.engine.HandleDrag(m.grabSrc, m.target) {
			m.status = "moved " + nodeName(node)
			if node != nil {
				m.followNode(node)
			}
		} else {
			m.status = "cannot drop there"
			m.cursor = m.grabSrc
		}
		m.mode = modeBrowse
		m.clampCursor()
	case "esc", "q":
		m.mode = modeBrowse
		m.cursor = m.grabSrc
		m.status = "grab cancelled"
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.input.Blur()
		return m, nil
	case "enter":
		name := m.input.Value()
		m.mode = modeBrowse
		m.input.Blur()
		if name == "" {
			return m, nil
		}
		switch m.action {
		case actionAddItem:
			id := m.engine.AddItem(name)
			m.followNode(outline.ItemNode{Item: model.Item{ID: id}})
		case actionAddFolder:
			id := m.engine.AddFolder(name)
			m.followNode(outline.FolderNode{Folder: model.Folder{ID: id}})
		case actionRename:
			m.applyRename(name)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "?", "q", "enter":
		m.mode = modeBrowse
	}
	return m, nil
}

func (m Model) startInput(action inputAction, prompt string) Model {
	m.mode = modeInput
	m.action = action
	m.input.Placeholder = prompt
	m.input.SetValue("")
	m.input.Focus()
	return m
}

func (m *Model) applyRename(name string) {
	switch v := m.rename.(type) {
	case outline.ItemNode:
		m.engine.RenameItem(v.Item.ID, name)
	case outline.FolderNode:
		m.engine.RenameFolder(v.Folder.ID, name)
	}
	m.rename = nil
}

func (m *Model) deleteUnderCursor() {
	node, ok := m.engine.NodeAt(m.cursor)
	if !ok {
		return
	}
	switch v := node.(type) {
	case outline.ItemNode:
		m.engine.DeleteItem(v.Item.ID)
		m.status = "deleted " + v.Item.Name
	case outline.FolderNode:
		m.engine.DeleteFolder(v.Folder.ID)
		m.status = "deleted folder " + v.Folder.Name + ", items kept"
	}
	m.clampCursor()
}

// sendToNextFolder moves the item under the cursor into the folder after
// its current container, cycling around the folder list.
func (m *Model) sendToNextFolder() {
	it, ok := m.itemUnderCursor()
	if !ok {
		return
	}
	folders := m.engine.Folders()
	if len(folders) == 0 {
		m.status = "no folders"
		return
	}
	owner := -1
	for i, f := range folders {
		for _, fi := range f.Items {
			if fi.ID == it.Item.ID {
				owner = i
			}
		}
	}
	dest := folders[(owner+1)%len(folders)]
	if owner >= 0 && len(folders) == 1 {
		m.status = "no other folder"
		return
	}
	m.engine.MoveItemToFolder(it.Item.ID, dest.ID)
	m.status = "moved into " + dest.Name
	m.followNode(outline.ItemNode{Item: it.Item})
}

func (m *Model) folderUnderCursor() (outline.FolderNode, bool) {
	node, ok := m.engine.NodeAt(m.cursor)
	if !ok {
		return outline.FolderNode{}, false
	}
	fn, ok := node.(outline.FolderNode)
	return fn, ok
}

func (m *Model) itemUnderCursor() (outline.ItemNode, bool) {
	node, ok := m.engine.NodeAt(m.cursor)
	if !ok {
		return outline.ItemNode{}, false
	}
	in, ok := node.(outline.ItemNode)
	return in, ok
}

// followNode moves the cursor to the row now holding the given node, if
// it is still visible.
func (m *Model) followNode(n outline.Node) {
	key := outline.NodeKey(n)
	for i, cand := range m.engine.DisplayList() {
		if outline.NodeKey(cand) == key {
			m.cursor = i
			return
		}
	}
	m.clampCursor()
}

func (m *Model) clampCursor() {
	if n := m.engine.Len(); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func nodeName(n outline.Node) string {
	switch v := n.(type) {
	case outline.ItemNode:
		return v.Item.Name
	case outline.FolderNode:
		return v.Folder.Name
	case outline.DropZoneNode:
		return "drop zone"
	}
	return ""
}

// Run starts the program on the alternate screen.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
