package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"todotree.dev/todotree/internal/engine"
	"todotree.dev/todotree/internal/runtime"
	"todotree.dev/todotree/internal/utils"
)

// browseMode selects which key handler and overlay are active
type browseMode int

const (
	modeBrowse browseMode = iota
	modeInsertRoot
	modeInsertChild
	modeConfirmDelete
	modePickParent
)

// row is one visible line of the flattened forest
type row struct {
	id    engine.NodeID
	depth int
}

type browserStyles struct {
	headerStyle lipgloss.Style
	cursorStyle lipgloss.Style
	doneStyle   lipgloss.Style
	idStyle     lipgloss.Style
	dimStyle    lipgloss.Style
	statusStyle lipgloss.Style
	helpStyle   lipgloss.Style
}

type browserModel struct {
	ctx    *runtime.Context
	rows   []row
	cursor int
	mode   browseMode
	input  textinput.Model
	status string

	// move state: the node being reparented and its subtree (invalid targets)
	moveSrc     engine.NodeID
	moveSubtree []engine.NodeID

	// delete state: descendant count shown in the confirm prompt
	deleteCount int

	styles browserStyles
}

func newBrowserModel(ctx *runtime.Context) browserModel {
	ti := textinput.New()
	ti.Placeholder = "title"
	ti.CharLimit = 200

	m := browserModel{
		ctx:   ctx,
		input: ti,
		styles: browserStyles{
			headerStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
			cursorStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
			doneStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Strikethrough(true),
			idStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			dimStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			statusStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
			helpStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		},
	}
	m.refreshRows()
	return m
}

// refreshRows flattens the forest in display order
func (m *browserModel) refreshRows() {
	m.rows = m.rows[:0]
	for _, rootID := range m.ctx.Engine.Roots() {
		m.appendRows(rootID, 0)
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *browserModel) appendRows(id engine.NodeID, depth int) {
	info, err := m.ctx.Engine.Get(id)
	if err != nil {
		return
	}
	m.rows = append(m.rows, row{id: id, depth: depth})
	for _, childID := range info.ChildIDs {
		m.appendRows(childID, depth+1)
	}
}

func (m browserModel) selected() (engine.NodeID, bool) {
	if len(m.rows) == 0 || m.cursor < 0 || m.cursor >= len(m.rows) {
		return engine.NoNode, false
	}
	return m.rows[m.cursor].id, true
}

func (m browserModel) Init() tea.Cmd {
	return nil
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.mode {
	case modeInsertRoot, modeInsertChild:
		return m.updateInsert(keyMsg)
	case modeConfirmDelete:
		return m.updateConfirmDelete(keyMsg)
	case modePickParent:
		return m.updatePickParent(keyMsg)
	default:
		return m.updateBrowse(keyMsg)
	}
}

func (m browserModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}

	case " ":
		if id, ok := m.selected(); ok {
			if err := m.ctx.Engine.Toggle(id); err != nil {
				m.status = err.Error()
			} else {
				m.status = ""
			}
			m.refreshRows()
		}

	case "r":
		m.mode = modeInsertRoot
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink

	case "a":
		if _, ok := m.selected(); ok {
			m.mode = modeInsertChild
			m.input.SetValue("")
			m.input.Focus()
			return m, textinput.Blink
		}
		m.status = "nothing selected"

	case "d":
		if id, ok := m.selected(); ok {
			descendants, err := m.ctx.Engine.Descendants(id)
			if err != nil {
				m.status = err.Error()
				break
			}
			m.deleteCount = len(descendants)
			m.mode = modeConfirmDelete
		}

	case "m":
		if id, ok := m.selected(); ok {
			descendants, err := m.ctx.Engine.Descendants(id)
			if err != nil {
				m.status = err.Error()
				break
			}
			m.moveSrc = id
			m.moveSubtree = append([]engine.NodeID{id}, descendants...)
			m.mode = modePickParent
			m.status = ""
		}
	}

	return m, nil
}

func (m browserModel) updateInsert(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		title := m.input.Value()
		if err := utils.ValidateTitle(title); err != nil {
			m.status = "title must not be empty"
			return m, nil
		}

		if m.mode == modeInsertRoot {
			id := m.ctx.Engine.AddRoot(title)
			m.status = fmt.Sprintf("created root %d", id)
		} else if parentID, ok := m.selected(); ok {
			id, err := m.ctx.Engine.AddChild(parentID, title)
			if err != nil {
				m.status = err.Error()
			} else {
				m.status = fmt.Sprintf("created node %d", id)
			}
		}

		m.mode = modeBrowse
		m.input.Blur()
		m.refreshRows()
		return m, nil

	case tea.KeyEsc, tea.KeyCtrlC:
		m.mode = modeBrowse
		m.input.Blur()
		m.status = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m browserModel) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if id, ok := m.selected(); ok {
			if err := m.ctx.Engine.Delete(id); err != nil {
				m.status = err.Error()
			} else {
				m.status = fmt.Sprintf("deleted node %d", id)
			}
		}
		m.mode = modeBrowse
		m.refreshRows()
	case "n", "N", "esc", "ctrl+c":
		m.mode = modeBrowse
		m.status = ""
	}
	return m, nil
}

func (m browserModel) updatePickParent(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case "enter":
		if target, ok := m.selected(); ok {
			if err := m.ctx.Engine.Move(m.moveSrc, target); err != nil {
				m.status = err.Error()
			} else {
				m.status = fmt.Sprintf("moved node %d under %d", m.moveSrc, target)
				m.mode = modeBrowse
				m.moveSubtree = nil
			}
			m.refreshRows()
		}
	case "esc", "ctrl+c", "q":
		m.mode = modeBrowse
		m.moveSubtree = nil
		m.status = ""
	}
	return m, nil
}

func (m browserModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.headerStyle.Render("todotree"))
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString(m.styles.dimStyle.Render("  (empty, press r to create a root task)"))
		b.WriteString("\n")
	}

	for i, r := range m.rows {
		info, err := m.ctx.Engine.Get(r.id)
		if err != nil {
			continue
		}

		marker := " "
		if info.Done {
			marker = "x"
		}

		line := fmt.Sprintf("[%s] %s", marker, info.Title)
		if info.Done {
			line = m.styles.doneStyle.Render(line)
		}
		line += m.styles.idStyle.Render(fmt.Sprintf(" (id: %d)", info.ID))

		// While picking a move target, everything inside the moving
		// subtree is an invalid destination
		if m.mode == modePickParent && utils.ContainsID(m.moveSubtree, r.id) {
			line = m.styles.dimStyle.Render(fmt.Sprintf("[%s] %s (id: %d)", marker, info.Title, info.ID))
		}

		prefix := "  "
		if i == m.cursor {
			prefix = m.styles.cursorStyle.Render("> ")
		}

		b.WriteString(strings.Repeat("  ", r.depth))
		b.WriteString(prefix)
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")

	switch m.mode {
	case modeInsertRoot:
		b.WriteString("New root: " + m.input.View() + "\n")
	case modeInsertChild:
		b.WriteString("New child: " + m.input.View() + "\n")
	case modeConfirmDelete:
		if id, ok := m.selected(); ok {
			if m.deleteCount > 0 {
				b.WriteString(m.styles.statusStyle.Render(
					fmt.Sprintf("Delete node %d and its %d descendants? (y/n)", id, m.deleteCount)))
			} else {
				b.WriteString(m.styles.statusStyle.Render(
					fmt.Sprintf("Delete node %d? (y/n)", id)))
			}
			b.WriteString("\n")
		}
	case modePickParent:
		b.WriteString(m.styles.statusStyle.Render(
			fmt.Sprintf("Pick a new parent for node %d (enter to move, esc to cancel)", m.moveSrc)))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(m.styles.statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.helpStyle.Render(
		"↑/↓ move · space toggle · r root · a child · d delete · m move · q quit"))
	b.WriteString("\n")

	return b.String()
}
