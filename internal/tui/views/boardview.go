package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/savvywritesstuff/Zenith-Projects/internal/board"
	"github.com/savvywritesstuff/Zenith-Projects/internal/project"
	"github.com/savvywritesstuff/Zenith-Projects/internal/tui/components"
	"github.com/savvywritesstuff/Zenith-Projects/internal/tui/msgs"
	"github.com/savvywritesstuff/Zenith-Projects/internal/tui/styles"
)

// BoardModel renders a project as a kanban board: one column per status in
// canonical order, cards grouped by phase with the project's label colors.
type BoardModel struct {
	proj   *project.Project
	folder string
	theme  board.Theme

	column int // index into board.StatusOrder
	cursor int // card index within the current column

	width  int
	height int
}

// errCmd wraps a mutation failure for the app model to display.
func errCmd(err error) tea.Cmd {
	return func() tea.Msg { return msgs.ErrorMsg{Err: err} }
}

// savedCmd announces a persisted mutation; the app model clears any
// stale error banner on it.
func savedCmd() tea.Msg {
	return msgs.ProjectSavedMsg{}
}

// NewBoardModel creates a board view over a loaded project.
func NewBoardModel(p *project.Project, folder string, theme board.Theme) BoardModel {
	return BoardModel{proj: p, folder: folder, theme: theme}
}

// columnTasks returns the tasks of one status column in document order.
func (m BoardModel) columnTasks(status board.Status) []board.Task {
	var tasks []board.Task
	for _, t := range m.proj.Tasks {
		if t.Status == status {
			tasks = append(tasks, t)
		}
	}
	return tasks
}

func (m BoardModel) currentColumn() []board.Task {
	return m.columnTasks(board.StatusOrder[m.column])
}

// clampCursor keeps the cursor inside the current column after a mutation.
func (m *BoardModel) clampCursor() {
	n := len(m.currentColumn())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Init implements tea.Model.
func (m BoardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m BoardModel) Update(msg tea.Msg) (BoardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			return m, func() tea.Msg { return msgs.GoToProjectListMsg{} }
		case "e":
			return m, func() tea.Msg { return msgs.GoToDocumentMsg{} }
		case "left", "h":
			if m.column > 0 {
				m.column--
				m.clampCursor()
			}
		case "right", "l":
			if m.column < len(board.StatusOrder)-1 {
				m.column++
				m.clampCursor()
			}
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.currentColumn())-1 {
				m.cursor++
			}
		case "shift+left", "H":
			return m.moveSelected(-1)
		case "shift+right", "L":
			return m.moveSelected(1)
		case "d":
			return m.deleteSelected()
		}
	}
	return m, nil
}

// moveSelected drags the card under the cursor one column left or right.
// The mutation regenerates the plan document and is persisted immediately.
func (m BoardModel) moveSelected(delta int) (BoardModel, tea.Cmd) {
	tasks := m.currentColumn()
	if m.cursor >= len(tasks) {
		return m, nil
	}

	target := m.column + delta
	if target < 0 || target >= len(board.StatusOrder) {
		return m, nil
	}

	id := tasks[m.cursor].ID
	from := board.StatusOrder[m.column]
	to := board.StatusOrder[target]

	if err := m.proj.MoveTask(id, to, m.theme); err != nil {
		return m, errCmd(err)
	}
	if err := project.Save(m.folder, m.proj); err != nil {
		return m, errCmd(err)
	}
	_ = project.NewActivityLogger(m.folder).TaskMoved(id, string(from), string(to))

	// Follow the card into its new column.
	m.column = target
	m.cursor = len(m.currentColumn()) - 1
	return m, savedCmd
}

// deleteSelected removes the card under the cursor.
func (m BoardModel) deleteSelected() (BoardModel, tea.Cmd) {
	tasks := m.currentColumn()
	if m.cursor >= len(tasks) {
		return m, nil
	}

	id := tasks[m.cursor].ID
	if err := m.proj.DeleteTask(id, m.theme); err != nil {
		return m, errCmd(err)
	}
	if err := project.Save(m.folder, m.proj); err != nil {
		return m, errCmd(err)
	}
	_ = project.NewActivityLogger(m.folder).TaskDeleted(id)

	m.clampCursor()
	return m, savedCmd
}

// View implements tea.Model.
func (m BoardModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render(m.proj.Name))
	b.WriteString("\n")

	colWidth := 24
	if m.width > 0 {
		if w := m.width/len(board.StatusOrder) - 3; w > 12 {
			colWidth = w
		}
	}

	columns := make([]string, 0, len(board.StatusOrder))
	for i, status := range board.StatusOrder {
		columns = append(columns, m.renderColumn(i, status, colWidth))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, columns...))
	b.WriteString("\n")

	b.WriteString(components.NewStatusBar().Render(m.width, []string{
		"h/l column", "j/k card", "H/L move card", "d delete", "e edit plan", "esc back",
	}))

	return b.String()
}

func (m BoardModel) renderColumn(index int, status board.Status, width int) string {
	tasks := m.columnTasks(status)

	title := fmt.Sprintf("%s (%d)", status, len(tasks))
	var b strings.Builder
	b.WriteString(styles.ColumnTitleStyle.Render(title))
	b.WriteString("\n")

	lastPhase := ""
	for i, t := range tasks {
		if t.Phase != lastPhase {
			b.WriteString(styles.PhaseLabel(t.Phase, m.proj.PhaseColors[t.Phase]))
			b.WriteString("\n")
			lastPhase = t.Phase
		}

		card := t.ID
		if t.SubPhase != "" {
			card = styles.PhaseLabel(t.SubPhase, m.proj.SubPhaseColors[t.SubPhase]) + " " + t.ID
		}
		if t.SubProjectID != "" {
			card += " *"
		}
		if index == m.column && i == m.cursor {
			b.WriteString(styles.SelectedCardStyle.Render(card))
		} else {
			b.WriteString(styles.CardStyle.Render(card))
		}
		b.WriteString("\n")
	}

	return styles.ColumnStyle.Width(width).Render(b.String())
}
