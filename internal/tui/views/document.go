package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/savvywritesstuff/Zenith-Projects/internal/board"
	"github.com/savvywritesstuff/Zenith-Projects/internal/project"
	"github.com/savvywritesstuff/Zenith-Projects/internal/tui/components"
	"github.com/savvywritesstuff/Zenith-Projects/internal/tui/msgs"
	"github.com/savvywritesstuff/Zenith-Projects/internal/tui/styles"
)

// DocumentModel is the plan editor: a textarea over the raw document with a
// live preview of the tasks the current text parses into. Nothing is
// committed until the user leaves the editor.
type DocumentModel struct {
	proj   *project.Project
	folder string
	theme  board.Theme

	input   textarea.Model
	preview []board.Task

	width  int
	height int
}

// NewDocumentModel creates a document editor seeded with the project's
// current plan text.
func NewDocumentModel(p *project.Project, folder string, theme board.Theme) DocumentModel {
	input := textarea.New()
	input.Placeholder = "# Backlog\n## General\n- SubPhase, ID, Description, Priority"
	input.SetValue(p.PlanText)
	input.Focus()

	m := DocumentModel{
		proj:   p,
		folder: folder,
		theme:  theme,
		input:  input,
	}
	m.refreshPreview()
	return m
}

// refreshPreview reparses the edited text and reconciles it against the
// committed tasks, so half-typed lines show up with stable placeholder
// identities and existing sub-project links stay visible.
func (m *DocumentModel) refreshPreview() {
	m.preview = board.Merge(board.Parse(m.input.Value()), m.proj.Tasks)
}

// Init implements tea.Model.
func (m DocumentModel) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m DocumentModel) Update(msg tea.Msg) (DocumentModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.SetWidth(msg.Width * 2 / 3)
		m.input.SetHeight(msg.Height - 6)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			return m.commit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refreshPreview()
	return m, cmd
}

// commit runs the full sync path over the edited text and persists the
// project when anything changed. A failed save keeps the user in the
// editor so the text is not lost.
func (m DocumentModel) commit() (DocumentModel, tea.Cmd) {
	if m.proj.SyncText(m.input.Value(), m.theme) {
		if err := project.Save(m.folder, m.proj); err != nil {
			return m, errCmd(err)
		}
		_ = project.NewActivityLogger(m.folder).PlanSynced(m.proj.ID, len(m.proj.Tasks))
	}
	return m, func() tea.Msg { return msgs.GoToBoardMsg{} }
}

// View implements tea.Model.
func (m DocumentModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render(m.proj.Name + " / plan"))
	b.WriteString("\n")

	editor := m.input.View()
	summary := m.renderPreview()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, editor, "  ", summary))
	b.WriteString("\n")

	b.WriteString(components.NewStatusBar().Render(m.width, []string{
		"type to edit", "esc save and return",
	}))

	return b.String()
}

// renderPreview summarizes what the current text parses into.
func (m DocumentModel) renderPreview() string {
	counts := make(map[board.Status]int)
	drafts := 0
	for _, t := range m.preview {
		counts[t.Status]++
		if board.IsPlaceholderID(t.ID) {
			drafts++
		}
	}

	var b strings.Builder
	b.WriteString(styles.SubtleStyle.Render("Parsed tasks"))
	b.WriteString("\n")
	for _, status := range board.StatusOrder {
		if counts[status] == 0 {
			continue
		}
		fmt.Fprintf(&b, "%-12s %d\n", status, counts[status])
	}
	if drafts > 0 {
		fmt.Fprintf(&b, "\n%s\n", styles.SubtleStyle.Render(fmt.Sprintf("%d incomplete line(s)", drafts)))
	}
	return b.String()
}

// Preview exposes the live-parsed tasks for tests.
func (m DocumentModel) Preview() []board.Task {
	return m.preview
}
