package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/savvywritesstuff/Zenith-Projects/internal/board"
	"github.com/savvywritesstuff/Zenith-Projects/internal/project"
	"github.com/savvywritesstuff/Zenith-Projects/internal/tui/components"
	"github.com/savvywritesstuff/Zenith-Projects/internal/tui/msgs"
	"github.com/savvywritesstuff/Zenith-Projects/internal/tui/styles"
)

// ProjectSummary contains summary information about a project for display.
type ProjectSummary struct {
	Folder    string
	ID        string
	Name      string
	TaskCount int
	Done      int
	SubOf     string // parent project id, if any
}

// ProjectListModel is the model for the project selection view.
type ProjectListModel struct {
	projects []ProjectSummary
	cursor   int
	width    int
	height   int
}

// NewProjectListModel creates a new ProjectListModel and loads the stored
// projects.
func NewProjectListModel() ProjectListModel {
	m := ProjectListModel{}
	m.projects = loadProjects()
	return m
}

// loadProjects reads summaries from .zenith/projects/*/project.json files.
func loadProjects() []ProjectSummary {
	var summaries []ProjectSummary

	folders, err := project.ListProjectFolders()
	if err != nil {
		return summaries
	}

	for _, folder := range folders {
		p, err := project.Load(folder)
		if err != nil {
			continue
		}

		summaries = append(summaries, ProjectSummary{
			Folder:    folder,
			ID:        p.ID,
			Name:      p.Name,
			TaskCount: len(p.Tasks),
			Done:      p.CountByStatus()[board.StatusDone],
			SubOf:     p.ParentID,
		})
	}

	return summaries
}

// Init implements tea.Model.
func (m ProjectListModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ProjectListModel) Update(msg tea.Msg) (ProjectListModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if len(m.projects) == 0 {
			if msg.String() == "q" || msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			return m, nil
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.projects)-1 {
				m.cursor++
			}
		case "enter":
			folder := m.projects[m.cursor].Folder
			return m, func() tea.Msg { return msgs.ProjectSelectedMsg{Folder: folder} }
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m ProjectListModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Projects"))
	b.WriteString("\n\n")

	if len(m.projects) == 0 {
		b.WriteString(styles.SubtleStyle.Render("No projects yet. Run 'zenith project create <name>' first."))
		b.WriteString("\n")
	}

	for i, p := range m.projects {
		line := fmt.Sprintf("%-24s %d/%d done", p.Name, p.Done, p.TaskCount)
		if p.SubOf != "" {
			line += styles.SubtleStyle.Render("  (sub-project)")
		}
		if i == m.cursor {
			b.WriteString(styles.SelectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(components.NewStatusBar().Render(m.width, []string{
		"j/k navigate", "enter open", "q quit",
	}))

	return b.String()
}

// Cursor returns the current cursor position.
func (m ProjectListModel) Cursor() int {
	return m.cursor
}

// Projects returns the loaded project summaries.
func (m ProjectListModel) Projects() []ProjectSummary {
	return m.projects
}
