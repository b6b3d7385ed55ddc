// Package tui implements the interactive board application.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/savvywritesstuff/Zenith-Projects/internal/board"
	"github.com/savvywritesstuff/Zenith-Projects/internal/config"
	"github.com/savvywritesstuff/Zenith-Projects/internal/project"
	"github.com/savvywritesstuff/Zenith-Projects/internal/tui/msgs"
	"github.com/savvywritesstuff/Zenith-Projects/internal/tui/styles"
	"github.com/savvywritesstuff/Zenith-Projects/internal/tui/views"
)

// View represents the different screens in the TUI.
type View int

const (
	ViewProjectList View = iota
	ViewBoard
	ViewDocument
)

// Model is the main Bubble Tea model that orchestrates all views.
type Model struct {
	currentView View
	width       int
	height      int

	projectList views.ProjectListModel
	boardView   views.BoardModel
	document    views.DocumentModel

	// Shared state
	proj   *project.Project
	folder string
	theme  board.Theme
	lock   *project.Lock // held while a project is open; stale locks self-heal
	err    error
}

// Run starts the TUI application.
func Run() error {
	p := tea.NewProgram(
		initialModel(),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

func initialModel() Model {
	theme := config.Default().ActiveTheme()
	if cfg, err := config.Load(project.WorkDir()); err == nil {
		theme = cfg.ActiveTheme()
	}

	return Model{
		currentView: ViewProjectList,
		projectList: views.NewProjectListModel(),
		theme:       theme,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Fall through to the active view so it can resize too.

	case tea.KeyMsg:
		// Any keypress dismisses the error banner.
		m.err = nil
		// Fall through so the active view still sees the key.

	case msgs.ErrorMsg:
		m.err = msg.Err
		return m, nil

	case msgs.ProjectSavedMsg:
		m.err = nil
		return m, nil

	case msgs.ProjectSelectedMsg:
		lock := project.NewLock(msg.Folder)
		if err := lock.Acquire(); err != nil {
			m.err = err
			return m, nil
		}
		p, err := project.Load(msg.Folder)
		if err != nil {
			lock.Release()
			m.err = err
			return m, nil
		}
		m.proj = p
		m.folder = msg.Folder
		m.lock = lock
		m.boardView = views.NewBoardModel(m.proj, m.folder, m.theme)
		m.currentView = ViewBoard
		return m.propagateSize()

	case msgs.GoToDocumentMsg:
		m.document = views.NewDocumentModel(m.proj, m.folder, m.theme)
		m.currentView = ViewDocument
		return m.propagateSize()

	case msgs.GoToBoardMsg:
		m.boardView = views.NewBoardModel(m.proj, m.folder, m.theme)
		m.currentView = ViewBoard
		return m.propagateSize()

	case msgs.GoToProjectListMsg:
		if m.lock != nil {
			m.lock.Release()
			m.lock = nil
		}
		m.projectList = views.NewProjectListModel()
		m.currentView = ViewProjectList
		return m.propagateSize()
	}

	var cmd tea.Cmd
	switch m.currentView {
	case ViewProjectList:
		m.projectList, cmd = m.projectList.Update(msg)
	case ViewBoard:
		m.boardView, cmd = m.boardView.Update(msg)
	case ViewDocument:
		m.document, cmd = m.document.Update(msg)
	}
	return m, cmd
}

// propagateSize forwards the last known window size to the view that just
// became active.
func (m Model) propagateSize() (tea.Model, tea.Cmd) {
	if m.width == 0 && m.height == 0 {
		return m, nil
	}
	return m.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
}

// View implements tea.Model.
func (m Model) View() string {
	var view string
	switch m.currentView {
	case ViewBoard:
		view = m.boardView.View()
	case ViewDocument:
		view = m.document.View()
	default:
		view = m.projectList.View()
	}

	if m.err != nil {
		return styles.ErrorStyle.Render("Error: "+m.err.Error()) + "\n" + view
	}
	return view
}
