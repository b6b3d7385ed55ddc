// Package msgs defines shared message types for TUI view transitions.
package msgs

// View transition messages

// GoToProjectListMsg signals transition to the project list view.
type GoToProjectListMsg struct{}

// ProjectSelectedMsg is sent when a project is picked from the list.
type ProjectSelectedMsg struct {
	Folder string
}

// GoToDocumentMsg signals transition to the plan document editor.
type GoToDocumentMsg struct{}

// GoToBoardMsg signals transition back to the board view.
type GoToBoardMsg struct{}

// ProjectSavedMsg is sent after a mutation has been persisted.
type ProjectSavedMsg struct{}

// ErrorMsg carries a non-fatal error to display in the status bar.
type ErrorMsg struct {
	Err error
}
