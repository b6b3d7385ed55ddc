// Package cli implements the zenith command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/savvywritesstuff/Zenith-Projects/internal/board"
	"github.com/savvywritesstuff/Zenith-Projects/internal/config"
	"github.com/savvywritesstuff/Zenith-Projects/internal/project"
	"github.com/savvywritesstuff/Zenith-Projects/internal/version"
)

var rootCmd = &cobra.Command{
	Use:     "zenith",
	Short:   "Plan-driven kanban project tracker",
	Long:    `Zenith keeps a plain-text implementation plan and a kanban board in sync. Edit the plan and the board follows; move a card and the plan is rewritten.`,
	Version: version.Version,
}

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(taskCmd)
	rootCmd.AddCommand(planCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// IsInitialized reports whether the current directory has a .zenith workspace.
func IsInitialized() bool {
	info, err := os.Stat(project.WorkDir())
	return err == nil && info.IsDir()
}

// activeTheme loads the configured theme, falling back to defaults when the
// workspace has no config.
func activeTheme() board.Theme {
	cfg, err := config.Load(project.WorkDir())
	if err != nil {
		return config.Default().ActiveTheme()
	}
	return cfg.ActiveTheme()
}

// withProjectLock guards a mutate-save cycle against concurrent writers on
// the same project folder.
func withProjectLock(folder string, fn func() error) error {
	lock := project.NewLock(folder)
	if err := lock.Acquire(); err != nil {
		return err
	}
	defer lock.Release()
	return fn()
}

// resolveProject loads a project by name. When name is empty and exactly one
// project exists, that project is used.
func resolveProject(name string) (*project.Project, string, error) {
	if name != "" {
		folder, err := project.FindProjectFolder(name)
		if err != nil {
			return nil, "", err
		}
		p, err := project.Load(folder)
		return p, folder, err
	}

	folders, err := project.ListProjectFolders()
	if err != nil {
		return nil, "", err
	}
	switch len(folders) {
	case 0:
		return nil, "", fmt.Errorf("no projects found. Run 'zenith project create <name>' first")
	case 1:
		p, err := project.Load(folders[0])
		return p, folders[0], err
	default:
		return nil, "", fmt.Errorf("multiple projects exist; pass --project to pick one")
	}
}
