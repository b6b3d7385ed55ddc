package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/savvywritesstuff/Zenith-Projects/internal/config"
	"github.com/savvywritesstuff/Zenith-Projects/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize Zenith in the current directory",
	Long:  "Creates a .zenith/ folder to store projects and configuration.",
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	if IsInitialized() {
		return fmt.Errorf("zenith is already initialized in this directory")
	}

	dirs := []string{
		project.WorkDir(),
		filepath.Join(project.WorkDir(), "projects"),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	if err := config.Save(project.WorkDir(), config.Default()); err != nil {
		return err
	}

	fmt.Println("Initialized Zenith in", project.WorkDir())
	fmt.Println("\nNext steps:")
	fmt.Println("  1. Run: zenith project create <name>")
	fmt.Println("  2. Run: zenith (opens the board)")
	return nil
}
