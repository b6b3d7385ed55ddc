package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/savvywritesstuff/Zenith-Projects/internal/board"
	"github.com/savvywritesstuff/Zenith-Projects/internal/project"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Work with the plan document",
}

var planProject string

var planShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the canonical plan document",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, _, err := resolveProject(planProject)
		if err != nil {
			return err
		}

		fmt.Print(board.Generate(p.Tasks))
		return nil
	},
}

var planSyncCmd = &cobra.Command{
	Use:   "sync <file>",
	Short: "Sync an edited plan document into the board",
	Long:  "Reads a plan document, reparses it into tasks, carries sub-project links forward, and persists the result when anything changed.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, folder, err := resolveProject(planProject)
		if err != nil {
			return err
		}

		content, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read plan file: %w", err)
		}

		changed := false
		err = withProjectLock(folder, func() error {
			changed = p.SyncText(string(content), activeTheme())
			if !changed {
				return nil
			}
			return project.Save(folder, p)
		})
		if err != nil {
			return err
		}
		if !changed {
			fmt.Println("No changes.")
			return nil
		}

		_ = project.NewActivityLogger(folder).PlanSynced(p.ID, len(p.Tasks))
		fmt.Printf("Synced %d tasks.\n", len(p.Tasks))
		return nil
	},
}

func init() {
	planCmd.PersistentFlags().StringVar(&planProject, "project", "", "Project name")
	planCmd.AddCommand(planShowCmd)
	planCmd.AddCommand(planSyncCmd)
}
