package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/savvywritesstuff/Zenith-Projects/internal/project"
	"github.com/savvywritesstuff/Zenith-Projects/internal/util"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects",
}

var projectCreateParent string

var projectCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !IsInitialized() {
			return fmt.Errorf("not a zenith workspace. Run 'zenith init' first")
		}

		name, err := project.ResolveProjectName(util.ToKebabCase(args[0]))
		if err != nil {
			return err
		}

		id, err := util.GenerateShortID()
		if err != nil {
			return fmt.Errorf("failed to generate project ID: %w", err)
		}
		p := project.New(id, name)

		if projectCreateParent != "" {
			parent, _, err := resolveProject(projectCreateParent)
			if err != nil {
				return err
			}
			p.ParentID = parent.ID
		}

		if err := project.CreateProjectFolder(p); err != nil {
			return err
		}

		folder, err := project.FindProjectFolder(name)
		if err == nil {
			_ = project.NewActivityLogger(folder).ProjectCreated(p.ID, p.Name)
		}

		fmt.Printf("Created project %s (%s)\n", p.Name, p.ID)
		return nil
	},
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		folders, err := project.ListProjectFolders()
		if err != nil {
			return err
		}
		if len(folders) == 0 {
			fmt.Println("No projects. Run 'zenith project create <name>' first.")
			return nil
		}

		for _, folder := range folders {
			p, err := project.Load(folder)
			if err != nil {
				continue
			}
			fmt.Printf("%-24s %s  (%d tasks)\n", p.Name, p.ID, len(p.Tasks))
		}
		return nil
	},
}

var projectLinkProject string

var projectLinkCmd = &cobra.Command{
	Use:   "link <task-id> <child-project>",
	Short: "Link a task to a sub-project",
	Long:  "Attaches a child project to a task. The link survives plan edits even though the plan text cannot express it.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		taskID, childName := args[0], args[1]

		p, folder, err := resolveProject(projectLinkProject)
		if err != nil {
			return err
		}

		childFolder, err := project.FindProjectFolder(childName)
		if err != nil {
			return err
		}
		child, err := project.Load(childFolder)
		if err != nil {
			return err
		}

		err = withProjectLock(folder, func() error {
			if err := p.LinkSubProject(taskID, child.ID); err != nil {
				return err
			}
			return project.Save(folder, p)
		})
		if err != nil {
			return err
		}

		_ = project.NewActivityLogger(folder).SubprojectLinked(taskID, child.ID)
		fmt.Printf("Linked task %s to project %s\n", taskID, child.Name)
		return nil
	},
}

func init() {
	projectCreateCmd.Flags().StringVar(&projectCreateParent, "parent", "", "Parent project name")
	projectLinkCmd.Flags().StringVar(&projectLinkProject, "project", "", "Project holding the task")

	projectCmd.AddCommand(projectCreateCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectLinkCmd)
}
