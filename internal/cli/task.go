package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/savvywritesstuff/Zenith-Projects/internal/board"
	"github.com/savvywritesstuff/Zenith-Projects/internal/project"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks",
}

var (
	taskProject    string
	addStatus      string
	addPhase       string
	addPriority    string
	updateDesc     string
	updatePriority string
	listStatus     string
)

var taskAddCmd = &cobra.Command{
	Use:   "add <sub-phase> <description>",
	Short: "Add a task",
	Long:  "Adds a task with an auto-incremented ID derived from its sub-phase and rewrites the plan document.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, folder, err := resolveProject(taskProject)
		if err != nil {
			return err
		}

		var task board.Task
		err = withProjectLock(folder, func() error {
			task, err = p.AddTask(
				board.ParseStatus(addStatus),
				addPhase,
				args[0],
				args[1],
				board.ParsePriority(addPriority),
				activeTheme(),
			)
			if err != nil {
				return err
			}
			return project.Save(folder, p)
		})
		if err != nil {
			return err
		}

		_ = project.NewActivityLogger(folder).TaskCreated(task.ID, string(task.Status))
		fmt.Printf("Added %s to %s\n", task.ID, task.Status)
		return nil
	},
}

var taskMoveCmd = &cobra.Command{
	Use:   "move <task-id> <status>",
	Short: "Move a task to another column",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, folder, err := resolveProject(taskProject)
		if err != nil {
			return err
		}

		i := p.TaskByID(args[0])
		if i < 0 {
			return fmt.Errorf("task not found: %s", args[0])
		}
		from := p.Tasks[i].Status

		status := board.ParseStatus(args[1])
		err = withProjectLock(folder, func() error {
			if err := p.MoveTask(args[0], status, activeTheme()); err != nil {
				return err
			}
			return project.Save(folder, p)
		})
		if err != nil {
			return err
		}

		_ = project.NewActivityLogger(folder).TaskMoved(args[0], string(from), string(status))
		fmt.Printf("Moved %s: %s -> %s\n", args[0], from, status)
		return nil
	},
}

var taskUpdateCmd = &cobra.Command{
	Use:   "update <task-id>",
	Short: "Edit a task's description or priority",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if updateDesc == "" && updatePriority == "" {
			return fmt.Errorf("nothing to update: pass --desc or --priority")
		}

		p, folder, err := resolveProject(taskProject)
		if err != nil {
			return err
		}

		priority := board.Priority("")
		if updatePriority != "" {
			priority = board.ParsePriority(updatePriority)
		}

		err = withProjectLock(folder, func() error {
			if err := p.UpdateTask(args[0], updateDesc, priority, activeTheme()); err != nil {
				return err
			}
			return project.Save(folder, p)
		})
		if err != nil {
			return err
		}

		_ = project.NewActivityLogger(folder).TaskUpdated(args[0])
		fmt.Printf("Updated %s\n", args[0])
		return nil
	},
}

var taskDeleteCmd = &cobra.Command{
	Use:   "delete <task-id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, folder, err := resolveProject(taskProject)
		if err != nil {
			return err
		}

		err = withProjectLock(folder, func() error {
			if err := p.DeleteTask(args[0], activeTheme()); err != nil {
				return err
			}
			return project.Save(folder, p)
		})
		if err != nil {
			return err
		}

		_ = project.NewActivityLogger(folder).TaskDeleted(args[0])
		fmt.Printf("Deleted %s\n", args[0])
		return nil
	},
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks by column",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, _, err := resolveProject(taskProject)
		if err != nil {
			return err
		}

		filter := board.Status("")
		if listStatus != "" {
			filter = board.ParseStatus(listStatus)
		}

		for _, status := range board.StatusOrder {
			if filter != "" && status != filter {
				continue
			}
			printed := false
			for _, t := range p.Tasks {
				if t.Status != status {
					continue
				}
				if !printed {
					fmt.Printf("%s\n", status)
					printed = true
				}
				marker := " "
				if t.SubProjectID != "" {
					marker = "*"
				}
				fmt.Printf("  %s %-10s %-8s %s\n", marker, t.ID, t.Priority, t.Description)
			}
		}
		return nil
	},
}

func init() {
	taskCmd.PersistentFlags().StringVar(&taskProject, "project", "", "Project name")
	taskAddCmd.Flags().StringVar(&addStatus, "status", "Backlog", "Column for the new task")
	taskAddCmd.Flags().StringVar(&addPhase, "phase", "", "Phase label (default General)")
	taskAddCmd.Flags().StringVar(&addPriority, "priority", "None", "Priority (High, Medium, Low, None)")
	taskUpdateCmd.Flags().StringVar(&updateDesc, "desc", "", "New description")
	taskUpdateCmd.Flags().StringVar(&updatePriority, "priority", "", "New priority (High, Medium, Low, None)")
	taskListCmd.Flags().StringVar(&listStatus, "status", "", "Only show one column")

	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskMoveCmd)
	taskCmd.AddCommand(taskUpdateCmd)
	taskCmd.AddCommand(taskDeleteCmd)
	taskCmd.AddCommand(taskListCmd)
}
