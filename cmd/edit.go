/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"todo/task"
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit TITLE STATUS",
	Short: "Change the status of an existing task",
	Long: `todo edit command.

The edit command looks up the task for the given title, sets its status
and saves it back. Editing a task that does not exist is an error.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		status, err := task.ParseStatus(args[1])
		if err != nil {
			return err
		}

		t, err := tasks.GetOne(args[0])
		if err != nil {
			return err
		}

		t.Status = status
		if err := tasks.SaveOne(args[0], t); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", t.Title, t.Status)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}
