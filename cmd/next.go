/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"todo/task"
)

// nextCmd represents the next command
var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Show the oldest pending task",
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := loadForDisplay()
		if err != nil {
			return err
		}

		t, ok := task.NextPending(items)
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "no pending tasks")
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), t.Title)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(nextCmd)
}
