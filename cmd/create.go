/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"todo/task"
)

var createStatus string

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:   "create TITLE",
	Short: "Create a task and persist it",
	Long: `todo create command.

The create command builds a task for the given title, saves it under the
title as key, and prints it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		status, err := task.ParseStatus(createStatus)
		if err != nil {
			return err
		}

		item, err := task.Create(tasks, args[0], status)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), item)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createStatus, "status", "pending", "Initial status: pending or done")
	rootCmd.AddCommand(createCmd)
}
