/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"todo/store"
	"todo/task"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tasks sorted by title",
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := loadForDisplay()
		if err != nil {
			return err
		}

		titles := make([]string, 0, len(items))
		for title := range items {
			titles = append(titles, title)
		}
		sort.Strings(titles)

		for _, title := range titles {
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", items[title].Title, items[title].Status)
		}

		return nil
	},
}

// loadForDisplay treats an unreadable collection as empty so that a
// never-written store file lists as no tasks. IO errors still propagate.
func loadForDisplay() (map[string]task.Task, error) {
	items, err := tasks.LoadAll()
	if errors.Is(err, store.ErrFormat) {
		return map[string]task.Task{}, nil
	}
	if err != nil {
		return nil, err
	}

	return items, nil
}

func init() {
	rootCmd.AddCommand(listCmd)
}
