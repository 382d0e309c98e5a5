/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"todo/store"
	"todo/task"
)

var (
	dbFile  string
	dbType  string
	verbose bool

	logger *zap.Logger
	tasks  store.Store[task.Task]
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "todo",
	Short: "A single-user task list backed by a local JSON file",
	Long: `todo keeps a personal task list in a local key-value store.

Tasks are keyed by title. The default backend is a single JSON file
holding the whole collection, resolved from --file, the JSON_STORE_PATH
environment variable, or the default tasks.json. Alternative backends
(bolt, sqlite, memory) sit behind the same store interface.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}

		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}

		tasks, err = newStore()
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if c, ok := tasks.(io.Closer); ok {
			_ = c.Close()
		}
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func newStore() (store.Store[task.Task], error) {

	switch dbType {
	case "json":
		return store.NewFileStore[task.Task](dbFile, logger), nil
	case "memory":
		return store.NewInMemoryStore[task.Task](), nil
	case "bolt":
		file := dbFile
		if file == "" {
			file = "tasks.db"
		}
		return store.NewBoltStore[task.Task](file, 0600, "tasks", logger)
	case "sqlite":
		file := dbFile
		if file == "" {
			file = "tasks.sqlite"
		}
		return store.NewSQLiteStore[task.Task](file)
	}

	return nil, fmt.Errorf("unknown db type %s", dbType)
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbFile, "file", "f", "", "Backing file path (default resolved per backend)")
	rootCmd.PersistentFlags().StringVarP(&dbType, "db", "d", "json", "Backend to use: json, bolt, sqlite or memory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
