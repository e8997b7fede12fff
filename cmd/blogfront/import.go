package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eringen/blogfront"
	"github.com/eringen/blogfront/content"
)

func init() {
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import <dir>",
	Short: "Import Markdown posts from a directory into the database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := configFromEnv(false)
		if err != nil {
			return err
		}

		docs, err := content.Load(os.DirFS(args[0]), ".")
		if err != nil {
			return err
		}

		store, err := blogfront.NewStore(cfg.DatabasePath)
		if err != nil {
			return err
		}
		defer store.Close()

		n, err := blogfront.ImportDocuments(store, docs)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "imported %d posts into %s\n", n, cfg.DatabasePath)
		return nil
	},
}
