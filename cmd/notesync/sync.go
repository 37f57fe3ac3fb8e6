package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"notesync/internal/service"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run one sync now",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		stats, err := a.syncer.Sync(ctx)
		if stats != nil {
			fmt.Fprintln(cmd.OutOrStdout(), service.Summary(stats))
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
