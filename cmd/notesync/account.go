package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"notesync/internal/domain"
)

var unbindCmd = &cobra.Command{
	Use:   "unbind",
	Short: "Revoke the integration and forget the stored credential",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.accounts.Unbind(ctx); err != nil {
			if errors.Is(err, domain.ErrNoCredential) {
				return errors.New("not logged in")
			}
			return fmt.Errorf("unbind: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Integration unbound. Run 'notesync login' to connect again.")
		return nil
	},
}

var retryFailedCmd = &cobra.Command{
	Use:   "retry-failed",
	Short: "Re-queue tasks that failed in earlier runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.accounts.RetryFailed(ctx); err != nil {
			if errors.Is(err, domain.ErrNoCredential) {
				return errors.New("not logged in")
			}
			return fmt.Errorf("retry failed tasks: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Failed tasks re-queued. They will be picked up by the next sync.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(unbindCmd)
	rootCmd.AddCommand(retryFailedCmd)
}
