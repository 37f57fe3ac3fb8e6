package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"notesync/internal/credential"
	"notesync/internal/domain"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show login state, settings and the last run",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		st, err := a.settings.Load(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		printAccount(out, st, time.Now())

		fmt.Fprintf(out, "Folders:       %s (links: %s, notes: %s)\n", st.RootDir, st.LinkDir, st.RichTextDir)
		fmt.Fprintf(out, "Sync:          enabled=%t every %s\n", st.Enabled, st.SyncInterval())
		if st.LastSyncAt.IsZero() {
			fmt.Fprintln(out, "Last sync:     never")
		} else {
			fmt.Fprintf(out, "Last sync:     %s\n", st.LastSyncAt.Local().Format(time.DateTime))
		}
		if st.Syncing {
			fmt.Fprintln(out, "               a run is in progress")
		}

		if a.runs != nil {
			run, err := a.runs.Latest(ctx)
			if err != nil {
				return fmt.Errorf("load last run: %w", err)
			}
			if run != nil {
				fmt.Fprintf(out, "Last run:      %s, %d synced, %d failed, %d pages",
					run.Outcome, run.Succeeded, run.Failed, run.Pages)
				if run.Reason != "" {
					fmt.Fprintf(out, " (%s)", run.Reason)
				}
				fmt.Fprintln(out)
			}
		}
		if a.notes != nil {
			n, err := a.notes.Count(ctx)
			if err != nil {
				return fmt.Errorf("count notes: %w", err)
			}
			fmt.Fprintf(out, "Synced notes:  %d\n", n)
		}
		return nil
	},
}

func printAccount(out io.Writer, st *domain.Settings, now time.Time) {
	if !st.HasCredential() {
		fmt.Fprintln(out, "Account:       not logged in")
		return
	}

	fmt.Fprintf(out, "Account:       %s (%s)\n", st.UserName, st.UserID)

	status := credential.Inspect(st.Token, now)
	switch {
	case !status.Format:
		fmt.Fprintln(out, "Credential:    malformed, log in again")
	case !status.UnExpired:
		fmt.Fprintf(out, "Credential:    expired at %s\n", status.ExpiresAt.Local().Format(time.DateTime))
	default:
		fmt.Fprintf(out, "Credential:    valid until %s\n", status.ExpiresAt.Local().Format(time.DateTime))
	}
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
