package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"notesync/internal/scheduler"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the periodic sync daemon",
	Long: `Run checks every sync.tick whether the configured interval has passed since
the last sync and starts a run if so. Send SIGUSR1 to request a run now.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.syncer.ResetInProgress(ctx); err != nil {
			return err
		}
		defer func() {
			if err := a.syncer.ResetInProgress(context.WithoutCancel(ctx)); err != nil {
				logger.Warn("failed to reset sync flag", "error", err)
			}
		}()

		sched := scheduler.NewScheduler(a.syncer, a.settings, cfg.Sync.Tick, logger)

		trigger := make(chan os.Signal, 1)
		signal.Notify(trigger, syscall.SIGUSR1)
		defer signal.Stop(trigger)

		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case <-trigger:
					sched.Trigger()
				}
			}
		}()

		logger.Info("starting notesync",
			"tick", cfg.Sync.Tick,
			"item_delay", cfg.Sync.ItemDelay,
			"settings_backend", cfg.Settings.Backend,
			"vault", cfg.Vault.Path,
		)

		if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		logger.Info("shutting down")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
