package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mdp/qrterminal/v3"
	"github.com/spf13/cobra"

	"notesync/internal/login"
)

// terminalPresenter renders the session QR code and asks on stdin whether an
// expired code should be replaced.
type terminalPresenter struct {
	out io.Writer
	in  *bufio.Reader
}

func (p *terminalPresenter) ShowSession(ctx context.Context, sessionID, payload string) error {
	fmt.Fprintln(p.out, "Scan this code with the mobile app to log in:")
	qrterminal.GenerateHalfBlock(payload, qrterminal.L, p.out)
	_, err := fmt.Fprintf(p.out, "Session: %s\nWaiting for approval...\n", sessionID)
	return err
}

func (p *terminalPresenter) OfferRetry(ctx context.Context, result *login.Result) bool {
	fmt.Fprint(p.out, "The login code expired. Get a new one? [Y/n] ")
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "", "y", "yes":
		return true
	default:
		return false
	}
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in by scanning a QR code",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		presenter := &terminalPresenter{
			out: cmd.OutOrStdout(),
			in:  bufio.NewReader(cmd.InOrStdin()),
		}
		poller := login.NewPoller(a.client, cfg.Login.PollInterval, cfg.Login.MaxAttempts, logger)
		flow := login.NewFlow(poller, a.settings, a.syncer, presenter, a.notifier, cfg.Login.ScanURL, logger)

		res, err := flow.Login(ctx)
		if err != nil {
			return err
		}
		if res.Outcome != login.Approved {
			return fmt.Errorf("login code expired after %d checks", res.Attempts)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s.\n", res.UserName)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
}
