package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/Umidjon1990/tolovnazorat-bot/internal/flow"
)

// run: interactive onboarding on the terminal.
func runCmd(c *cli) *cobra.Command {
	var start string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Walk through the onboarding steps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			err := c.app.Onboard(ctx, start)
			switch {
			case err == nil:
				fmt.Fprintln(cmd.OutOrStdout(), "Rahmat! Arizangiz ko'rib chiqiladi.")
				return nil
			case errors.Is(err, flow.ErrAborted), errors.Is(err, context.Canceled):
				c.app.Log.Info("onboarding left before payment")
				return nil
			default:
				return err
			}
		},
	}
	cmd.Flags().StringVar(&start, "start", "/", "location to open first; a new session only has the contract unlocked, so later steps fall back to it")
	return cmd
}
