package commands

import (
	"github.com/spf13/cobra"
)

func subscriptionCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "subscription",
		Short: "Print subscription status and group access",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sub, err := c.app.Gateway.GetSubscription(cmd.Context())
			if err != nil {
				return err
			}
			return printYAML(cmd.OutOrStdout(), sub)
		},
	}
}
