package commands

import (
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func meCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Print your stored user record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			me, err := c.app.Gateway.GetMe(cmd.Context())
			if err != nil {
				return err
			}
			return printYAML(cmd.OutOrStdout(), me)
		},
	}
}

func printYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
