package commands

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Umidjon1990/tolovnazorat-bot/internal/domain"
	"github.com/Umidjon1990/tolovnazorat-bot/internal/hostbridge/initdata"
)

const botTokenEnv = "bot_token"

func initDataCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "initdata",
		Short: "Sign or inspect identity tokens for local development",
	}
	cmd.PersistentFlags().String("bot-token", "", "bot token used for signing (env ONBOARD_BOT_TOKEN)")
	_ = c.v.BindPFlag(botTokenEnv, cmd.PersistentFlags().Lookup("bot-token"))
	cmd.AddCommand(initDataSignCmd(c), initDataInspectCmd(c))
	return cmd
}

// sign: mint a token the backend will accept for the given user.
func initDataSignCmd(c *cli) *cobra.Command {
	var (
		user    domain.HostUser
		queryID string
	)
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Print a signed init data string",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token := c.v.GetString(botTokenEnv)
			if token == "" {
				return errors.New("--bot-token required")
			}
			vals, err := initdata.NewUserValues(user, queryID, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), initdata.Sign(token, vals))
			return nil
		},
	}
	cmd.Flags().Int64Var(&user.ID, "user-id", 0, "chat user id")
	cmd.Flags().StringVar(&user.Username, "username", "", "chat username")
	cmd.Flags().StringVar(&user.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&user.LastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&queryID, "query-id", "", "query id")
	_ = cmd.MarkFlagRequired("user-id")
	return cmd
}

type inspection struct {
	Verified bool             `yaml:"verified"`
	QueryID  string           `yaml:"query_id,omitempty"`
	AuthDate string           `yaml:"auth_date,omitempty"`
	User     *domain.HostUser `yaml:"user,omitempty"`
	Check    string           `yaml:"data_check_string"`
}

// inspect: decode a token and, given the bot token, check its signature.
func initDataInspectCmd(c *cli) *cobra.Command {
	var maxAge time.Duration
	cmd := &cobra.Command{
		Use:   "inspect [init-data]",
		Short: "Decode init data (the configured one by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := c.app.Config.InitData
			if len(args) == 1 {
				raw = strings.TrimSpace(args[0])
			}
			if raw == "" {
				return errors.New("no init data given")
			}

			var (
				data     initdata.InitData
				err      error
				verified bool
			)
			if token := c.v.GetString(botTokenEnv); token != "" {
				data, err = initdata.Verify(token, raw, maxAge, time.Now())
				if err != nil {
					return err
				}
				verified = true
			} else {
				data, err = initdata.Parse(raw)
				if err != nil {
					return err
				}
			}

			vals, err := url.ParseQuery(raw)
			if err != nil {
				return err
			}
			out := inspection{
				Verified: verified,
				QueryID:  data.QueryID,
				User:     data.User,
				Check:    initdata.DataCheckString(vals),
			}
			if !data.AuthDate.IsZero() {
				out.AuthDate = data.AuthDate.Format(time.RFC3339)
			}
			return printYAML(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().DurationVar(&maxAge, "max-age", 24*time.Hour, "reject signed tokens older than this (0 disables)")
	return cmd
}
