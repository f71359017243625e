package commands

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Umidjon1990/tolovnazorat-bot/internal/app"
)

// cli is the state shared by the root command and its subcommands.
type cli struct {
	v       *viper.Viper
	cfgFile string
	console app.Console
	app     *app.App
}

func Execute() error {
	return NewRootCmd(app.Console{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}).Execute()
}

// NewRootCmd builds the command tree around con.
func NewRootCmd(con app.Console) *cobra.Command {
	c := &cli{v: app.NewViper(), console: con}

	root := &cobra.Command{
		Use:          "onboard",
		Short:        "Course subscription onboarding client",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(c.v, c.cfgFile)
			if err != nil {
				return err
			}
			c.app = app.New(app.NewWire(cfg, c.console))
			c.app.Log.Debug("config loaded",
				"api_url", cfg.APIURL,
				"timeout", cfg.Timeout,
				"identity", cfg.InitData != "",
			)
			return nil
		},
	}
	root.SetIn(con.In)
	root.SetOut(con.Out)
	root.SetErr(con.Err)

	pf := root.PersistentFlags()
	pf.StringVar(&c.cfgFile, "config", "", "YAML config file")
	pf.String("api-url", app.DefaultAPIURL, "backend base URL")
	pf.String("init-data", "", "identity token (Telegram init data)")
	pf.Duration("timeout", app.DefaultTimeout, "per-request timeout")
	pf.String("log-level", app.DefaultLogLevel, "debug, info, warn or error")
	pf.String("metrics-addr", "", "serve Prometheus metrics on this address during run")

	for key, flag := range map[string]string{
		app.KeyAPIURL:      "api-url",
		app.KeyInitData:    "init-data",
		app.KeyTimeout:     "timeout",
		app.KeyLogLevel:    "log-level",
		app.KeyMetricsAddr: "metrics-addr",
	} {
		_ = c.v.BindPFlag(key, pf.Lookup(flag))
	}

	root.AddCommand(runCmd(c), coursesCmd(c), meCmd(c), subscriptionCmd(c), initDataCmd(c))
	return root
}
