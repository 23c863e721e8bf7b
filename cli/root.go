// Package cli wires the session controller to a command-line surface. Every
// command restores the saved session, applies its change, and relies on the
// controller to persist the result.
package cli

import (
	"github.com/spf13/cobra"

	"boatcloser/app"
	"boatcloser/config"
	"boatcloser/logger"
)

var (
	RootCmd = &cobra.Command{
		Use:   "boatcloser",
		Short: "Boat sale transaction workflow and document assembly",

		// All child commands will use this
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			conf, err = config.Load(cfgFile)
			if err != nil {
				return
			}
			err = logger.Init(conf.LogLevel)
			return
		},
		SilenceErrors: true,
	}

	conf    *config.Config
	cfgFile string
)

func init() {
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "configuration file path")
}

// newSession builds the controller over the restored saved session.
func newSession() (*app.App, error) {
	a := app.New(conf)
	if err := a.Startup(""); err != nil {
		return nil, err
	}
	return a, nil
}
