// Command matchctl runs the catalog reconciliation over local files and prints the report as JSON.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"catalog-recon/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string
	root := &cobra.Command{
		Use:           "matchctl",
		Short:         "Reconcile a customer equipment list against the reference catalog",
		SilenceUsage:  true,
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (overrides LOG_LEVEL)")

	cfg := func() config.Config {
		c := config.Load()
		c.LogFile = "" // console only
		if logLevel != "" {
			c.LogLevel = logLevel
		}
		return c
	}
	root.AddCommand(newRunCmd(cfg))
	return root
}
