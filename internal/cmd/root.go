// Package cmd wires the binharry command tree.
package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "binharry",
	Short: "Client BinHarry — l'association étudiante",
	Long: `binharry is the command-line client for the BinHarry student
association: profile and subscriptions, the internal mailbox, the public
member directory, the merch catalog, GameJam reactions, and the admin
panel for privileged accounts.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	flagAPIURL  string
	flagOutput  string
	flagNoColor bool
	flagVerbose bool
)

// ExecuteContext runs the root command with the given context
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAPIURL, "api-url", "", "backend base URL (overrides config and BINHARRY_API_URL)")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "text", "output format: text, json or yaml")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}
