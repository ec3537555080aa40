// Package commands implements the nacmd command-line interface.
package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Version information, injected from main.main at startup.
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"

	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "nacmd",
	Short: "nacmd - RFC 8341 NACM access-control evaluator",
	Long: `nacmd loads a NACM policy document and evaluates evaluate_rpc,
evaluate_write, and evaluate_read requests against it, the way a NETCONF
or RESTCONF server's access-control layer would at request time.

Use "nacmd [command] --help" for more information about a command.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Called once from main.main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "nacmd config file (default: NACMD_* environment variables and built-in defaults)")

	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(validatePolicyCmd)
	rootCmd.AddCommand(versionCmd)
}
