package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd is the base command when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "libutils",
	Short: "libutils — fail-fast logging and allocation demo",
	Long: `libutils is a small demo front-end for the libutils library.
It emits console messages at any of the four severities (including the
interactive warn-ack confirmation) and exercises the fail-fast allocation
guard. Error-severity messages and allocation failures terminate the
process; declining a confirmation exits with status 255.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	viper.SetEnvPrefix("LIBUTILS")
	viper.AutomaticEnv()
}
