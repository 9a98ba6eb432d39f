package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lmy441900/libutils/core"
	"github.com/lmy441900/libutils/logger"
)

var sayLevel string

var sayCmd = &cobra.Command{
	Use:   "say <format> [args...]",
	Short: "Emit one message at the chosen severity",
	Long: `Emit a single printf-style message through the libutils logger.
Arguments after the format string are substituted as strings.

Examples:
  libutils say "hello, %s" world
  libutils say -l warn "disk usage high"
  libutils say -l warn-ack "overwrite output file?"
  libutils say -l error "giving up"`,
	Args: cobra.MinimumNArgs(1),
	Run:  runSay,
}

func init() {
	rootCmd.AddCommand(sayCmd)

	sayCmd.Flags().StringVarP(&sayLevel, "level", "l", "info",
		"severity: info, warn, warn-ack, error")
	_ = viper.BindPFlag("level", sayCmd.Flags().Lookup("level"))
}

func runSay(cmd *cobra.Command, args []string) {
	sev := core.ParseSeverity(viper.GetString("level"))

	fmtArgs := make([]any, len(args)-1)
	for i, a := range args[1:] {
		fmtArgs[i] = a
	}

	logger.Output(sev, core.Capture(1), args[0], fmtArgs...)
}
