package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lmy441900/libutils/alloc"
	"github.com/lmy441900/libutils/logger"
)

var (
	grabSize int
	grabGrow int
)

var grabCmd = &cobra.Command{
	Use:   "grab",
	Short: "Exercise the fail-fast allocation guard",
	Long: `Allocate a buffer through the allocation guard, optionally grow it
with a reallocation, then release it. Any allocation failure terminates the
process with a diagnostic on stderr.

Examples:
  libutils grab --size 4096
  libutils grab --size 1024 --grow 8192`,
	Run: runGrab,
}

func init() {
	rootCmd.AddCommand(grabCmd)

	grabCmd.Flags().IntVar(&grabSize, "size", 1024, "bytes to allocate")
	grabCmd.Flags().IntVar(&grabGrow, "grow", 0, "bytes to reallocate to (0 skips)")
	_ = viper.BindPFlag("size", grabCmd.Flags().Lookup("size"))
	_ = viper.BindPFlag("grow", grabCmd.Flags().Lookup("grow"))
}

func runGrab(cmd *cobra.Command, args []string) {
	size := viper.GetInt("size")
	grow := viper.GetInt("grow")

	buf := alloc.Alloc(size)
	logger.Infof("allocated %d bytes", len(buf))

	if grow > 0 {
		buf = alloc.Realloc(buf, grow)
		logger.Infof("reallocated to %d bytes", len(buf))
	}

	alloc.Release(&buf)
	logger.Infof("released buffer")
}
