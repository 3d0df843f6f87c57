package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/zhicwu/mariadb-wire/internal/logging"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:   "wiredump",
	Short: "Inspect MariaDB wire-protocol column values",
	Long: `wiredump converts hex dumps of MariaDB/MySQL wire-protocol column
values to readable durations and back, for debugging client traffic
captures. Both the text and the binary row formats are supported.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Init(debug)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.AddCommand(newDecodeCmd())
	rootCmd.AddCommand(newEncodeCmd())
}
