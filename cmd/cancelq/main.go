package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cancelq",
		Short: "cancelq demonstrates a FIFO queue with lazy removal",
		Long:  `Enqueue values, mark some of them removed, and drain the rest in order`,
	}
	config := &rootCmdConfig{}
	rootCmd.PersistentFlags().BoolVarP(&(config.verbose), "verbose", "v", false, "log diagnostics to stderr")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		config.logger.w = cmd.ErrOrStderr()
	}
	rootCmd.AddCommand(versionCmd(), drainCmd(config))
	return rootCmd
}
