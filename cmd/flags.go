package cmd

import "github.com/spf13/cobra"

// AttachCLIFlags attaches the cli flags to the root command
func AttachCLIFlags(rootCmd *cobra.Command) {
	rootCmd.Flags().StringP("config", "c", "", "config file path")
	rootCmd.Flags().StringP("port", "p", "5000", "port to run the http server on")
	rootCmd.Flags().String("logfile", "", "directory to store the log file in")
	rootCmd.Flags().Bool("verbose", true, "enable verbose logging")
}
