package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is overridden at build time with -ldflags "-X cinema-ticketing/cmd.Version=...".
var Version = "dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "cinema-ticketing",
	Short: "Cinema ticketing front service",
	Long: `Browse sessions by movie, pick seats on a generated seat map and submit
bookings to the cinema backend. Run "serve" for the HTTP API.`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "cinema-ticketing %s\n", Version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log backend calls to stdout (CLI commands only)")
	rootCmd.AddCommand(serveCmd, sessionsCmd, seatMapCmd, versionCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
