package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	name    = "mbarrier"
	version = "latest"
)

var versionCmd = cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s/%s\n", name, version, runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(&versionCmd)
}
