package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd is the main command for the ldpserver binary.
var RootCmd = &cobra.Command{
	Use:   "ldpserver",
	Short: "`ldpserver` serves Linked Data Platform resources",
	Long:  "`ldpserver` serves Linked Data Platform resources over HTTP",
	Run: func(cmd *cobra.Command, args []string) {
		// nolint:errcheck
		cmd.Usage()
	},
}

func init() {
	RootCmd.AddCommand(ServeCmd)
}

func main() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
