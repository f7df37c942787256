package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-ldp/ldpserver/internal/configuration"
)

// ServeCmd is the cobra command that starts the LDP server.
var ServeCmd = &cobra.Command{
	Use:   "serve <config>",
	Short: "`serve` runs the LDP server",
	Long:  "`serve` runs the LDP server",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		f, err := os.Open(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "unable to open configuration: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()

		cfg, err := configuration.Parse(f)
		if err != nil {
			fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
			os.Exit(1)
		}

		srv, err := NewServer(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to construct server: %v\n", err)
			os.Exit(1)
		}

		if err := srv.ListenAndServe(); err != nil {
			fmt.Fprintf(os.Stderr, "server exited: %v\n", err)
			os.Exit(1)
		}
	},
}
