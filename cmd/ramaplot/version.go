package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version of the ramaplot tool.
const Version = "v0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the ramaplot version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("ramaplot", Version)
	},
}
