// Package main implements the ramaplot command line tool, which draws
// Ramachandran plots of PDB structures against a reference angle set.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
