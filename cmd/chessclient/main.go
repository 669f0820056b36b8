// Package main provides the chessclient CLI for playing against a remote
// chess server from the terminal.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
