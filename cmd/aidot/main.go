package main

import (
	"os"

	"github.com/arthur-debert/aidot/cmd/aidot/commands"
)

func main() {
	rootCmd := commands.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
