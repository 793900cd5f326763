// Package main is the entry point for the webmark CLI.
package main

import (
	"os"

	"github.com/danielmarass/webmark/cmd/webmark/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
