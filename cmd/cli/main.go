// Package main is the entry point for the fba-cost CLI.
package main

import (
	"os"

	"fba-cost/cmd/cli/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
