package main

import (
	"os"

	"passforge/cmd/passforge/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
