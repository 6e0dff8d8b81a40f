package main

import (
	"os"

	"github.com/accrue-dev/accrue/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
