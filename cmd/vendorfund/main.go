package main

import (
	"os"

	"github.com/vendorfund-dev/vendorfund/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
