package main

import (
	"os"

	"github.com/grachmannico95/gig-earnings/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
