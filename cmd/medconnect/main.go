package main

import (
	"os"

	"github.com/medconnect/landing/cmd/medconnect/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
