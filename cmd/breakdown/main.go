package main

import (
	"os"

	"github.com/SscSPs/cash_breakdown/cmd/breakdown/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
