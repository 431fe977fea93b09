package main

import (
	"os"

	"github.com/Makepad-fr/wishlist/internal/cli"
)

func main() {
	// Subcommands, flags and exit codes live in internal/cli.
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
