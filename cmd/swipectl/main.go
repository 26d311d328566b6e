package main

import (
	"os"

	"github.com/bnema/swipectl/internal/cli/cmd"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := cmd.Execute(version); err != nil {
		os.Exit(1)
	}
}
