package main

import (
	"fmt"
	"os"

	"github.com/jrsteele09/wellbe/internal/command"
)

func main() {
	if err := command.App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
