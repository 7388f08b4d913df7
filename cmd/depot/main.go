package main

import (
	"fmt"
	"os"

	"github.com/dmitrymomot/depot/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "depot:", err)
		os.Exit(1)
	}
}
