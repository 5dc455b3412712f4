package main

import (
	"fmt"
	"os"

	"github.com/rahulstox/ecopack/internal/cli"
	"github.com/rahulstox/ecopack/pkg/version"
)

func main() {
	os.Exit(run())
}

func run() int {
	root := cli.NewRootCmd(version.GetVersion())
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}
