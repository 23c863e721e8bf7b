// Package main is just the application entry point.
package main

import (
	"fmt"
	"os"

	"boatcloser/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(1)
	}
}
