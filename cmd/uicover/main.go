// Package main provides the uicover CLI measuring component library adoption across router pages.
package main

import (
	"fmt"
	"os"

	"github.com/viant/uicover/cmd/uicover/cmd"
)

func main() {
	if err := cmd.NewApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
