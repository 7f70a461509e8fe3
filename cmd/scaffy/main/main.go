package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/scaffy/cmd/scaffy"
	"github.com/arthur-debert/scaffy/pkg/ui/styles"
)

func main() {
	rootCmd := scaffy.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.Render("Error", fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
