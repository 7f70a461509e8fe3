package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/scaffy/cmd/scaffy"
	"github.com/arthur-debert/scaffy/internal/version"
)

func main() {
	rootCmd := scaffy.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "SCAFFY",
		Section: "1",
		Source:  "scaffy " + version.Version,
		Manual:  "scaffy manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
