// abxdash CLI — list, validate, render and export the page content.
//
// Usage:
//
//	abxdash <command> [flags]
//
// Commands:
//
//	views      List the tabs in display order
//	datasets   List the registered datasets
//	validate   Load and render every view, reporting all problems
//	render     Print one view as text or JSON
//	export     Write the datasets to a SQLite database
//	version    Print version information
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
)

var (
	Version   = "0.1.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
	case errors.Is(err, errUsage):
		if err != errUsage {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(2)
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
