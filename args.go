package main

import (
	"flag"
	"fmt"
	"os"
)

// -file: required, specifies the ,v file (or glob) to read.
var archiveName = flag.String("file", "", "path or glob of ,v archive files to read")

// -rev: optional, the revision to reconstruct. Accepts a revision number,
// a branch number, a symbolic name, or empty for the default revision.
var revision = flag.String("rev", "", "revision to reconstruct (number, branch, symbol, or empty for default)")

// -out: optional, file to write the reconstructed text to. Default stdout.
var outName = flag.String("out", "", "file to write reconstructed text to (default stdout)")

// -report: optional, write a yaml history report to this path.
var reportName = flag.String("report", "", "file to write a yaml history report to")

// -rules: optional, specifies a rules file to work with. default: rules.yml
var rulesFile = flag.String("rules", "rules.yml", "path to rules file")

// -verbose: print progress detail.
var verbose = flag.Bool("verbose", false, "enable more output")

// -quiet: suppress informational output.
var quiet = flag.Bool("quiet", false, "suppress more output")

func parseCommandLine() {
	// Process command line flags.
	flag.Parse()

	// confirm no unparsed arguments.
	if len(flag.Args()) > 0 {
		fmt.Println("unexpected arguments")
		flag.Usage()
		os.Exit(1)
	}

	// '-file' is required.
	if archiveName == nil || *archiveName == "" {
		fmt.Println("missing -file filename")
		os.Exit(1)
	}

	if *verbose && *quiet {
		fmt.Println("-quiet and -verbose are mutually exclusive")
		os.Exit(1)
	}
}
